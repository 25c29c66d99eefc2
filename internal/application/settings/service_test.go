package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/roulette-go/internal/domain"
	"github.com/doeshing/roulette-go/internal/infrastructure/kv"
	"github.com/doeshing/roulette-go/internal/infrastructure/storage"
	"github.com/doeshing/roulette-go/internal/pkg/logger"
)

func newService() *Service {
	return NewService(storage.New(kv.NewMemoryStore(), logger.Nop()))
}

func TestLoadDefaults(t *testing.T) {
	assert.Equal(t, domain.DefaultSettings(), newService().Load())
}

func TestToggleTracking(t *testing.T) {
	svc := newService()
	assert.False(t, svc.ToggleTracking())
	assert.False(t, svc.Load().TrackingEnabled)
	assert.True(t, svc.ToggleTracking())
}

func TestMergeKeepsAbsentFields(t *testing.T) {
	svc := newService()
	_, err := svc.Set("confidenceThreshold", "80")
	require.NoError(t, err)

	got, err := svc.Merge([]byte(`{"activeTab":"history"}`))
	require.NoError(t, err)

	want := domain.DefaultSettings()
	want.ConfidenceThreshold = 80
	want.ActiveTab = "history"
	assert.Equal(t, want, got)
	assert.Equal(t, want, svc.Load())
}

func TestMergeRejectsInvalidJSON(t *testing.T) {
	svc := newService()
	_, err := svc.Merge([]byte(`{"activeTab":`))
	assert.Error(t, err)
	assert.Equal(t, domain.DefaultSettings(), svc.Load())
}

func TestSet(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		value     string
		wantError bool
		check     func(t *testing.T, s domain.Settings)
	}{
		{
			name: "sets bool", key: "audioAlertsEnabled", value: "false",
			check: func(t *testing.T, s domain.Settings) { assert.False(t, s.AudioAlertsEnabled) },
		},
		{
			name: "sets threshold", key: "confidenceThreshold", value: "80",
			check: func(t *testing.T, s domain.Settings) { assert.Equal(t, 80, s.ConfidenceThreshold) },
		},
		{
			name: "sets string", key: "activeTab", value: "history",
			check: func(t *testing.T, s domain.Settings) { assert.Equal(t, "history", s.ActiveTab) },
		},
		{name: "rejects unknown key", key: "volume", value: "1", wantError: true},
		{name: "rejects bad bool", key: "trackingEnabled", value: "maybe", wantError: true},
		{name: "rejects out of range percent", key: "processingPower", value: "101", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService()
			got, err := svc.Set(tt.key, tt.value)
			if tt.wantError {
				assert.Error(t, err)
				assert.Equal(t, domain.DefaultSettings(), svc.Load())
				return
			}
			require.NoError(t, err)
			tt.check(t, got)
			assert.Equal(t, got, svc.Load())
		})
	}
}

func TestKeysCoverAllOptions(t *testing.T) {
	assert.Len(t, Keys(), 9)
}
