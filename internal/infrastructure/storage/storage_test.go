package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/roulette-go/internal/domain"
	"github.com/doeshing/roulette-go/internal/infrastructure/kv"
)

type capturedError struct {
	msg string
	err error
}

type recordingLogger struct {
	errors []capturedError
}

func (l *recordingLogger) Debug(string, map[string]interface{}) {}

func (l *recordingLogger) Info(string, map[string]interface{}) {}

func (l *recordingLogger) Warn(string, map[string]interface{}) {}

func (l *recordingLogger) Error(msg string, err error, _ map[string]interface{}) {
	l.errors = append(l.errors, capturedError{msg: msg, err: err})
}

type brokenStore struct{}

var errQuota = errors.New("quota exceeded")

func (brokenStore) Get(context.Context, string) ([]byte, error) {
	return nil, errQuota
}

func (brokenStore) Set(context.Context, string, []byte) error {
	return errQuota
}

func (brokenStore) Delete(context.Context, string) error {
	return errQuota
}

func (brokenStore) Close() error {
	return nil
}

func TestSpinHistoryRoundTrip(t *testing.T) {
	backend := kv.NewMemoryStore()
	log := &recordingLogger{}
	history := []domain.SpinOutcome{
		{Number: 4, Color: domain.ColorBlack, Timestamp: "10:00:05"},
		{Number: 0, Color: domain.ColorGreen, Timestamp: "10:00:04"},
		{Number: 32, Color: domain.ColorRed, Timestamp: "10:00:01"},
	}

	New(backend, log).SaveSpinHistory(history)
	loaded := New(backend, log).LoadSpinHistory()

	assert.Equal(t, history, loaded)
	assert.Empty(t, log.errors)
}

func TestLoadDefaultsWhenAbsent(t *testing.T) {
	s := New(kv.NewMemoryStore(), &recordingLogger{})

	assert.Equal(t, []domain.SpinOutcome{}, s.LoadSpinHistory())
	assert.Equal(t, []domain.Strategy{}, s.LoadStrategies())
	_, ok := s.LoadCurrentPrediction()
	assert.False(t, ok)
	_, ok = s.LoadSettings()
	assert.False(t, ok)
	_, ok = s.LoadActiveStrategy()
	assert.False(t, ok)
}

func TestMalformedJSONIsLoggedAndTreatedAsAbsent(t *testing.T) {
	backend := kv.NewMemoryStore()
	ctx := context.Background()
	for _, key := range domain.StoredKeys {
		require.NoError(t, backend.Set(ctx, key, []byte("{not json")))
	}
	log := &recordingLogger{}
	s := New(backend, log)

	assert.Empty(t, s.LoadSpinHistory())
	_, ok := s.LoadCurrentPrediction()
	assert.False(t, ok)
	_, ok = s.LoadSettings()
	assert.False(t, ok)

	require.Len(t, log.errors, 3)
	for _, e := range log.errors {
		assert.ErrorIs(t, e.err, ErrPersistenceRead)
	}
}

func TestNullValuesAreAbsent(t *testing.T) {
	backend := kv.NewMemoryStore()
	require.NoError(t, backend.Set(context.Background(), domain.KeyCurrentPrediction, []byte("null")))
	require.NoError(t, backend.Set(context.Background(), domain.KeySpinHistory, []byte("null")))
	s := New(backend, &recordingLogger{})

	_, ok := s.LoadCurrentPrediction()
	assert.False(t, ok)
	assert.Equal(t, []domain.SpinOutcome{}, s.LoadSpinHistory())
}

func TestBackendFailuresNeverPropagate(t *testing.T) {
	log := &recordingLogger{}
	s := New(brokenStore{}, log)

	s.SaveSpinHistory([]domain.SpinOutcome{{Number: 1, Color: domain.ColorRed}})
	s.SaveCurrentPrediction(domain.PredictionRecord{Number: 1})
	assert.Empty(t, s.LoadSpinHistory())
	s.ClearAll()

	require.Len(t, log.errors, 3+len(domain.StoredKeys))
	assert.ErrorIs(t, log.errors[0].err, ErrPersistenceWrite)
	assert.ErrorIs(t, log.errors[1].err, ErrPersistenceWrite)
	assert.ErrorIs(t, log.errors[2].err, ErrPersistenceRead)
}

func TestPredictionOverwrites(t *testing.T) {
	s := New(kv.NewMemoryStore(), &recordingLogger{})
	s.SaveCurrentPrediction(domain.PredictionRecord{Number: 1, Color: domain.ColorRed, Confidence: 70, Trending: domain.TrendStable})
	second := domain.PredictionRecord{Number: 2, Color: domain.ColorBlack, Confidence: 85, Trending: domain.TrendUp, Timestamp: "12:00:00"}
	s.SaveCurrentPrediction(second)

	got, ok := s.LoadCurrentPrediction()
	require.True(t, ok)
	assert.Equal(t, second, got)
}

func TestSettingsAndStrategiesRoundTrip(t *testing.T) {
	s := New(kv.NewMemoryStore(), &recordingLogger{})

	settings := domain.DefaultSettings()
	settings.TrackingEnabled = false
	settings.ActiveTab = "strategy"
	s.SaveSettings(settings)
	gotSettings, ok := s.LoadSettings()
	require.True(t, ok)
	assert.Equal(t, settings, gotSettings)

	strategies := []domain.Strategy{domain.DefaultStrategy(), domain.AIStrategy()}
	s.SaveStrategies(strategies)
	assert.Equal(t, strategies, s.LoadStrategies())

	s.SaveActiveStrategy(strategies[1])
	active, ok := s.LoadActiveStrategy()
	require.True(t, ok)
	assert.Equal(t, strategies[1], active)
}

func TestClearAll(t *testing.T) {
	s := New(kv.NewMemoryStore(), &recordingLogger{})
	s.SaveSpinHistory([]domain.SpinOutcome{{Number: 5, Color: domain.ColorRed}})
	s.SaveSettings(domain.DefaultSettings())

	s.ClearAll()

	assert.Empty(t, s.LoadSpinHistory())
	_, ok := s.LoadSettings()
	assert.False(t, ok)
}
