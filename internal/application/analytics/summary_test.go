package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/roulette-go/internal/domain"
)

func history(numbers ...int) []domain.SpinOutcome {
	out := make([]domain.SpinOutcome, 0, len(numbers))
	for _, n := range numbers {
		o, _ := domain.NewSpinOutcome(n, time.Now())
		out = append(out, o)
	}
	return out
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, 5)
	assert.Equal(t, 0, s.Spins)
	assert.Equal(t, 0, s.Colors["red"])
	assert.Empty(t, s.Hot)
	assert.Empty(t, s.Cold)
}

func TestSummarize(t *testing.T) {
	s := Summarize(history(32, 32, 15, 19, 0, 4, 32, 19), 2)

	assert.Equal(t, 8, s.Spins)
	assert.Equal(t, map[string]int{"red": 5, "black": 2, "green": 1}, s.Colors)
	assert.Equal(t, 4, s.Even)
	assert.Equal(t, 3, s.Odd)
	assert.Equal(t, 2, s.Low)
	assert.Equal(t, 5, s.High)

	require.Len(t, s.Hot, 2)
	assert.Equal(t, NumberCount{Number: 32, Count: 3}, s.Hot[0])
	assert.Equal(t, NumberCount{Number: 19, Count: 2}, s.Hot[1])

	require.Len(t, s.Cold, 2)
	assert.Equal(t, NumberCount{Number: 1, Count: 0}, s.Cold[0])
	assert.Equal(t, NumberCount{Number: 2, Count: 0}, s.Cold[1])

	assert.Equal(t, 19.13, s.Mean)
	assert.Greater(t, s.StdDev, 0.0)
	assert.Equal(t, Streak{Color: domain.ColorRed, Length: 2}, s.LongestStreak)
}

func TestSummarizeClampsTop(t *testing.T) {
	tests := []struct {
		name     string
		top      int
		wantHot  int
		wantCold int
	}{
		{name: "negative", top: -1, wantHot: 0, wantCold: 0},
		{name: "zero", top: 0, wantHot: 0, wantCold: 0},
		{name: "past the wheel", top: 100, wantHot: 1, wantCold: domain.MaxNumber + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Summarize(history(5), tt.top)
			assert.Len(t, s.Hot, tt.wantHot)
			assert.Len(t, s.Cold, tt.wantCold)
			assert.Equal(t, 1, s.Spins)
		})
	}
}
