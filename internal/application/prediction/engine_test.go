package prediction

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/roulette-go/internal/application/history"
	"github.com/doeshing/roulette-go/internal/domain"
	"github.com/doeshing/roulette-go/internal/infrastructure/kv"
	"github.com/doeshing/roulette-go/internal/infrastructure/storage"
	"github.com/doeshing/roulette-go/internal/pkg/logger"
)

// scripted returns queued values (clamped into range) and records every bound it was asked for.
type scripted struct {
	values []int
	bounds []int
}

func (s *scripted) Intn(n int) int {
	s.bounds = append(s.bounds, n)
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[0]
	s.values = s.values[1:]
	if v >= n {
		v = n - 1
	}
	return v
}

func outcomes(numbers ...int) []domain.SpinOutcome {
	out := make([]domain.SpinOutcome, 0, len(numbers))
	for _, n := range numbers {
		o, err := domain.NewSpinOutcome(n, time.Now())
		if err != nil {
			panic(err)
		}
		out = append(out, o)
	}
	return out
}

func assertWellFormed(t *testing.T, p domain.PredictionRecord) {
	t.Helper()
	color, err := domain.Classify(p.Number)
	require.NoError(t, err)
	assert.Equal(t, color, p.Color, "number %d does not match color %s", p.Number, p.Color)
}

func TestComputeEmptyHistory(t *testing.T) {
	for seed := int64(0); seed < 500; seed++ {
		p := Compute(nil, rand.New(rand.NewSource(seed)))

		assert.GreaterOrEqual(t, p.Confidence, 50)
		assert.LessOrEqual(t, p.Confidence, 79)
		assert.Contains(t, []domain.Trend{domain.TrendUp, domain.TrendDown}, p.Trending)
		assertWellFormed(t, p)
	}
}

func TestComputeEmptyHistoryBounds(t *testing.T) {
	low := &scripted{values: []int{0, 0, 0}}
	p := Compute(nil, low)
	assert.Equal(t, []int{37, 30, 2}, low.bounds)
	assert.Equal(t, domain.PredictionRecord{Number: 0, Color: domain.ColorGreen, Confidence: 50, Trending: domain.TrendDown}, p)

	high := &scripted{values: []int{36, 29, 1}}
	p = Compute(nil, high)
	assert.Equal(t, domain.PredictionRecord{Number: 36, Color: domain.ColorRed, Confidence: 79, Trending: domain.TrendUp}, p)
}

func TestComputeDominantRedPredictsBlack(t *testing.T) {
	allRed := outcomes(1, 3, 5, 7, 9, 12, 14, 16, 18, 19)
	for seed := int64(0); seed < 200; seed++ {
		p := Compute(allRed, rand.New(rand.NewSource(seed)))
		assert.Equal(t, domain.ColorBlack, p.Color)
		assert.GreaterOrEqual(t, p.Confidence, 75)
		assert.LessOrEqual(t, p.Confidence, 89)
		assertWellFormed(t, p)
	}

	// newest two differ: weaker pattern range
	mixedTop := outcomes(2, 1, 3, 5, 7, 9, 12, 14, 16, 18)
	for seed := int64(0); seed < 200; seed++ {
		p := Compute(mixedTop, rand.New(rand.NewSource(seed)))
		assert.Equal(t, domain.ColorBlack, p.Color)
		assert.GreaterOrEqual(t, p.Confidence, 60)
		assert.LessOrEqual(t, p.Confidence, 84)
	}
}

func TestComputeDominantBlackPredictsRed(t *testing.T) {
	rnd := &scripted{values: []int{17, 14}}
	p := Compute(outcomes(2, 4, 6, 1), rnd)

	assert.Equal(t, []int{18, 15}, rnd.bounds, "no coin flip expected when a color dominates")
	assert.Equal(t, domain.ColorRed, p.Color)
	assert.Equal(t, 36, p.Number)
	assert.Equal(t, 89, p.Confidence)
	assert.Equal(t, domain.TrendUp, p.Trending)
}

func TestComputeGreenStreak(t *testing.T) {
	tests := []struct {
		name    string
		history []domain.SpinOutcome
	}{
		{name: "two greens tie others", history: outcomes(0, 1, 0, 2)},
		{name: "green dominant", history: outcomes(0, 0, 0, 5)},
		{name: "greens with balanced colors", history: outcomes(1, 2, 0, 3, 4, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := int64(0); seed < 50; seed++ {
				p := Compute(tt.history, rand.New(rand.NewSource(seed)))
				assert.Equal(t, domain.ColorGreen, p.Color)
				assert.Equal(t, 0, p.Number)
			}
		})
	}
}

func TestComputeTieFlipsCoin(t *testing.T) {
	balanced := outcomes(1, 2, 3, 4)

	heads := &scripted{values: []int{1, 0, 0}}
	p := Compute(balanced, heads)
	assert.Equal(t, []int{2, 18, 25}, heads.bounds)
	assert.Equal(t, domain.ColorRed, p.Color)
	assert.Equal(t, 1, p.Number)
	assert.Equal(t, 60, p.Confidence)
	assert.Equal(t, domain.TrendDown, p.Trending)

	tails := &scripted{values: []int{0, 0, 24}}
	p = Compute(balanced, tails)
	assert.Equal(t, domain.ColorBlack, p.Color)
	assert.Equal(t, 2, p.Number)
	assert.Equal(t, 84, p.Confidence)
	assert.Equal(t, domain.TrendUp, p.Trending)

	// a single green with no dominance still flips a coin
	withOneGreen := outcomes(1, 0, 2)
	p = Compute(withOneGreen, &scripted{values: []int{0, 0, 0}})
	assert.Equal(t, domain.ColorBlack, p.Color)
}

func TestComputeSingleEntryUsesWeakerPattern(t *testing.T) {
	rnd := &scripted{values: []int{0, 24}}
	p := Compute(outcomes(5), rnd)

	assert.Equal(t, domain.ColorBlack, p.Color)
	assert.Equal(t, []int{18, 25}, rnd.bounds)
	assert.Equal(t, 84, p.Confidence)
}

func TestComputeOnlyInspectsWindow(t *testing.T) {
	history := outcomes(2, 4, 6, 8, 10, 11, 13, 15, 17, 20)
	for i := 0; i < 40; i++ {
		history = append(history, outcomes(1)...)
	}
	p := Compute(history, rand.New(rand.NewSource(1)))
	assert.Equal(t, domain.ColorRed, p.Color)
}

func TestComputeTrendThresholds(t *testing.T) {
	streak := outcomes(1, 3)
	for offset := 0; offset < 15; offset++ {
		p := Compute(streak, &scripted{values: []int{0, offset}})
		assert.Equal(t, 75+offset, p.Confidence)
		assert.Equal(t, domain.TrendFor(p.Confidence), p.Trending)
	}
	p := Compute(streak, &scripted{values: []int{0, 5}})
	assert.Equal(t, domain.TrendStable, p.Trending)
	p = Compute(streak, &scripted{values: []int{0, 6}})
	assert.Equal(t, domain.TrendUp, p.Trending)
}

func TestComputeDeterministicForSeed(t *testing.T) {
	history := outcomes(32, 15, 19, 0, 4, 21, 2, 25, 17, 34)
	a := Compute(history, rand.New(rand.NewSource(42)))
	b := Compute(history, rand.New(rand.NewSource(42)))
	assert.Equal(t, a, b)
}

func TestEngineGeneratePersists(t *testing.T) {
	persist := storage.New(kv.NewMemoryStore(), logger.Nop())
	clock := func() time.Time { return time.Date(2024, 5, 1, 9, 15, 30, 0, time.Local) }
	store := history.NewStore(persist, clock, logger.Nop())
	engine := NewEngine(store, persist, rand.New(rand.NewSource(7)), clock, logger.Nop())

	_, ok := engine.LoadLast()
	assert.False(t, ok)

	for _, n := range []int{1, 3, 5} {
		_, err := store.RecordSpin(n)
		require.NoError(t, err)
	}
	p := engine.Generate()
	assert.Equal(t, "09:15:30", p.Timestamp)
	assert.Equal(t, domain.ColorBlack, p.Color)

	last, ok := engine.LoadLast()
	require.True(t, ok)
	assert.Equal(t, p, last)

	again := engine.Generate()
	last, ok = engine.LoadLast()
	require.True(t, ok)
	assert.Equal(t, again, last)
	assert.Len(t, store.History(), 3, "generating must not touch history")
}
