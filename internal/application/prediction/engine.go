// Package prediction produces biased-random forecasts from recent spins:
// bet on the color opposite to a dominant one and report higher confidence
// when the last two colors match. Spins are independent, so this is not a
// statistical model.
package prediction

import (
	"sync"
	"time"

	"github.com/doeshing/roulette-go/internal/domain"
	"github.com/doeshing/roulette-go/internal/ports"
)

// HistoryReader exposes the newest outcomes, newest first.
type HistoryReader interface {
	Recent(n int) []domain.SpinOutcome
}

// Persistence stores the latest prediction. Implementations never fail.
type Persistence interface {
	SaveCurrentPrediction(domain.PredictionRecord)
	LoadCurrentPrediction() (domain.PredictionRecord, bool)
}

// Engine generates and persists predictions.
type Engine struct {
	history HistoryReader
	persist Persistence
	clock   ports.Clock
	logger  ports.Logger

	// rnd is not safe for concurrent use.
	mu  sync.Mutex
	rnd ports.Random
}

// NewEngine wires an engine. rnd must not be nil.
func NewEngine(history HistoryReader, persist Persistence, rnd ports.Random, clock ports.Clock, logger ports.Logger) *Engine {
	if clock == nil {
		clock = time.Now
	}
	return &Engine{
		history: history,
		persist: persist,
		rnd:     rnd,
		clock:   clock,
		logger:  logger,
	}
}

// Generate computes a prediction from the current history, persists it
// as the last prediction and returns it.
func (e *Engine) Generate() domain.PredictionRecord {
	recent := e.history.Recent(domain.PredictionWindow)

	e.mu.Lock()
	p := Compute(recent, e.rnd)
	e.mu.Unlock()

	p.Timestamp = domain.FormatTimestamp(e.clock())
	e.persist.SaveCurrentPrediction(p)

	e.logger.Debug("prediction generated", map[string]interface{}{
		"number":     p.Number,
		"color":      p.Color,
		"confidence": p.Confidence,
		"trending":   p.Trending,
		"window":     len(recent),
	})
	return p
}

// LoadLast returns the persisted last prediction, if any.
func (e *Engine) LoadLast() (domain.PredictionRecord, bool) {
	return e.persist.LoadCurrentPrediction()
}

// Compute applies the heuristic to recent (newest first, at most
// PredictionWindow entries are considered). The timestamp is left empty.
func Compute(recent []domain.SpinOutcome, rnd ports.Random) domain.PredictionRecord {
	if len(recent) == 0 {
		return computeBlind(rnd)
	}
	if len(recent) > domain.PredictionWindow {
		recent = recent[:domain.PredictionWindow]
	}

	color := pickColor(countColors(recent), rnd)

	number := 0
	if color != domain.ColorGreen {
		candidates := domain.NumbersFor(color)
		number = candidates[rnd.Intn(len(candidates))]
	}

	var confidence int
	if len(recent) > 1 && recent[0].Color == recent[1].Color {
		confidence = domain.StreakConfidenceBase + rnd.Intn(domain.StreakConfidenceSpan)
	} else {
		confidence = domain.MixedConfidenceBase + rnd.Intn(domain.MixedConfidenceSpan)
	}

	return domain.PredictionRecord{
		Number:     number,
		Color:      color,
		Confidence: confidence,
		Trending:   domain.TrendFor(confidence),
	}
}

func computeBlind(rnd ports.Random) domain.PredictionRecord {
	number := rnd.Intn(domain.MaxNumber + 1)
	color, _ := domain.Classify(number)
	confidence := domain.EmptyConfidenceBase + rnd.Intn(domain.EmptyConfidenceSpan)
	trending := domain.TrendDown
	if rnd.Intn(2) == 1 {
		trending = domain.TrendUp
	}
	return domain.PredictionRecord{
		Number:     number,
		Color:      color,
		Confidence: confidence,
		Trending:   trending,
	}
}

type colorCounts struct {
	red, black, green int
}

func countColors(recent []domain.SpinOutcome) colorCounts {
	var c colorCounts
	for _, o := range recent {
		switch o.Color {
		case domain.ColorRed:
			c.red++
		case domain.ColorBlack:
			c.black++
		case domain.ColorGreen:
			c.green++
		}
	}
	return c
}

// pickColor bets against a strictly dominant color; first match wins.
func pickColor(c colorCounts, rnd ports.Random) domain.Color {
	switch {
	case c.red > c.black && c.red > c.green:
		return domain.ColorBlack
	case c.black > c.red && c.black > c.green:
		return domain.ColorRed
	case c.green > domain.GreenStreakThreshold:
		return domain.ColorGreen
	}
	if rnd.Intn(2) == 1 {
		return domain.ColorRed
	}
	return domain.ColorBlack
}
