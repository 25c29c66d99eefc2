package history

import (
	"sync"
	"time"

	"github.com/doeshing/roulette-go/internal/domain"
	"github.com/doeshing/roulette-go/internal/ports"
)

// Persistence is the slice of storage the history store needs.
// Implementations never fail; they degrade to an empty log.
type Persistence interface {
	SaveSpinHistory([]domain.SpinOutcome)
	LoadSpinHistory() []domain.SpinOutcome
}

// seedNumbers is the placeholder log used when nothing is persisted, newest first.
var seedNumbers = []int{32, 15, 19, 0, 4, 21, 2, 25, 17, 34}

// Store owns the bounded, newest-first spin log. Only RecordSpin, Clear
// and LoadOrSeed mutate it.
type Store struct {
	mu      sync.RWMutex
	log     []domain.SpinOutcome
	persist Persistence
	clock   ports.Clock
	logger  ports.Logger
}

// NewStore returns an empty store. Call LoadOrSeed before use.
func NewStore(persist Persistence, clock ports.Clock, logger ports.Logger) *Store {
	if clock == nil {
		clock = time.Now
	}
	return &Store{
		log:     []domain.SpinOutcome{},
		persist: persist,
		clock:   clock,
		logger:  logger,
	}
}

// RecordSpin classifies number, prepends it and persists the truncated log.
// Out-of-range numbers return domain.ErrInvalidNumber and change nothing.
func (s *Store) RecordSpin(number int) (domain.SpinOutcome, error) {
	outcome, err := domain.NewSpinOutcome(number, s.clock())
	if err != nil {
		return domain.SpinOutcome{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]domain.SpinOutcome, 0, min(len(s.log)+1, domain.MaxHistory))
	next = append(next, outcome)
	next = append(next, s.log...)
	if len(next) > domain.MaxHistory {
		next = next[:domain.MaxHistory]
	}
	s.log = next
	s.persist.SaveSpinHistory(s.snapshot())

	s.logger.Debug("spin recorded", map[string]interface{}{
		"number": outcome.Number,
		"color":  outcome.Color,
		"size":   len(s.log),
	})
	return outcome, nil
}

// History returns a copy of the log, newest first.
func (s *Store) History() []domain.SpinOutcome {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

// Recent returns at most n of the newest outcomes.
func (s *Store) Recent(n int) []domain.SpinOutcome {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if n > len(s.log) {
		n = len(s.log)
	}
	if n <= 0 {
		return []domain.SpinOutcome{}
	}
	out := make([]domain.SpinOutcome, n)
	copy(out, s.log[:n])
	return out
}

// Len returns the number of outcomes held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.log)
}

// Clear empties the log and persists the empty state.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.log = []domain.SpinOutcome{}
	s.persist.SaveSpinHistory(s.snapshot())
	s.logger.Info("history cleared", nil)
}

// LoadOrSeed adopts a non-empty persisted log, otherwise installs the demo
// seed and persists it.
func (s *Store) LoadOrSeed() {
	stored := sanitize(s.persist.LoadSpinHistory(), s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(stored) > 0 {
		s.log = stored
		s.logger.Debug("history loaded", map[string]interface{}{"size": len(stored)})
		return
	}
	s.log = s.seed()
	s.persist.SaveSpinHistory(s.snapshot())
	s.logger.Info("history seeded with demo outcomes", map[string]interface{}{"size": len(s.log)})
}

func (s *Store) seed() []domain.SpinOutcome {
	now := s.clock()
	out := make([]domain.SpinOutcome, 0, len(seedNumbers))
	for i, n := range seedNumbers {
		outcome, _ := domain.NewSpinOutcome(n, now.Add(-time.Duration(i+1)*time.Minute))
		out = append(out, outcome)
	}
	return out
}

// snapshot copies the log; callers hold the lock.
func (s *Store) snapshot() []domain.SpinOutcome {
	out := make([]domain.SpinOutcome, len(s.log))
	copy(out, s.log)
	return out
}

// sanitize drops out-of-range entries, re-derives mismatched colors and
// enforces the size bound on a persisted log.
func sanitize(stored []domain.SpinOutcome, logger ports.Logger) []domain.SpinOutcome {
	out := make([]domain.SpinOutcome, 0, len(stored))
	for _, o := range stored {
		color, err := domain.Classify(o.Number)
		if err != nil {
			logger.Warn("dropping persisted outcome", map[string]interface{}{"number": o.Number})
			continue
		}
		if color != o.Color {
			logger.Warn("correcting persisted outcome color", map[string]interface{}{
				"number": o.Number,
				"stored": o.Color,
				"actual": color,
			})
			o.Color = color
		}
		out = append(out, o)
	}
	if len(out) > domain.MaxHistory {
		out = out[:domain.MaxHistory]
	}
	return out
}
