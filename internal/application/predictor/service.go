// Package predictor is the top-level facade: it records spins, gates
// predictions on the tracking setting and drives the watch loop.
package predictor

import (
	"context"
	"errors"
	"time"

	"github.com/doeshing/roulette-go/internal/application/analytics"
	"github.com/doeshing/roulette-go/internal/application/history"
	"github.com/doeshing/roulette-go/internal/application/prediction"
	"github.com/doeshing/roulette-go/internal/application/settings"
	"github.com/doeshing/roulette-go/internal/application/strategy"
	"github.com/doeshing/roulette-go/internal/domain"
	"github.com/doeshing/roulette-go/internal/ports"
)

// Clearer wipes every persisted key.
type Clearer interface {
	ClearAll()
}

// Service orchestrates the prediction core end-to-end.
type Service struct {
	History    *history.Store
	Engine     *prediction.Engine
	Settings   *settings.Service
	Strategies *strategy.Service
	Storage    Clearer
	Random     ports.Random
	Logger     ports.Logger
}

// SpinResult is what a recorded spin produced.
type SpinResult struct {
	Outcome    domain.SpinOutcome       `json:"outcome"`
	Prediction *domain.PredictionRecord `json:"prediction,omitempty"`
	Notify     bool                     `json:"notify"`
}

// Spin records number and, when tracking is enabled, generates the next
// prediction.
func (s *Service) Spin(number int) (SpinResult, error) {
	if err := s.validate(); err != nil {
		return SpinResult{}, err
	}
	outcome, err := s.History.RecordSpin(number)
	if err != nil {
		return SpinResult{}, err
	}
	result := SpinResult{Outcome: outcome}
	if p, ok := s.PredictIfTracking(); ok {
		result.Prediction = &p
		result.Notify = s.Settings.Load().ShouldNotify(p.Confidence)
	}
	return result, nil
}

// Simulate spins the wheel with the injected random source.
func (s *Service) Simulate() (SpinResult, error) {
	if err := s.validate(); err != nil {
		return SpinResult{}, err
	}
	return s.Spin(s.Random.Intn(domain.MaxNumber + 1))
}

// PredictIfTracking generates a prediction unless tracking is disabled.
func (s *Service) PredictIfTracking() (domain.PredictionRecord, bool) {
	if !s.Settings.Load().TrackingEnabled {
		s.Logger.Debug("tracking disabled, skipping prediction", nil)
		return domain.PredictionRecord{}, false
	}
	return s.Engine.Generate(), true
}

// Summary aggregates the current history.
func (s *Service) Summary(top int) analytics.Summary {
	return analytics.Summarize(s.History.History(), top)
}

// Reset removes all persisted data and empties the in-memory history.
func (s *Service) Reset() {
	s.Storage.ClearAll()
	s.History.Clear()
	s.Logger.Info("all stored data cleared", nil)
}

// Watch generates a prediction every interval until ctx is done. Ticks
// while tracking is disabled are skipped.
func (s *Service) Watch(ctx context.Context, interval time.Duration, emit func(domain.PredictionRecord)) error {
	if interval <= 0 {
		return errors.New("watch interval must be positive")
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if p, ok := s.PredictIfTracking(); ok {
				emit(p)
			}
		}
	}
}

func (s *Service) validate() error {
	if s.History == nil || s.Engine == nil || s.Settings == nil || s.Random == nil || s.Logger == nil {
		return errors.New("predictor.Service dependencies not satisfied")
	}
	return nil
}
