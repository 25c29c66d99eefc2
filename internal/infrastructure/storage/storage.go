// Package storage maps the persisted roulette values onto a key-value
// backend. Every public method is best-effort: read failures degrade to
// the empty default and write failures are logged and dropped, so the
// in-memory state stays usable when the backend is unavailable.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/doeshing/roulette-go/internal/domain"
	"github.com/doeshing/roulette-go/internal/ports"
)

var (
	ErrPersistenceRead  = errors.New("persistence read failure")
	ErrPersistenceWrite = errors.New("persistence write failure")
)

// DefaultTimeout bounds a single backend call.
const DefaultTimeout = 3 * time.Second

// Storage is the typed persistence facade.
type Storage struct {
	kv      ports.KeyValueStore
	log     ports.Logger
	timeout time.Duration
}

// New wraps kv. log receives every swallowed failure.
func New(kv ports.KeyValueStore, log ports.Logger) *Storage {
	return &Storage{kv: kv, log: log, timeout: DefaultTimeout}
}

// load decodes key into dst. found is false when the key is absent or
// holds JSON null; err wraps ErrPersistenceRead.
func (s *Storage) load(key string, dst interface{}) (found bool, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("%w: get %s: %v", ErrPersistenceRead, key, err)
	}
	if string(raw) == "null" {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("%w: decode %s: %v", ErrPersistenceRead, key, err)
	}
	return true, nil
}

// save encodes v under key; err wraps ErrPersistenceWrite.
func (s *Storage) save(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrPersistenceWrite, key, err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	if err := s.kv.Set(ctx, key, data); err != nil {
		return fmt.Errorf("%w: set %s: %v", ErrPersistenceWrite, key, err)
	}
	return nil
}

func (s *Storage) loadOrLog(key string, dst interface{}) bool {
	found, err := s.load(key, dst)
	if err != nil {
		s.log.Error("error loading persisted value", err, map[string]interface{}{"key": key})
		return false
	}
	return found
}

func (s *Storage) saveOrLog(key string, v interface{}) {
	if err := s.save(key, v); err != nil {
		s.log.Error("error saving persisted value", err, map[string]interface{}{"key": key})
	}
}

// SaveSpinHistory persists the full history log.
func (s *Storage) SaveSpinHistory(history []domain.SpinOutcome) {
	if history == nil {
		history = []domain.SpinOutcome{}
	}
	s.saveOrLog(domain.KeySpinHistory, history)
}

// LoadSpinHistory returns the persisted log, or an empty one.
func (s *Storage) LoadSpinHistory() []domain.SpinOutcome {
	var history []domain.SpinOutcome
	if !s.loadOrLog(domain.KeySpinHistory, &history) || history == nil {
		return []domain.SpinOutcome{}
	}
	return history
}

// SaveCurrentPrediction overwrites the last prediction.
func (s *Storage) SaveCurrentPrediction(p domain.PredictionRecord) {
	s.saveOrLog(domain.KeyCurrentPrediction, p)
}

// LoadCurrentPrediction returns the last prediction if one is stored.
func (s *Storage) LoadCurrentPrediction() (domain.PredictionRecord, bool) {
	var p domain.PredictionRecord
	if !s.loadOrLog(domain.KeyCurrentPrediction, &p) {
		return domain.PredictionRecord{}, false
	}
	return p, true
}

// SaveSettings persists the settings blob.
func (s *Storage) SaveSettings(settings domain.Settings) {
	s.saveOrLog(domain.KeySettings, settings)
}

// LoadSettings returns the stored settings if present.
func (s *Storage) LoadSettings() (domain.Settings, bool) {
	var settings domain.Settings
	if !s.loadOrLog(domain.KeySettings, &settings) {
		return domain.Settings{}, false
	}
	return settings, true
}

// SaveActiveStrategy persists the active strategy.
func (s *Storage) SaveActiveStrategy(strategy domain.Strategy) {
	s.saveOrLog(domain.KeyActiveStrategy, strategy)
}

// LoadActiveStrategy returns the active strategy if present.
func (s *Storage) LoadActiveStrategy() (domain.Strategy, bool) {
	var strategy domain.Strategy
	if !s.loadOrLog(domain.KeyActiveStrategy, &strategy) {
		return domain.Strategy{}, false
	}
	return strategy, true
}

// SaveStrategies persists the saved strategy collection.
func (s *Storage) SaveStrategies(strategies []domain.Strategy) {
	if strategies == nil {
		strategies = []domain.Strategy{}
	}
	s.saveOrLog(domain.KeySavedStrategies, strategies)
}

// LoadStrategies returns the saved strategy collection, or an empty one.
func (s *Storage) LoadStrategies() []domain.Strategy {
	var strategies []domain.Strategy
	if !s.loadOrLog(domain.KeySavedStrategies, &strategies) || strategies == nil {
		return []domain.Strategy{}
	}
	return strategies
}

// ClearAll removes every persisted key.
func (s *Storage) ClearAll() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	for _, key := range domain.StoredKeys {
		if err := s.kv.Delete(ctx, key); err != nil {
			s.log.Error("error clearing stored data", err, map[string]interface{}{"key": key})
		}
	}
}
