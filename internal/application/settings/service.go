package settings

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/doeshing/roulette-go/internal/domain"
)

// Persistence is the settings slice of storage.
type Persistence interface {
	SaveSettings(domain.Settings)
	LoadSettings() (domain.Settings, bool)
}

// Service reads and updates the user settings.
type Service struct {
	mu      sync.Mutex
	persist Persistence
}

// NewService builds a settings service.
func NewService(persist Persistence) *Service {
	return &Service{persist: persist}
}

// Load returns the stored settings, or the defaults.
func (s *Service) Load() domain.Settings {
	if stored, ok := s.persist.LoadSettings(); ok {
		return stored
	}
	return domain.DefaultSettings()
}

// Save replaces the stored settings.
func (s *Service) Save(settings domain.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persist.SaveSettings(settings)
}

// Update applies fn to the current settings and stores the result.
func (s *Service) Update(fn func(*domain.Settings)) domain.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	current := s.Load()
	fn(&current)
	s.persist.SaveSettings(current)
	return current
}

// Merge decodes raw onto the current settings. Fields absent from raw keep
// their stored value. Nothing is stored when raw is not valid JSON.
func (s *Service) Merge(raw []byte) (domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	current := s.Load()
	if err := json.Unmarshal(raw, &current); err != nil {
		return domain.Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	s.persist.SaveSettings(current)
	return current, nil
}

// ToggleTracking flips trackingEnabled and returns the new state.
func (s *Service) ToggleTracking() bool {
	updated := s.Update(func(cfg *domain.Settings) {
		cfg.TrackingEnabled = !cfg.TrackingEnabled
	})
	return updated.TrackingEnabled
}
