package strategy

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/doeshing/roulette-go/internal/domain"
	"github.com/doeshing/roulette-go/internal/ports"
)

// ErrNotFound is returned when no saved strategy has the requested name.
var ErrNotFound = errors.New("strategy not found")

// Persistence is the strategy slice of storage.
type Persistence interface {
	SaveActiveStrategy(domain.Strategy)
	LoadActiveStrategy() (domain.Strategy, bool)
	SaveStrategies([]domain.Strategy)
	LoadStrategies() []domain.Strategy
}

// Service manages the active strategy and the saved collection.
type Service struct {
	mu      sync.Mutex
	persist Persistence
	logger  ports.Logger
}

// NewService builds a strategy service.
func NewService(persist Persistence, logger ports.Logger) *Service {
	return &Service{persist: persist, logger: logger}
}

// Active returns the active strategy, falling back to the editor template.
func (s *Service) Active() (domain.Strategy, bool) {
	if active, ok := s.persist.LoadActiveStrategy(); ok {
		return active, true
	}
	return s.Default(), false
}

// Default returns the editor template used when nothing is active.
func (s *Service) Default() domain.Strategy {
	return domain.DefaultStrategy()
}

// Saved lists the saved strategies in insertion order.
func (s *Service) Saved() []domain.Strategy {
	return s.persist.LoadStrategies()
}

// Save activates strategy and upserts it into the saved list by name.
func (s *Service) Save(strategy domain.Strategy) error {
	if strategy.Name == "" {
		return fmt.Errorf("strategy name is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.save(strategy)
	return nil
}

func (s *Service) save(strategy domain.Strategy) {
	s.persist.SaveActiveStrategy(strategy)

	saved := s.persist.LoadStrategies()
	replaced := false
	for i := range saved {
		if saved[i].Name == strategy.Name {
			saved[i] = strategy
			replaced = true
			break
		}
	}
	if !replaced {
		saved = append(saved, strategy)
	}
	s.persist.SaveStrategies(saved)

	s.logger.Info("strategy saved", map[string]interface{}{
		"name":  strategy.Name,
		"rules": len(strategy.Rules),
	})
}

// Import parses raw, then saves and activates the result. A document
// without a name or a rules array fails with domain.ErrInvalidImportFormat
// and leaves every stored strategy untouched.
func (s *Service) Import(raw []byte) (domain.Strategy, error) {
	strategy, err := domain.ParseStrategy(raw)
	if err != nil {
		s.logger.Warn("strategy import rejected", map[string]interface{}{"error": err.Error()})
		return domain.Strategy{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.save(strategy)
	return strategy, nil
}

// Export renders a strategy as indented JSON. An empty name exports the
// active strategy.
func (s *Service) Export(name string) ([]byte, error) {
	strategy, err := s.find(name)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(strategy, "", "  ")
}

// Activate makes a saved strategy the active one.
func (s *Service) Activate(name string) (domain.Strategy, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, saved := range s.persist.LoadStrategies() {
		if saved.Name == name {
			s.persist.SaveActiveStrategy(saved)
			return saved, nil
		}
	}
	return domain.Strategy{}, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// Delete removes a saved strategy. The active strategy is left as is.
func (s *Service) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	saved := s.persist.LoadStrategies()
	kept := saved[:0]
	for _, strategy := range saved {
		if strategy.Name != name {
			kept = append(kept, strategy)
		}
	}
	if len(kept) == len(saved) {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	s.persist.SaveStrategies(kept)
	return nil
}

// GenerateAI saves and activates the fixed generated rule set.
func (s *Service) GenerateAI() domain.Strategy {
	strategy := domain.AIStrategy()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.save(strategy)
	return strategy
}

func (s *Service) find(name string) (domain.Strategy, error) {
	if name == "" {
		active, _ := s.Active()
		return active, nil
	}
	for _, saved := range s.persist.LoadStrategies() {
		if saved.Name == name {
			return saved, nil
		}
	}
	return domain.Strategy{}, fmt.Errorf("%w: %q", ErrNotFound, name)
}
