package settings

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/doeshing/roulette-go/internal/domain"
)

type setter func(*domain.Settings, string) error

func boolField(field func(*domain.Settings) *bool) setter {
	return func(s *domain.Settings, raw string) error {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		*field(s) = v
		return nil
	}
}

// percentField accepts integers in [0, 100].
func percentField(field func(*domain.Settings) *int) setter {
	return func(s *domain.Settings, raw string) error {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return err
		}
		if v < 0 || v > 100 {
			return fmt.Errorf("must be between 0 and 100")
		}
		*field(s) = v
		return nil
	}
}

func stringField(field func(*domain.Settings) *string) setter {
	return func(s *domain.Settings, raw string) error {
		*field(s) = raw
		return nil
	}
}

var setters = map[string]setter{
	"trackingEnabled":      boolField(func(s *domain.Settings) *bool { return &s.TrackingEnabled }),
	"notificationsEnabled": boolField(func(s *domain.Settings) *bool { return &s.NotificationsEnabled }),
	"audioAlertsEnabled":   boolField(func(s *domain.Settings) *bool { return &s.AudioAlertsEnabled }),
	"visualSensitivity":    percentField(func(s *domain.Settings) *int { return &s.VisualSensitivity }),
	"audioSensitivity":     percentField(func(s *domain.Settings) *int { return &s.AudioSensitivity }),
	"processingPower":      percentField(func(s *domain.Settings) *int { return &s.ProcessingPower }),
	"confidenceThreshold":  percentField(func(s *domain.Settings) *int { return &s.ConfidenceThreshold }),
	"notificationLevel":    stringField(func(s *domain.Settings) *string { return &s.NotificationLevel }),
	"activeTab":            stringField(func(s *domain.Settings) *string { return &s.ActiveTab }),
}

// Keys lists the settings Set understands.
func Keys() []string {
	keys := make([]string, 0, len(setters))
	for k := range setters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Set parses raw into the named option and stores the result. Nothing is
// stored when parsing fails.
func (s *Service) Set(name, raw string) (domain.Settings, error) {
	set, ok := setters[name]
	if !ok {
		return domain.Settings{}, fmt.Errorf("unknown setting %q", name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	current := s.Load()
	if err := set(&current, raw); err != nil {
		return domain.Settings{}, fmt.Errorf("setting %s: %w", name, err)
	}
	s.persist.SaveSettings(current)
	return current, nil
}
