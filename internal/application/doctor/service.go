package doctor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	appconfig "github.com/doeshing/roulette-go/internal/application/config"
	"github.com/doeshing/roulette-go/internal/domain"
	"github.com/doeshing/roulette-go/internal/ports"
)

const probeKey = "roulette_doctor_probe"

// Service runs storage and configuration diagnostics.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Store          ports.KeyValueStore
	// StoreErr is why Store is nil, when opening the backend failed.
	StoreErr error
}

// Run executes checks and returns a report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	if err := appconfig.Validate(cfg); err != nil {
		checks = append(checks, fail("Config file", err.Error()))
	} else {
		checks = append(checks, ok("Config file", fmt.Sprintf("loaded v%s, backend %s", cfg.ConfigFormatVersion, cfg.GetBackend())))
	}

	if s.Store == nil {
		details := "no backend initialized"
		if s.StoreErr != nil {
			details = fmt.Sprintf("backend unavailable: %v", s.StoreErr)
		}
		checks = append(checks, fail("Storage", details))
		return domain.HealthReport{Checks: checks}, errors.New("storage unavailable")
	}
	checks = append(checks, s.probe(ctx))
	checks = append(checks, s.historyCheck(ctx))
	checks = append(checks, s.predictionCheck(ctx))

	report := domain.HealthReport{Checks: checks}
	if !report.Healthy() {
		return report, errors.New("one or more checks failed")
	}
	return report, nil
}

func (s *Service) probe(ctx context.Context) domain.HealthCheck {
	if err := s.Store.Set(ctx, probeKey, []byte(`"ok"`)); err != nil {
		return fail("Storage", fmt.Sprintf("write failed: %v", err))
	}
	got, err := s.Store.Get(ctx, probeKey)
	if err != nil || string(got) != `"ok"` {
		return fail("Storage", fmt.Sprintf("read back failed: %v", err))
	}
	if err := s.Store.Delete(ctx, probeKey); err != nil {
		return warn("Storage", fmt.Sprintf("probe cleanup failed: %v", err))
	}
	return ok("Storage", "read/write round trip succeeded")
}

func (s *Service) historyCheck(ctx context.Context) domain.HealthCheck {
	raw, err := s.Store.Get(ctx, domain.KeySpinHistory)
	if errors.Is(err, ports.ErrNotFound) {
		return warn("Spin history", "nothing persisted yet")
	}
	if err != nil {
		return fail("Spin history", err.Error())
	}
	var history []domain.SpinOutcome
	if err := json.Unmarshal(raw, &history); err != nil {
		return warn("Spin history", fmt.Sprintf("corrupted, will be reseeded: %v", err))
	}
	bad := 0
	for _, o := range history {
		if !o.Consistent() {
			bad++
		}
	}
	if bad > 0 {
		return warn("Spin history", fmt.Sprintf("%d of %d outcomes have a wrong color or number", bad, len(history)))
	}
	if len(history) > domain.MaxHistory {
		return warn("Spin history", fmt.Sprintf("%d outcomes exceed the %d limit", len(history), domain.MaxHistory))
	}
	return ok("Spin history", fmt.Sprintf("%d outcomes", len(history)))
}

func (s *Service) predictionCheck(ctx context.Context) domain.HealthCheck {
	raw, err := s.Store.Get(ctx, domain.KeyCurrentPrediction)
	if errors.Is(err, ports.ErrNotFound) {
		return ok("Last prediction", "none stored")
	}
	if err != nil {
		return fail("Last prediction", err.Error())
	}
	var p domain.PredictionRecord
	if err := json.Unmarshal(raw, &p); err != nil {
		return warn("Last prediction", fmt.Sprintf("corrupted, will be ignored: %v", err))
	}
	return ok("Last prediction", fmt.Sprintf("%s (%d%%)", p.Label(), p.Confidence))
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
