package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/doeshing/roulette-go/internal/domain"
)

// Validate ensures config structure is consistent.
func Validate(cfg domain.Config) error {
	if err := validateStorage(cfg); err != nil {
		return err
	}
	if err := validatePredictor(cfg.Predictor); err != nil {
		return err
	}
	if err := validateLogging(cfg.Logging); err != nil {
		return err
	}
	return nil
}

func validateStorage(cfg domain.Config) error {
	switch cfg.GetBackend() {
	case domain.BackendSQLite, domain.BackendFile, domain.BackendMemory:
	case domain.BackendPostgres:
		if strings.TrimSpace(cfg.Storage.Postgres.DSN) == "" {
			return fmt.Errorf("storage.postgres.dsn must be set for the postgres backend")
		}
		if !domain.ValidTableName(cfg.GetPostgresTable()) {
			return fmt.Errorf("storage.postgres.table must be a lowercase identifier, got %q", cfg.GetPostgresTable())
		}
	case domain.BackendRedis:
		if strings.TrimSpace(cfg.Storage.Redis.Addr) == "" {
			return fmt.Errorf("storage.redis.addr must be set for the redis backend")
		}
		if cfg.Storage.Redis.DB < 0 {
			return fmt.Errorf("storage.redis.db must be >= 0")
		}
	default:
		return fmt.Errorf("storage.backend must be sqlite|file|redis|postgres|memory, got %s", cfg.Storage.Backend)
	}
	return nil
}

func validatePredictor(p domain.PredictorSettings) error {
	if p.WatchInterval == "" {
		return nil
	}
	d, err := time.ParseDuration(p.WatchInterval)
	if err != nil {
		return fmt.Errorf("predictor.watch_interval invalid: %w", err)
	}
	if d <= 0 {
		return fmt.Errorf("predictor.watch_interval must be > 0")
	}
	return nil
}

func validateLogging(l domain.LoggingSettings) error {
	if l.Level == "" {
		return nil
	}
	if _, err := logrus.ParseLevel(l.Level); err != nil {
		return fmt.Errorf("logging.level invalid: %w", err)
	}
	return nil
}
