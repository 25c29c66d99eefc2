package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var tableIdentifier = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// ValidTableName reports whether name is a plain lowercase SQL identifier.
func ValidTableName(name string) bool {
	return tableIdentifier.MatchString(name)
}

// GetBackend returns the normalized storage backend name.
// Returns sqlite if not configured
func (c *Config) GetBackend() string {
	backend := strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	if backend == "" {
		return BackendSQLite
	}
	return backend
}

// SetBackend changes the storage backend
// Returns an error if the backend is unknown
func (c *Config) SetBackend(name string) error {
	switch strings.ToLower(name) {
	case BackendSQLite, BackendFile, BackendRedis, BackendMemory, BackendPostgres:
		c.Storage.Backend = strings.ToLower(name)
		return nil
	}
	return fmt.Errorf("unknown storage backend %q", name)
}

// IsSeeded reports whether the prediction random source uses a fixed seed
func (c *Config) IsSeeded() bool {
	return c.Predictor.Seed != 0
}

// GetWatchInterval returns how often the watch loop generates a prediction
func (c *Config) GetWatchInterval() time.Duration {
	const defaultInterval = 5 * time.Second

	d, err := time.ParseDuration(c.Predictor.WatchInterval)
	if err != nil || d <= 0 {
		return defaultInterval
	}
	return d
}

// GetServerAddr returns the HTTP listen address
func (c *Config) GetServerAddr() string {
	const defaultAddr = ":8080"

	if c.Server.Addr == "" {
		return defaultAddr
	}
	return c.Server.Addr
}

// GetAllowedOrigins returns the CORS origins, allowing all when unset
func (c *Config) GetAllowedOrigins() []string {
	if len(c.Server.AllowedOrigins) == 0 {
		return []string{"*"}
	}
	return c.Server.AllowedOrigins
}

// GetRedisPrefix returns the key prefix used by the redis backend
func (c *Config) GetRedisPrefix() string {
	const defaultPrefix = "roulette:"

	if c.Storage.Redis.Prefix == "" {
		return defaultPrefix
	}
	return c.Storage.Redis.Prefix
}

// GetPostgresTable returns the postgres table name
// Returns roulette_kv if not configured
func (c *Config) GetPostgresTable() string {
	if c.Storage.Postgres.Table == "" {
		return "roulette_kv"
	}
	return c.Storage.Postgres.Table
}
