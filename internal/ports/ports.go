// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// The application core (history store, prediction engine, strategy and
// settings services) depends only on these abstractions. Concrete adapters
// live in the infrastructure layer: key-value backends (SQLite, files,
// Redis, memory), the YAML config loader and the logrus logger.
package ports

import (
	"context"
	"errors"
	"time"

	"github.com/doeshing/roulette-go/internal/domain"
)

// ErrNotFound is returned by a KeyValueStore when a key is absent.
var ErrNotFound = errors.New("key not found")

// KeyValueStore persists raw JSON blobs under logical keys.
// Implementations must be safe for concurrent use.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.roulette/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// Random is the randomness the prediction engine draws from.
// *math/rand.Rand satisfies it; tests inject seeded or scripted sources.
type Random interface {
	Intn(n int) int
}

// Clock supplies the current time for timestamps.
type Clock func() time.Time

// Logger provides structured logging abstraction for the application layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
