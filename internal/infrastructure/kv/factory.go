package kv

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/doeshing/roulette-go/internal/domain"
	"github.com/doeshing/roulette-go/internal/pkg/filesystem"
	"github.com/doeshing/roulette-go/internal/ports"
)

// Open builds the backend selected by cfg.Storage. ctx bounds the
// initial connection for network backends.
func Open(ctx context.Context, cfg domain.Config) (ports.KeyValueStore, error) {
	path := filesystem.ExpandPath(cfg.Storage.Path)

	switch backend := cfg.GetBackend(); backend {
	case domain.BackendSQLite:
		if path == "" {
			path = filepath.Join(filesystem.AppDir(), "roulette.db")
		}
		store, err := NewSQLiteStore(path)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store %s: %w", path, err)
		}
		return store, nil
	case domain.BackendFile:
		if path == "" {
			path = filepath.Join(filesystem.AppDir(), "data")
		}
		return NewFileStore(path), nil
	case domain.BackendRedis:
		r := cfg.Storage.Redis
		if r.Addr == "" {
			return nil, fmt.Errorf("storage.redis.addr must be set for the redis backend")
		}
		return NewRedisStore(r.Addr, r.Password, r.DB, cfg.GetRedisPrefix()), nil
	case domain.BackendPostgres:
		if cfg.Storage.Postgres.DSN == "" {
			return nil, fmt.Errorf("storage.postgres.dsn must be set for the postgres backend")
		}
		store, err := NewPostgresStore(ctx, cfg.Storage.Postgres.DSN, cfg.GetPostgresTable())
		if err != nil {
			return nil, fmt.Errorf("open postgres store: %w", err)
		}
		return store, nil
	case domain.BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
