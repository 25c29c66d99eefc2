package kv

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/roulette-go/internal/domain"
	"github.com/doeshing/roulette-go/internal/ports"
)

func backends(t *testing.T) map[string]ports.KeyValueStore {
	t.Helper()
	sqliteStore, err := NewSQLiteStore(filepath.Join(t.TempDir(), "roulette.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqliteStore.Close() })

	return map[string]ports.KeyValueStore{
		"memory": NewMemoryStore(),
		"file":   NewFileStore(filepath.Join(t.TempDir(), "data")),
		"sqlite": sqliteStore,
	}
}

func TestKeyValueStoreContract(t *testing.T) {
	ctx := context.Background()

	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.Get(ctx, "roulette_spin_history")
			assert.True(t, errors.Is(err, ports.ErrNotFound), "missing key should be ErrNotFound, got %v", err)

			require.NoError(t, store.Set(ctx, "roulette_spin_history", []byte(`[{"number":4}]`)))
			got, err := store.Get(ctx, "roulette_spin_history")
			require.NoError(t, err)
			assert.Equal(t, `[{"number":4}]`, string(got))

			require.NoError(t, store.Set(ctx, "roulette_spin_history", []byte(`[]`)))
			got, err = store.Get(ctx, "roulette_spin_history")
			require.NoError(t, err)
			assert.Equal(t, `[]`, string(got))

			require.NoError(t, store.Delete(ctx, "roulette_spin_history"))
			require.NoError(t, store.Delete(ctx, "roulette_spin_history"))
			_, err = store.Get(ctx, "roulette_spin_history")
			assert.True(t, errors.Is(err, ports.ErrNotFound))
		})
	}
}

func TestSQLiteStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "roulette.db")

	first, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "roulette_settings", []byte(`{"trackingEnabled":false}`)))
	require.NoError(t, first.Close())

	second, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer second.Close()
	got, err := second.Get(ctx, "roulette_settings")
	require.NoError(t, err)
	assert.Equal(t, `{"trackingEnabled":false}`, string(got))
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	value := []byte("abc")
	require.NoError(t, store.Set(ctx, "k", value))
	value[0] = 'x'

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	store, err := Open(context.Background(), domain.Config{Storage: domain.StorageSettings{Backend: "memory"}})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, store)

	store, err = Open(context.Background(), domain.Config{Storage: domain.StorageSettings{Backend: "file", Path: dir}})
	require.NoError(t, err)
	assert.Equal(t, dir, store.(*FileStore).Dir())

	store, err = Open(context.Background(), domain.Config{Storage: domain.StorageSettings{Backend: "sqlite", Path: filepath.Join(dir, "x.db")}})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	_, err = Open(context.Background(), domain.Config{Storage: domain.StorageSettings{Backend: "redis"}})
	assert.Error(t, err)

	_, err = Open(context.Background(), domain.Config{Storage: domain.StorageSettings{Backend: "postgres"}})
	assert.Error(t, err)

	_, err = Open(context.Background(), domain.Config{Storage: domain.StorageSettings{Backend: "etcd"}})
	assert.Error(t, err)
}

func TestPostgresStoreRejectsUnsafeTable(t *testing.T) {
	_, err := NewPostgresStore(context.Background(), "postgres://127.0.0.1:1/roulette", "kv; DROP TABLE users")
	assert.ErrorContains(t, err, "invalid postgres table name")

	cfg := domain.Config{Storage: domain.StorageSettings{
		Backend:  "postgres",
		Postgres: domain.PostgresSettings{DSN: "postgres://127.0.0.1:1/roulette", Table: "Bad-Name"},
	}}
	_, err = Open(context.Background(), cfg)
	assert.ErrorContains(t, err, "invalid postgres table name")
}
