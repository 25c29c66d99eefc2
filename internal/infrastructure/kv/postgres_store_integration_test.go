//go:build integration

package kv

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/roulette-go/internal/ports"
)

// Integration tests require a reachable postgres server in ROULETTE_POSTGRES_DSN.
//
// Run with: go test -tags=integration -v ./internal/infrastructure/kv/

func TestIntegration_PostgresStore(t *testing.T) {
	dsn := os.Getenv("ROULETTE_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("ROULETTE_POSTGRES_DSN must be set for integration tests")
	}
	ctx := context.Background()
	table := "roulette_kv_test_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	store, err := NewPostgresStore(ctx, dsn, table)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = store.dbc.Exec(ctx, "DROP TABLE IF EXISTS "+table)
		store.Close()
	})

	_, err = store.Get(ctx, "roulette_settings")
	assert.ErrorIs(t, err, ports.ErrNotFound)

	require.NoError(t, store.Set(ctx, "roulette_settings", []byte(`{"trackingEnabled":true}`)))
	require.NoError(t, store.Set(ctx, "roulette_settings", []byte(`{"trackingEnabled":false}`)))
	got, err := store.Get(ctx, "roulette_settings")
	require.NoError(t, err)
	assert.Equal(t, `{"trackingEnabled":false}`, string(got))

	require.NoError(t, store.Delete(ctx, "roulette_settings"))
	_, err = store.Get(ctx, "roulette_settings")
	assert.ErrorIs(t, err, ports.ErrNotFound)
}
