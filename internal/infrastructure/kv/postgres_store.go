package kv

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/doeshing/roulette-go/internal/domain"
	"github.com/doeshing/roulette-go/internal/ports"
)

const (
	colKey       = "key"
	colValue     = "value"
	colUpdatedAt = "updated_at"
)

// PostgresStore keeps blobs in a single postgres table.
type PostgresStore struct {
	dbc   *pgxpool.Pool
	table string
}

// NewPostgresStore connects to dsn and creates table when missing. table
// must be a plain lowercase identifier.
func NewPostgresStore(ctx context.Context, dsn, table string) (*PostgresStore, error) {
	if !domain.ValidTableName(table) {
		return nil, fmt.Errorf("invalid postgres table name %q", table)
	}
	dbc, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := dbc.Ping(ctx); err != nil {
		dbc.Close()
		return nil, err
	}
	store := &PostgresStore{dbc: dbc, table: table}
	if err := store.init(ctx); err != nil {
		dbc.Close()
		return nil, err
	}
	return store, nil
}

func (s *PostgresStore) init(ctx context.Context) error {
	_, err := s.dbc.Exec(ctx, fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		%s TEXT PRIMARY KEY,
		%s BYTEA NOT NULL,
		%s TIMESTAMPTZ NOT NULL
	)`, s.table, colKey, colValue, colUpdatedAt))
	return err
}

// Get implements ports.KeyValueStore.
func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	query := sq.Select(colValue).
		From(s.table).
		Where(sq.Eq{colKey: key}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var value []byte
	if err := s.dbc.QueryRow(ctx, sqlStr, args...).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return value, nil
}

// Set upserts the blob.
func (s *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	query := sq.Insert(s.table).
		Columns(colKey, colValue, colUpdatedAt).
		Values(key, value, time.Now().UTC()).
		Suffix(fmt.Sprintf("ON CONFLICT (%s) DO UPDATE SET %s = EXCLUDED.%s, %s = EXCLUDED.%s",
			colKey, colValue, colValue, colUpdatedAt, colUpdatedAt)).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}
	_, err = s.dbc.Exec(ctx, sqlStr, args...)
	return err
}

// Delete removes the key.
func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	query := sq.Delete(s.table).
		Where(sq.Eq{colKey: key}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}
	_, err = s.dbc.Exec(ctx, sqlStr, args...)
	return err
}

// Close releases the pool.
func (s *PostgresStore) Close() error {
	s.dbc.Close()
	return nil
}

var _ ports.KeyValueStore = (*PostgresStore)(nil)
