package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// pgStore implements Store on a single PostgreSQL key-value table. The
// whole-value UPSERT keeps the replace-the-document write semantics of the
// file store when the state is hosted server-side.
type pgStore struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// Schema is the DDL for the key-value table backing the PostgreSQL store.
const Schema = `
	CREATE TABLE IF NOT EXISTS kv_entries (
		key        TEXT PRIMARY KEY,
		value      JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

// NewPostgresStore creates a PostgreSQL-backed store, creating the
// kv_entries table if it does not exist.
func NewPostgresStore(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) (Store, error) {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return nil, fmt.Errorf("failed to create kv_entries table: %w", err)
	}
	return &pgStore{
		pool:   pool,
		logger: logger.With().Str("store", "postgres").Logger(),
	}, nil
}

// Get returns the stored value for key, or ErrKeyNotFound.
func (s *pgStore) Get(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT value FROM kv_entries WHERE key = $1`

	var value []byte
	err := s.pool.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrKeyNotFound
		}
		s.logger.Error().Err(err).Str("key", key).Msg("failed to query key")
		return nil, fmt.Errorf("failed to query key %s: %w", key, err)
	}
	return value, nil
}

// Set replaces the value for key atomically via UPSERT.
func (s *pgStore) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv_entries (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`

	if _, err := s.pool.Exec(ctx, query, key, value); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to upsert key")
		return fmt.Errorf("failed to upsert key %s: %w", key, err)
	}

	s.logger.Debug().Str("key", key).Int("bytes", len(value)).Msg("key written")
	return nil
}

// Delete removes the key. Deleting an absent key is not an error.
func (s *pgStore) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM kv_entries WHERE key = $1`

	if _, err := s.pool.Exec(ctx, query, key); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to delete key")
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}
