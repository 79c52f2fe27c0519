package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"game-shop/internal/store"

	"github.com/rs/zerolog"
)

// pinRepository implements PINRepository over the key-value store. The
// hash is stored JSON-encoded so the value stays a valid JSON document for
// every store backend.
type pinRepository struct {
	kv     store.Store
	logger zerolog.Logger
}

// NewPINRepository creates a store-backed PIN repository.
func NewPINRepository(kv store.Store, logger zerolog.Logger) PINRepository {
	return &pinRepository{
		kv:     kv,
		logger: logger.With().Str("repository", "pin").Logger(),
	}
}

// LoadHash returns the stored PIN hash, or "" when none is set.
func (r *pinRepository) LoadHash(ctx context.Context) (string, error) {
	data, err := r.kv.Get(ctx, store.KeyAdminPIN)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to load admin PIN: %w", err)
	}

	var hash string
	if err := json.Unmarshal(data, &hash); err != nil {
		r.logger.Warn().Err(err).Msg("malformed persisted admin PIN, treating as unset")
		return "", nil
	}
	return hash, nil
}

// SaveHash replaces the stored PIN hash.
func (r *pinRepository) SaveHash(ctx context.Context, hash string) error {
	data, err := json.Marshal(hash)
	if err != nil {
		return fmt.Errorf("failed to encode admin PIN: %w", err)
	}
	if err := r.kv.Set(ctx, store.KeyAdminPIN, data); err != nil {
		r.logger.Error().Err(err).Msg("failed to persist admin PIN")
		return fmt.Errorf("failed to persist admin PIN: %w", err)
	}
	return nil
}
