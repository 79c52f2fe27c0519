package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"game-shop/internal/model"
	"game-shop/internal/store"

	"github.com/rs/zerolog"
)

// cartRepository implements CartRepository over the key-value store.
type cartRepository struct {
	kv     store.Store
	logger zerolog.Logger
}

// NewCartRepository creates a store-backed cart repository.
func NewCartRepository(kv store.Store, logger zerolog.Logger) CartRepository {
	return &cartRepository{
		kv:     kv,
		logger: logger.With().Str("repository", "cart").Logger(),
	}
}

// Load returns the persisted cart lines. A missing or malformed cart is
// recovered as an empty cart, never as an error.
func (r *cartRepository) Load(ctx context.Context) ([]model.CartLine, error) {
	data, err := r.kv.Get(ctx, store.KeyCart)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return []model.CartLine{}, nil
		}
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var lines []model.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		r.logger.Warn().Err(err).Msg("malformed persisted cart, recovering as empty")
		return []model.CartLine{}, nil
	}
	return lines, nil
}

// Save replaces the persisted cart wholesale.
func (r *cartRepository) Save(ctx context.Context, lines []model.CartLine) error {
	if lines == nil {
		lines = []model.CartLine{}
	}
	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := r.kv.Set(ctx, store.KeyCart, data); err != nil {
		r.logger.Error().Err(err).Int("lines", len(lines)).Msg("failed to persist cart")
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	return nil
}

// Clear empties the persisted cart.
func (r *cartRepository) Clear(ctx context.Context) error {
	return r.Save(ctx, []model.CartLine{})
}
