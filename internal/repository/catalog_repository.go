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

// catalogRepository implements CatalogRepository over the key-value store.
type catalogRepository struct {
	kv     store.Store
	logger zerolog.Logger
}

// NewCatalogRepository creates a store-backed catalogue repository.
func NewCatalogRepository(kv store.Store, logger zerolog.Logger) CatalogRepository {
	return &catalogRepository{
		kv:     kv,
		logger: logger.With().Str("repository", "catalog").Logger(),
	}
}

// Load returns the persisted catalogue override, or nil when absent.
// Malformed stored JSON is logged and treated as absent so the caller can
// fall through to the default catalogue.
func (r *catalogRepository) Load(ctx context.Context) ([]model.Product, error) {
	data, err := r.kv.Get(ctx, store.KeyProducts)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	var products []model.Product
	if err := json.Unmarshal(data, &products); err != nil {
		r.logger.Warn().Err(err).Msg("malformed persisted catalog, treating as absent")
		return nil, nil
	}
	return products, nil
}

// Replace overwrites the persisted catalogue wholesale.
func (r *catalogRepository) Replace(ctx context.Context, products []model.Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	if err := r.kv.Set(ctx, store.KeyProducts, data); err != nil {
		r.logger.Error().Err(err).Int("products", len(products)).Msg("failed to persist catalog")
		return fmt.Errorf("failed to persist catalog: %w", err)
	}
	return nil
}

// Raw returns the stored catalogue bytes verbatim, or "[]" when absent.
func (r *catalogRepository) Raw(ctx context.Context) ([]byte, error) {
	data, err := r.kv.Get(ctx, store.KeyProducts)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return []byte("[]"), nil
		}
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return data, nil
}
