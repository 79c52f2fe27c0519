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

// orderRepository implements OrderRepository over the key-value store.
type orderRepository struct {
	kv     store.Store
	logger zerolog.Logger
}

// NewOrderRepository creates a store-backed order repository.
func NewOrderRepository(kv store.Store, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		kv:     kv,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// Load returns the persisted order log, newest first. A missing or
// malformed log is recovered as empty, never as an error.
func (r *orderRepository) Load(ctx context.Context) ([]model.Order, error) {
	data, err := r.kv.Get(ctx, store.KeyOrders)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return []model.Order{}, nil
		}
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}

	var orders []model.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		r.logger.Warn().Err(err).Msg("malformed persisted order log, recovering as empty")
		return []model.Order{}, nil
	}
	return orders, nil
}

// Save replaces the persisted order log wholesale.
func (r *orderRepository) Save(ctx context.Context, orders []model.Order) error {
	if orders == nil {
		orders = []model.Order{}
	}
	data, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("failed to encode orders: %w", err)
	}
	if err := r.kv.Set(ctx, store.KeyOrders, data); err != nil {
		r.logger.Error().Err(err).Int("orders", len(orders)).Msg("failed to persist orders")
		return fmt.Errorf("failed to persist orders: %w", err)
	}
	return nil
}

// Raw returns the stored order log bytes verbatim, or "[]" when absent.
func (r *orderRepository) Raw(ctx context.Context) ([]byte, error) {
	data, err := r.kv.Get(ctx, store.KeyOrders)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return []byte("[]"), nil
		}
		return nil, fmt.Errorf("failed to read orders: %w", err)
	}
	return data, nil
}
