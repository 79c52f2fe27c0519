package repository

import (
	"context"

	"game-shop/internal/model"
)

// CatalogRepository defines persistence operations for the product
// catalogue override.
type CatalogRepository interface {
	// Load returns the persisted catalogue, or nil when no valid override
	// is stored. A malformed override is treated as absent, never as an
	// error.
	Load(ctx context.Context) ([]model.Product, error)

	// Replace overwrites the persisted catalogue wholesale.
	Replace(ctx context.Context, products []model.Product) error

	// Raw returns the stored catalogue bytes verbatim, for export.
	Raw(ctx context.Context) ([]byte, error)
}

// CartRepository defines persistence operations for the live cart.
type CartRepository interface {
	// Load returns the persisted cart lines. A missing or malformed cart
	// is an empty cart.
	Load(ctx context.Context) ([]model.CartLine, error)

	// Save replaces the persisted cart wholesale.
	Save(ctx context.Context, lines []model.CartLine) error

	// Clear empties the persisted cart.
	Clear(ctx context.Context) error
}

// OrderRepository defines persistence operations for the order log.
type OrderRepository interface {
	// Load returns the persisted orders, newest first. A missing or
	// malformed log is an empty log.
	Load(ctx context.Context) ([]model.Order, error)

	// Save replaces the persisted order log wholesale.
	Save(ctx context.Context, orders []model.Order) error

	// Raw returns the stored order log bytes verbatim, for export.
	Raw(ctx context.Context) ([]byte, error)
}

// PINRepository defines persistence operations for the admin PIN hash.
type PINRepository interface {
	// LoadHash returns the stored PIN hash, or "" when none is set.
	LoadHash(ctx context.Context) (string, error)

	// SaveHash replaces the stored PIN hash.
	SaveHash(ctx context.Context, hash string) error
}
