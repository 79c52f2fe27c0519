package store

import (
	"context"
	"errors"
)

// Well-known keys of the persisted storefront state.
const (
	KeyProducts = "products"
	KeyCart     = "cart"
	KeyOrders   = "orders"
	KeyAdminPIN = "admin_pin"
)

// ErrKeyNotFound indicates the requested key has never been written.
var ErrKeyNotFound = errors.New("key not found")

// Store is a minimal key-value persistence contract. Every value is written
// as a whole: Set atomically replaces the previous value, so readers never
// observe a half-written document.
type Store interface {
	// Get returns the stored value for key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set replaces the value for key atomically.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
