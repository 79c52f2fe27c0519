package service

import (
	"context"

	"game-shop/internal/model"
)

// CatalogFilter narrows a catalogue listing. Zero values leave the
// corresponding dimension unfiltered.
type CatalogFilter struct {
	Query    string // case-insensitive match over title, description and tags
	Game     string // exact game match
	MinPrice int64
	MaxPrice int64 // 0 means no upper bound
}

// CatalogService defines operations for catalogue management.
type CatalogService interface {
	// List returns the catalogue: the persisted override when present,
	// otherwise the bundled default.
	List(ctx context.Context) ([]model.Product, error)

	// Search returns the catalogue narrowed by the filter.
	Search(ctx context.Context, filter CatalogFilter) ([]model.Product, error)

	// GetByID returns a single product, or model.ErrProductNotFound.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// Replace overwrites the persisted catalogue wholesale.
	Replace(ctx context.Context, products []model.Product) error

	// Upsert updates the product with a matching id, or prepends it as a
	// new product. A missing id is generated from the title.
	Upsert(ctx context.Context, product model.Product) (*model.Product, error)

	// Delete removes the product with the given id.
	Delete(ctx context.Context, id string) error

	// Export returns the persisted catalogue document verbatim.
	Export(ctx context.Context) ([]byte, error)

	// Import parses an uploaded catalogue document and wholesale-replaces
	// the persisted catalogue. The whole document is rejected on any parse
	// failure; nothing is written.
	Import(ctx context.Context, data []byte) ([]model.Product, error)
}

// CartService defines operations for the live cart. Every mutation
// persists synchronously before returning.
type CartService interface {
	// Get returns the current cart lines.
	Get(ctx context.Context) ([]model.CartLine, error)

	// Add puts one unit of the product in the cart: an existing line gains
	// qty+1, otherwise a new line is appended with qty=1 copying the
	// product's current title and price.
	Add(ctx context.Context, productID string) ([]model.CartLine, error)

	// AdjustQty applies delta to the line's quantity, clamped to a floor
	// of 1. It never removes a line; only Remove does.
	AdjustQty(ctx context.Context, productID string, delta int) ([]model.CartLine, error)

	// Remove deletes the line for the product.
	Remove(ctx context.Context, productID string) ([]model.CartLine, error)

	// Total returns sum(price*qty) over all lines, 0 for an empty cart.
	Total(ctx context.Context) (int64, error)

	// Clear empties the cart.
	Clear(ctx context.Context) error
}

// OrderService defines operations for order creation and the admin status
// workflow.
type OrderService interface {
	// Checkout snapshots the cart into a new order, prepends it to the
	// order log, clears the cart and returns the order.
	Checkout(ctx context.Context, req *model.CheckoutRequest) (*model.Order, error)

	// List returns all orders, newest first.
	List(ctx context.Context) ([]model.Order, error)

	// GetByID returns a single order, or model.ErrOrderNotFound.
	GetByID(ctx context.Context, id string) (*model.Order, error)

	// SetStatus overwrites the order's status and appends to its status
	// history. Any transition is permitted.
	SetStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error)

	// Delete removes the order entirely, from any state.
	Delete(ctx context.Context, id string) error

	// Export returns the persisted order log document verbatim.
	Export(ctx context.Context) ([]byte, error)
}

// AdminService defines the PIN gate operations.
type AdminService interface {
	// EnsurePIN seeds the stored PIN from the configured default when no
	// PIN is set yet.
	EnsurePIN(ctx context.Context, defaultPIN string) error

	// VerifyPIN reports whether the supplied PIN matches the stored one.
	VerifyPIN(ctx context.Context, pin string) (bool, error)

	// SetPIN validates the PIN format (4-8 digits) and stores it.
	SetPIN(ctx context.Context, pin string) error
}
