package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"game-shop/internal/model"
	"game-shop/internal/notify"
	"game-shop/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	orders   repository.OrderRepository
	cart     repository.CartRepository
	notifier notify.Notifier
	logger   zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orders repository.OrderRepository,
	cart repository.CartRepository,
	notifier notify.Notifier,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orders:   orders,
		cart:     cart,
		notifier: notifier,
		logger:   logger.With().Str("service", "order").Logger(),
	}
}

// newOrderID produces an id that is monotonically orderable by creation
// time and unique even when two checkouts land in the same millisecond.
func newOrderID(now time.Time) string {
	suffix := strings.ToUpper(uuid.NewString()[:6])
	return fmt.Sprintf("ORD-%d-%s", now.UnixMilli(), suffix)
}

// Checkout snapshots the cart into a new order, prepends it to the order
// log, clears the cart and returns the order. An empty-cart checkout is
// permitted and produces a zero-total order. The order is durable locally
// before the best-effort notification is attempted; a notification failure
// never undoes the order.
func (s *orderService) Checkout(ctx context.Context, req *model.CheckoutRequest) (*model.Order, error) {
	if err := validateCheckoutRequest(req); err != nil {
		return nil, err
	}

	lines, err := s.cart.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}

	// Snapshot the cart lines by value; the order must never share state
	// with the live cart.
	items := make([]model.CartLine, len(lines))
	copy(items, lines)

	now := time.Now().UTC()
	order := model.Order{
		ID:        newOrderID(now),
		CreatedAt: now,
		Items:     items,
		Customer: model.Customer{
			Name:  strings.TrimSpace(req.Customer.Name),
			Email: strings.TrimSpace(req.Customer.Email),
			Phone: strings.TrimSpace(req.Customer.Phone),
		},
		Note: req.Note,
		Payment: model.Payment{
			Method:         req.Payment.Method,
			TransactionRef: req.Payment.TransactionRef,
		},
		Total:  model.CartTotal(items),
		Status: model.StatusPending,
		History: []model.StatusChange{
			{Status: model.StatusPending, ChangedAt: now},
		},
	}

	orders, err := s.orders.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read orders: %w", err)
	}

	// Newest first. If this write fails nothing is recorded and the cart
	// is left untouched.
	orders = append([]model.Order{order}, orders...)
	if err := s.orders.Save(ctx, orders); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID).Msg("failed to persist order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err := s.cart.Clear(ctx); err != nil {
		// The order is already committed; the stale cart is recoverable by
		// the next cart mutation, so this is logged rather than failed.
		s.logger.Error().Err(err).Str("order_id", order.ID).Msg("failed to clear cart after checkout")
	}

	s.logger.Info().
		Str("order_id", order.ID).
		Int("item_count", len(order.Items)).
		Int64("total", order.Total).
		Msg("order created successfully")

	if err := s.notifier.OrderCreated(ctx, &order); err != nil {
		s.logger.Warn().Err(err).Str("order_id", order.ID).Msg("order notification failed, continuing")
	}

	return &order, nil
}

// List returns all orders, newest first.
func (s *orderService) List(ctx context.Context) ([]model.Order, error) {
	return s.orders.Load(ctx)
}

// GetByID returns a single order, or model.ErrOrderNotFound.
func (s *orderService) GetByID(ctx context.Context, id string) (*model.Order, error) {
	orders, err := s.orders.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	s.logger.Debug().Str("order_id", id).Msg("order not found")
	return nil, model.ErrOrderNotFound
}

// SetStatus overwrites the order's status and appends to its status
// history. Any status may be set from any other; the admin interface does
// not enforce forward-only progression.
func (s *orderService) SetStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	if !model.ValidStatus(status) {
		return nil, model.ErrInvalidStatus
	}

	orders, err := s.orders.Load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		if orders[i].ID != id {
			continue
		}
		orders[i].Status = status
		orders[i].History = append(orders[i].History, model.StatusChange{
			Status:    status,
			ChangedAt: time.Now().UTC(),
		})
		if err := s.orders.Save(ctx, orders); err != nil {
			return nil, fmt.Errorf("failed to update order status: %w", err)
		}
		s.logger.Info().
			Str("order_id", id).
			Str("status", string(status)).
			Msg("order status updated")
		return &orders[i], nil
	}

	s.logger.Warn().Str("order_id", id).Msg("status update for unknown order, no-op")
	return nil, model.ErrOrderNotFound
}

// Delete removes the order entirely. Permitted from any state,
// irreversible. An unknown id is a no-op surfaced as model.ErrOrderNotFound.
func (s *orderService) Delete(ctx context.Context, id string) error {
	orders, err := s.orders.Load(ctx)
	if err != nil {
		return err
	}

	kept := make([]model.Order, 0, len(orders))
	found := false
	for _, o := range orders {
		if o.ID == id {
			found = true
			continue
		}
		kept = append(kept, o)
	}
	if !found {
		s.logger.Warn().Str("order_id", id).Msg("delete of unknown order, no-op")
		return model.ErrOrderNotFound
	}

	if err := s.orders.Save(ctx, kept); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	s.logger.Info().Str("order_id", id).Msg("order deleted")
	return nil
}

// Export returns the persisted order log document verbatim.
func (s *orderService) Export(ctx context.Context) ([]byte, error) {
	return s.orders.Raw(ctx)
}

// validateCheckoutRequest enforces the required customer fields. The
// payment method is recorded verbatim and deliberately not validated.
func validateCheckoutRequest(req *model.CheckoutRequest) error {
	if req == nil {
		return fmt.Errorf("checkout request is nil")
	}
	if strings.TrimSpace(req.Customer.Name) == "" || strings.TrimSpace(req.Customer.Email) == "" {
		return model.ErrMissingCustomerField
	}
	return nil
}
