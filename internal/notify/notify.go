// Package notify sends best-effort order notifications to an external
// webhook. A notification failure is logged and never surfaced to the
// customer: by the time a notification is attempted the order is already
// committed locally.
package notify

import (
	"context"

	"game-shop/internal/model"
)

// Notifier delivers order events to an external channel.
type Notifier interface {
	// OrderCreated announces a newly placed order.
	OrderCreated(ctx context.Context, order *model.Order) error
}

// nopNotifier is used when notifications are not configured.
type nopNotifier struct{}

// NewNop creates a Notifier that does nothing.
func NewNop() Notifier {
	return nopNotifier{}
}

func (nopNotifier) OrderCreated(ctx context.Context, order *model.Order) error {
	return nil
}
