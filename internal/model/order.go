package model

import "time"

// OrderStatus is the lifecycle state of an order. The intended progression
// is pending -> paid -> delivered, but transitions are not enforced: the
// admin may set any status from any other at any time.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPaid      OrderStatus = "paid"
	StatusDelivered OrderStatus = "delivered"
)

// ValidStatus reports whether s is one of the known order statuses.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case StatusPending, StatusPaid, StatusDelivered:
		return true
	}
	return false
}

// Payment methods offered at checkout. The value is recorded verbatim and
// not validated against this set.
const (
	PaymentCash     = "cash"
	PaymentTransfer = "transfer"
)

// Customer holds the contact details captured on the checkout form.
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Payment holds the payment method and an optional transaction reference.
type Payment struct {
	Method         string `json:"method"`
	TransactionRef string `json:"tx"`
}

// StatusChange is one entry in an order's append-only status history.
type StatusChange struct {
	Status    OrderStatus `json:"status"`
	ChangedAt time.Time   `json:"changedAt"`
}

// Order is an immutable snapshot of a completed checkout. Items are a value
// copy of the cart lines at checkout time; catalogue price changes never
// retroactively alter historical totals. After creation only the status
// field (and its history) may change, or the order may be deleted wholesale.
type Order struct {
	ID        string         `json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	Items     []CartLine     `json:"items"`
	Customer  Customer       `json:"customer"`
	Note      string         `json:"note"`
	Payment   Payment        `json:"payment"`
	Total     int64          `json:"total"`
	Status    OrderStatus    `json:"status"`
	History   []StatusChange `json:"history,omitempty"`
}

// CheckoutRequest is the request payload for creating an order.
type CheckoutRequest struct {
	Customer Customer `json:"customer"`
	Note     string   `json:"note"`
	Payment  Payment  `json:"payment"`
}
