// internal/domain/order/entity.go
package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/your-org/shopfront/internal/domain/cart"
)

// Status represents the order status
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusProcessing Status = "PROCESSING"
	StatusShipped    Status = "SHIPPED"
	StatusDelivered  Status = "DELIVERED"
	StatusCancelled  Status = "CANCELLED"
)

// AllStatuses lists every status in lifecycle order
var AllStatuses = []Status{
	StatusPending,
	StatusProcessing,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
}

var ErrInvalidStatus = errors.New("invalid order status")

// ParseStatus parses a status name case-insensitively
func ParseStatus(s string) (Status, error) {
	status := Status(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range AllStatuses {
		if status == known {
			return status, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// IsTerminal reports whether the status is DELIVERED or CANCELLED
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// AvailableTransitions returns the statuses a dashboard should offer for an
// order in status s. The store itself accepts any transition.
func (s Status) AvailableTransitions() []Status {
	if s.IsTerminal() {
		return []Status{}
	}
	out := make([]Status, 0, len(AllStatuses))
	for _, next := range AllStatuses {
		if next != s {
			out = append(out, next)
		}
	}
	return out
}

// CustomerInfo holds the checkout contact details
type CustomerInfo struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Address string `json:"address" binding:"required"`
}

// Order is an immutable snapshot of a checkout plus its mutable status
type Order struct {
	ID              string          `json:"id"`
	Items           []cart.CartItem `json:"items"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Discount        decimal.Decimal `json:"discount"`
	Shipping        decimal.Decimal `json:"shipping"`
	Total           decimal.Decimal `json:"total"`
	Status          Status          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	CustomerName    string          `json:"customer_name"`
	CustomerEmail   string          `json:"customer_email"`
	ShippingAddress string          `json:"shipping_address"`
}

// ItemCount returns the sum of line quantities
func (o *Order) ItemCount() int {
	count := 0
	for _, item := range o.Items {
		count += item.Quantity
	}
	return count
}

// Clone returns a deep copy of the order
func (o Order) Clone() Order {
	o.Items = cart.CloneItems(o.Items)
	return o
}
