// internal/domain/checkout/service.go
package checkout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/your-org/shopfront/internal/domain/cart"
	"github.com/your-org/shopfront/internal/domain/order"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrInvalidCustomer = errors.New("invalid customer info")
)

// ShippingPolicy decides the shipping charge for an order
type ShippingPolicy struct {
	FlatRate      decimal.Decimal
	FreeThreshold decimal.Decimal
}

// Cost returns the shipping charge for the discounted subtotal. Orders at or
// above the free threshold ship free; a zero threshold disables free shipping.
func (p ShippingPolicy) Cost(discounted decimal.Decimal) decimal.Decimal {
	if p.FreeThreshold.IsPositive() && discounted.GreaterThanOrEqual(p.FreeThreshold) {
		return decimal.Zero
	}
	return p.FlatRate
}

// Quote is the price breakdown of the current cart
type Quote struct {
	Items        []cart.CartItem `json:"items"`
	TotalItems   int             `json:"total_items"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	Discount     decimal.Decimal `json:"discount"`
	PromoCode    string          `json:"promo_code,omitempty"`
	Shipping     decimal.Decimal `json:"shipping"`
	FreeShipping bool            `json:"free_shipping"`
	Total        decimal.Decimal `json:"total"`
}

// Service turns the cart into an order
type Service struct {
	cart     *cart.Store
	orders   *order.Store
	shipping ShippingPolicy
	logger   logrus.FieldLogger
}

// NewService creates a new checkout service
func NewService(c *cart.Store, orders *order.Store, shipping ShippingPolicy, logger logrus.FieldLogger) *Service {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Service{
		cart:     c,
		orders:   orders,
		shipping: shipping,
		logger:   logger.WithField("component", "checkout"),
	}
}

// Quote prices the current cart without placing an order
func (s *Service) Quote() Quote {
	return s.quote(s.cart.Snapshot())
}

func (s *Service) quote(snap cart.Snapshot) Quote {
	totals := snap.Totals
	discounted := totals.TotalPrice.Sub(totals.Discount)
	shipping := s.shipping.Cost(discounted)
	return Quote{
		Items:        snap.Items,
		TotalItems:   totals.TotalItems,
		Subtotal:     totals.TotalPrice,
		Discount:     totals.Discount,
		PromoCode:    totals.PromoCode,
		Shipping:     shipping,
		FreeShipping: shipping.IsZero() && !s.shipping.FlatRate.IsZero(),
		Total:        discounted.Add(shipping),
	}
}

// PlaceOrder records an order for the current cart and then clears the cart.
// The two steps are sequential; a concurrent cart change between them is not
// guarded against.
func (s *Service) PlaceOrder(customer order.CustomerInfo) (order.Order, error) {
	if err := validateCustomer(customer); err != nil {
		return order.Order{}, err
	}

	snap := s.cart.Snapshot()
	if len(snap.Items) == 0 {
		return order.Order{}, ErrEmptyCart
	}
	q := s.quote(snap)

	placed := s.orders.AddOrder(q.Items, q.Subtotal, q.Discount, q.Shipping, customer)
	s.cart.ClearCart()

	s.logger.WithFields(logrus.Fields{
		"order_id":   placed.ID,
		"promo_code": q.PromoCode,
	}).Info("Checkout completed")

	return placed, nil
}

func validateCustomer(c order.CustomerInfo) error {
	switch {
	case strings.TrimSpace(c.Name) == "":
		return fmt.Errorf("%w: name is required", ErrInvalidCustomer)
	case strings.TrimSpace(c.Email) == "":
		return fmt.Errorf("%w: email is required", ErrInvalidCustomer)
	case strings.TrimSpace(c.Address) == "":
		return fmt.Errorf("%w: address is required", ErrInvalidCustomer)
	}
	return nil
}
