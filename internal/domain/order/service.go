// internal/domain/order/service.go
package order

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/your-org/shopfront/internal/domain/cart"
	"github.com/your-org/shopfront/internal/pkg/lifecycle"
)

const storeName = "orders"

// Store is the append-only order log, newest first
type Store struct {
	guard  lifecycle.Guard
	mu     sync.RWMutex
	orders []Order
	now    func() time.Time
	newID  func() string
	logger logrus.FieldLogger
}

// NewStore creates an empty order log
func NewStore(logger logrus.FieldLogger) *Store {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	s := &Store{
		orders: []Order{},
		now:    func() time.Time { return time.Now().UTC() },
		newID:  generateOrderID,
		logger: logger.WithField("store", storeName),
	}
	s.guard.Open()
	return s
}

// Close discards the order log; later calls panic
func (s *Store) Close() {
	if s == nil {
		return
	}
	s.guard.Close()
}

func (s *Store) check(op string) {
	if s == nil {
		lifecycle.Fail(storeName, op, lifecycle.ErrNotInitialized)
	}
	s.guard.Check(storeName, op)
}

// generateOrderID returns an id that is unique for the process lifetime
func generateOrderID() string {
	return fmt.Sprintf("ORD-%s", strings.ToUpper(uuid.NewString()))
}

// AddOrder records a new PENDING order at the front of the log. The items are
// copied, so later cart changes cannot affect it. Total is fixed here as
// subtotal - discount + shipping.
func (s *Store) AddOrder(items []cart.CartItem, subtotal, discount, shipping decimal.Decimal, customer CustomerInfo) Order {
	s.check("AddOrder")

	o := Order{
		ID:              s.newID(),
		Items:           cart.CloneItems(items),
		Subtotal:        subtotal,
		Discount:        discount,
		Shipping:        shipping,
		Total:           subtotal.Sub(discount).Add(shipping),
		Status:          StatusPending,
		CreatedAt:       s.now(),
		CustomerName:    customer.Name,
		CustomerEmail:   customer.Email,
		ShippingAddress: customer.Address,
	}

	s.mu.Lock()
	s.orders = append([]Order{o}, s.orders...)
	s.mu.Unlock()

	s.logger.WithFields(logrus.Fields{
		"order_id": o.ID,
		"items":    o.ItemCount(),
		"total":    o.Total.StringFixed(2),
	}).Info("Order placed")

	return o.Clone()
}

// UpdateOrderStatus sets the status of the order with the given id. Any
// transition is accepted. It reports false and does nothing for an unknown id.
func (s *Store) UpdateOrderStatus(orderID string, status Status) bool {
	s.check("UpdateOrderStatus")
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != orderID {
			continue
		}
		previous := s.orders[i].Status
		s.orders[i].Status = status
		s.logger.WithFields(logrus.Fields{
			"order_id": orderID,
			"from":     previous,
			"to":       status,
		}).Info("Order status updated")
		return true
	}
	return false
}

// GetOrderByID looks up an order
func (s *Store) GetOrderByID(orderID string) (Order, bool) {
	s.check("GetOrderByID")
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.orders {
		if o.ID == orderID {
			return o.Clone(), true
		}
	}
	return Order{}, false
}

// GetOrdersByStatus returns the orders in the given status, newest first
func (s *Store) GetOrdersByStatus(status Status) []Order {
	s.check("GetOrdersByStatus")
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Order, 0)
	for _, o := range s.orders {
		if o.Status == status {
			out = append(out, o.Clone())
		}
	}
	return out
}

// Orders returns every order, newest first
func (s *Store) Orders() []Order {
	s.check("Orders")
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Order, len(s.orders))
	for i, o := range s.orders {
		out[i] = o.Clone()
	}
	return out
}

// Count returns the number of orders, including cancelled ones
func (s *Store) Count() int {
	s.check("Count")
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}
