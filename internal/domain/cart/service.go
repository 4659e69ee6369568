// internal/domain/cart/service.go
package cart

import (
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/your-org/shopfront/internal/domain/catalog"
	"github.com/your-org/shopfront/internal/pkg/lifecycle"
)

const storeName = "cart"

// Store holds the shopping cart lines and promo code
type Store struct {
	guard     lifecycle.Guard
	mu        sync.RWMutex
	items     []CartItem
	promoCode string
	logger    logrus.FieldLogger
}

// NewStore creates an empty cart
func NewStore(logger logrus.FieldLogger) *Store {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	s := &Store{
		items:  []CartItem{},
		logger: logger.WithField("store", storeName),
	}
	s.guard.Open()
	return s
}

// Close discards the cart; later calls panic
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

// AddToCart increments the line matching (product, size, color) or appends
// a new line with quantity 1. Stock is not checked.
func (s *Store) AddToCart(product catalog.Product, size, color Variant) {
	s.check("AddToCart")
	s.mu.Lock()
	defer s.mu.Unlock()

	key := LineKey{ProductID: product.ID, Size: size, Color: color}
	for i := range s.items {
		if s.items[i].Key().Equal(key) {
			s.items[i].Quantity++
			s.logger.WithFields(logrus.Fields{
				"product_id": product.ID,
				"quantity":   s.items[i].Quantity,
			}).Debug("Cart line incremented")
			return
		}
	}

	s.items = append(s.items, CartItem{
		Product:       product.Clone(),
		Quantity:      1,
		SelectedSize:  size,
		SelectedColor: color,
	})
	s.logger.WithFields(logrus.Fields{
		"product_id": product.ID,
		"size":       size.String(),
		"color":      color.String(),
	}).Debug("Cart line added")
}

// RemoveFromCart removes every line of the product, whatever its variant
func (s *Store) RemoveFromCart(productID string) {
	s.check("RemoveFromCart")
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeWhere(func(item *CartItem) bool { return item.Product.ID == productID })
}

// RemoveLine removes the single line with the given key and reports whether it existed
func (s *Store) RemoveLine(key LineKey) bool {
	s.check("RemoveLine")
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeWhere(func(item *CartItem) bool { return item.Key().Equal(key) }) > 0
}

// UpdateQuantity sets the quantity of every line of the product.
// A quantity <= 0 removes those lines.
func (s *Store) UpdateQuantity(productID string, quantity int) {
	s.check("UpdateQuantity")
	s.mu.Lock()
	defer s.mu.Unlock()

	match := func(item *CartItem) bool { return item.Product.ID == productID }
	if quantity <= 0 {
		s.removeWhere(match)
		return
	}
	s.setWhere(match, quantity)
}

// UpdateLineQuantity sets the quantity of the single line with the given key.
// A quantity <= 0 removes it. It reports whether the line existed.
func (s *Store) UpdateLineQuantity(key LineKey, quantity int) bool {
	s.check("UpdateLineQuantity")
	s.mu.Lock()
	defer s.mu.Unlock()

	match := func(item *CartItem) bool { return item.Key().Equal(key) }
	if quantity <= 0 {
		return s.removeWhere(match) > 0
	}
	return s.setWhere(match, quantity) > 0
}

// ClearCart removes all lines. The promo code is kept.
func (s *Store) ClearCart() {
	s.check("ClearCart")
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = []CartItem{}
	s.logger.Debug("Cart cleared")
}

// SetPromoCode stores the code upper-cased. Validity is only checked when
// totals are derived.
func (s *Store) SetPromoCode(code string) {
	s.check("SetPromoCode")
	s.mu.Lock()
	defer s.mu.Unlock()

	s.promoCode = strings.ToUpper(code)
	s.logger.WithFields(logrus.Fields{
		"promo_code": s.promoCode,
		"known":      IsKnownPromoCode(s.promoCode),
	}).Debug("Promo code set")
}

// Items returns a copy of the cart lines
func (s *Store) Items() []CartItem {
	s.check("Items")
	s.mu.RLock()
	defer s.mu.RUnlock()
	return CloneItems(s.items)
}

// Snapshot returns a value copy of the lines together with the totals
// derived from them, read under one lock
func (s *Store) Snapshot() Snapshot {
	s.check("Snapshot")
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Items:  CloneItems(s.items),
		Totals: CalculateTotals(s.items, s.promoCode),
	}
}

// PromoCode returns the stored promo code
func (s *Store) PromoCode() string {
	s.check("PromoCode")
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.promoCode
}

// Totals derives all cart figures from the current state
func (s *Store) Totals() Totals {
	s.check("Totals")
	s.mu.RLock()
	defer s.mu.RUnlock()
	return CalculateTotals(s.items, s.promoCode)
}

// TotalItems returns the sum of line quantities
func (s *Store) TotalItems() int {
	return s.Totals().TotalItems
}

// TotalPrice returns the sum of quantity × price over all lines
func (s *Store) TotalPrice() decimal.Decimal {
	return s.Totals().TotalPrice
}

// Discount returns the promo discount on the current total
func (s *Store) Discount() decimal.Decimal {
	return s.Totals().Discount
}

func (s *Store) removeWhere(match func(*CartItem) bool) int {
	kept := s.items[:0]
	removed := 0
	for i := range s.items {
		if match(&s.items[i]) {
			removed++
			continue
		}
		kept = append(kept, s.items[i])
	}
	s.items = kept
	if removed > 0 {
		s.logger.WithField("removed", removed).Debug("Cart lines removed")
	}
	return removed
}

func (s *Store) setWhere(match func(*CartItem) bool, quantity int) int {
	updated := 0
	for i := range s.items {
		if match(&s.items[i]) {
			s.items[i].Quantity = quantity
			updated++
		}
	}
	return updated
}
