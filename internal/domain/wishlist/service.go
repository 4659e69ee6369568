// internal/domain/wishlist/service.go
package wishlist

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/your-org/shopfront/internal/domain/catalog"
	"github.com/your-org/shopfront/internal/pkg/lifecycle"
)

const storeName = "wishlist"

// Store holds favorited products keyed by product id, in insertion order
type Store struct {
	guard  lifecycle.Guard
	mu     sync.RWMutex
	items  []WishlistItem
	index  map[string]int
	now    func() time.Time
	logger logrus.FieldLogger
}

// NewStore creates an empty wishlist
func NewStore(logger logrus.FieldLogger) *Store {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	s := &Store{
		items:  []WishlistItem{},
		index:  make(map[string]int),
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger.WithField("store", storeName),
	}
	s.guard.Open()
	return s
}

// Close discards the wishlist; later calls panic
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

// AddToWishlist adds the product unless it is already present
func (s *Store) AddToWishlist(product catalog.Product) {
	s.check("AddToWishlist")
	s.mu.Lock()
	defer s.mu.Unlock()
	s.add(product)
}

// RemoveFromWishlist removes the product if present
func (s *Store) RemoveFromWishlist(productID string) {
	s.check("RemoveFromWishlist")
	s.mu.Lock()
	defer s.mu.Unlock()
	s.remove(productID)
}

// ToggleWishlist adds the product when absent and removes it when present.
// It returns whether the product is in the wishlist afterwards.
func (s *Store) ToggleWishlist(product catalog.Product) bool {
	s.check("ToggleWishlist")
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[product.ID]; ok {
		s.remove(product.ID)
		return false
	}
	s.add(product)
	return true
}

// IsInWishlist reports membership
func (s *Store) IsInWishlist(productID string) bool {
	s.check("IsInWishlist")
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.index[productID]
	return ok
}

// ClearWishlist removes every product
func (s *Store) ClearWishlist() {
	s.check("ClearWishlist")
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = []WishlistItem{}
	s.index = make(map[string]int)
	s.logger.Debug("Wishlist cleared")
}

// Items returns the favorited products in the order they were added
func (s *Store) Items() []catalog.Product {
	s.check("Items")
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]catalog.Product, len(s.items))
	for i, item := range s.items {
		out[i] = item.Product.Clone()
	}
	return out
}

// Entries returns the wishlist items with the time each was added
func (s *Store) Entries() []WishlistItem {
	s.check("Entries")
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]WishlistItem, len(s.items))
	for i, item := range s.items {
		out[i] = WishlistItem{Product: item.Product.Clone(), AddedAt: item.AddedAt}
	}
	return out
}

// Count returns the number of favorited products
func (s *Store) Count() int {
	s.check("Count")
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Summary aggregates the wishlist contents
func (s *Store) Summary() WishlistSummary {
	s.check("Summary")
	s.mu.RLock()
	defer s.mu.RUnlock()

	summary := WishlistSummary{
		TotalItems:   len(s.items),
		TotalValue:   decimal.Zero,
		AveragePrice: decimal.Zero,
	}
	for i := range s.items {
		p := &s.items[i].Product
		summary.TotalValue = summary.TotalValue.Add(p.Price)
		if p.OnSale() {
			summary.OnSaleItems++
		}
		if p.IsLowStock() {
			summary.LowStock++
		}
	}
	if summary.TotalItems > 0 {
		summary.AveragePrice = summary.TotalValue.Div(decimal.NewFromInt(int64(summary.TotalItems))).Round(2)
	}
	return summary
}

func (s *Store) add(product catalog.Product) {
	if _, ok := s.index[product.ID]; ok {
		return
	}
	s.index[product.ID] = len(s.items)
	s.items = append(s.items, WishlistItem{Product: product.Clone(), AddedAt: s.now()})
	s.logger.WithField("product_id", product.ID).Debug("Wishlist item added")
}

func (s *Store) remove(productID string) {
	pos, ok := s.index[productID]
	if !ok {
		return
	}
	s.items = append(s.items[:pos], s.items[pos+1:]...)
	delete(s.index, productID)
	for i := pos; i < len(s.items); i++ {
		s.index[s.items[i].Product.ID] = i
	}
	s.logger.WithField("product_id", productID).Debug("Wishlist item removed")
}
