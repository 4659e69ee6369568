// internal/domain/admin/service.go
package admin

import (
	"errors"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/your-org/shopfront/internal/domain/catalog"
	"github.com/your-org/shopfront/internal/domain/order"
	"github.com/your-org/shopfront/internal/pkg/lifecycle"
)

const storeName = "admin"

// ErrMissingDependency is returned when the store is built without its collaborators
var ErrMissingDependency = errors.New("admin store requires a catalog and an order store")

// Store manages the catalog on behalf of the dashboard and computes
// analytics by joining orders with the current catalog
type Store struct {
	guard   lifecycle.Guard
	catalog *catalog.Catalog
	orders  *order.Store
	logger  logrus.FieldLogger
}

// NewStore creates the admin store over a shared catalog and order log
func NewStore(cat *catalog.Catalog, orders *order.Store, logger logrus.FieldLogger) (*Store, error) {
	if cat == nil || orders == nil {
		return nil, ErrMissingDependency
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	s := &Store{
		catalog: cat,
		orders:  orders,
		logger:  logger.WithField("store", storeName),
	}
	s.guard.Open()
	return s, nil
}

// Close discards the admin store; later calls panic. The shared catalog and
// order log are owned by the caller and stay open.
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

// Products returns the managed products
func (s *Store) Products() []catalog.Product {
	s.check("Products")
	return s.catalog.Products()
}

// Categories returns the managed categories
func (s *Store) Categories() []catalog.Category {
	s.check("Categories")
	return s.catalog.Categories()
}

// AddProduct creates a product with a new id and returns it
func (s *Store) AddProduct(data catalog.Product) (catalog.Product, error) {
	s.check("AddProduct")
	created, err := s.catalog.Add(data)
	if err != nil {
		return catalog.Product{}, err
	}
	s.logger.WithFields(logrus.Fields{
		"product_id": created.ID,
		"sku":        created.SKU,
	}).Info("Product created")
	return created, nil
}

// UpdateProduct merges the update onto the product. Unknown ids are ignored;
// the boolean reports whether the product existed.
func (s *Store) UpdateProduct(id string, update catalog.ProductUpdate) (catalog.Product, bool, error) {
	s.check("UpdateProduct")
	updated, found, err := s.catalog.Update(id, update)
	if err != nil || !found {
		return catalog.Product{}, found, err
	}
	s.logger.WithField("product_id", id).Info("Product updated")
	return updated, true, nil
}

// DeleteProduct removes the product. Orders that reference it keep their copy.
func (s *Store) DeleteProduct(id string) bool {
	s.check("DeleteProduct")
	deleted := s.catalog.Delete(id)
	if deleted {
		s.logger.WithField("product_id", id).Info("Product deleted")
	}
	return deleted
}

// AddCategory creates a category with a new id and returns it
func (s *Store) AddCategory(data catalog.Category) (catalog.Category, error) {
	s.check("AddCategory")
	created, err := s.catalog.AddCategory(data)
	if err != nil {
		return catalog.Category{}, err
	}
	s.logger.WithField("category_id", created.ID).Info("Category created")
	return created, nil
}

// DeleteCategory removes the category. Products keep their category fields.
func (s *Store) DeleteCategory(id string) bool {
	s.check("DeleteCategory")
	deleted := s.catalog.DeleteCategory(id)
	if deleted {
		s.logger.WithField("category_id", id).Info("Category deleted")
	}
	return deleted
}

// GetTotalRevenue sums the totals of every order that is not cancelled
func (s *Store) GetTotalRevenue() decimal.Decimal {
	s.check("GetTotalRevenue")
	return totalRevenue(s.orders.Orders())
}

// GetTotalOrders counts every order, cancelled included
func (s *Store) GetTotalOrders() int {
	s.check("GetTotalOrders")
	return s.orders.Count()
}

// GetLowStockCount counts products with stock below the threshold
func (s *Store) GetLowStockCount() int {
	s.check("GetLowStockCount")
	return s.catalog.LowStockCount()
}

// GetTopSellingProducts ranks products by quantity sold across all orders,
// cancelled included. Products no longer in the catalog are dropped.
func (s *Store) GetTopSellingProducts() []ProductSales {
	s.check("GetTopSellingProducts")
	return topSelling(s.orders.Orders(), s.catalog)
}

// Dashboard gathers the figures shown on the admin home screen
func (s *Store) Dashboard() DashboardStats {
	s.check("Dashboard")

	orders := s.orders.Orders()
	stats := DashboardStats{
		TotalRevenue:    totalRevenue(orders),
		TotalOrders:     len(orders),
		TotalProducts:   len(s.catalog.Products()),
		TotalCategories: len(s.catalog.Categories()),
		LowStockCount:   s.catalog.LowStockCount(),
		OrdersByStatus:  make(map[order.Status]int, len(order.AllStatuses)),
		TopSelling:      topSelling(orders, s.catalog),
	}
	for _, status := range order.AllStatuses {
		stats.OrdersByStatus[status] = 0
	}
	for _, o := range orders {
		stats.OrdersByStatus[o.Status]++
	}

	recent := len(orders)
	if recent > RecentOrdersLimit {
		recent = RecentOrdersLimit
	}
	stats.RecentOrders = orders[:recent]
	return stats
}

func totalRevenue(orders []order.Order) decimal.Decimal {
	revenue := decimal.Zero
	for _, o := range orders {
		if o.Status == order.StatusCancelled {
			continue
		}
		revenue = revenue.Add(o.Total)
	}
	return revenue
}

func topSelling(orders []order.Order, cat *catalog.Catalog) []ProductSales {
	sold := make(map[string]int)
	for _, o := range orders {
		for _, item := range o.Items {
			sold[item.Product.ID] += item.Quantity
		}
	}

	ranked := make([]ProductSales, 0, len(sold))
	for productID, total := range sold {
		p, ok := cat.ProductByID(productID)
		if !ok {
			continue
		}
		ranked = append(ranked, ProductSales{Product: p, TotalSold: total})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].TotalSold != ranked[j].TotalSold {
			return ranked[i].TotalSold > ranked[j].TotalSold
		}
		return ranked[i].Product.ID < ranked[j].Product.ID
	})
	if len(ranked) > TopSellersLimit {
		ranked = ranked[:TopSellersLimit]
	}
	return ranked
}
