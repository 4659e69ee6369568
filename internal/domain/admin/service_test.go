package admin

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/shopfront/internal/domain/cart"
	"github.com/your-org/shopfront/internal/domain/catalog"
	"github.com/your-org/shopfront/internal/domain/order"
	"github.com/your-org/shopfront/internal/pkg/lifecycle"
)

var customer = order.CustomerInfo{Name: "A", Email: "a@b.com", Address: "1 Main St"}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type fixture struct {
	catalog *catalog.Catalog
	orders  *order.Store
	admin   *Store
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	logger, _ := test.NewNullLogger()
	cat := catalog.NewSeededCatalog()
	orders := order.NewStore(logger)
	a, err := NewStore(cat, orders, logger)
	require.NoError(t, err)
	return fixture{catalog: cat, orders: orders, admin: a}
}

func (f fixture) line(t *testing.T, productID string, qty int) cart.CartItem {
	t.Helper()
	p, ok := f.catalog.ProductByID(productID)
	require.True(t, ok)
	return cart.CartItem{Product: p, Quantity: qty}
}

func TestNewStoreRequiresDependencies(t *testing.T) {
	_, err := NewStore(nil, order.NewStore(nil), nil)
	assert.ErrorIs(t, err, ErrMissingDependency)

	_, err = NewStore(catalog.NewSeededCatalog(), nil, nil)
	assert.ErrorIs(t, err, ErrMissingDependency)
}

func TestProductManagement(t *testing.T) {
	f := newFixture(t)

	created, err := f.admin.AddProduct(catalog.Product{
		Name:       "Desk Organizer",
		Price:      dec("15.50"),
		Category:   "Home & Living",
		CategoryID: "3",
		Stock:      4,
		Badge:      catalog.BadgeNew,
		SKU:        "HOME-004",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, created, f.admin.Products()[len(f.admin.Products())-1])
	assert.Equal(t, 1, f.admin.GetLowStockCount())

	stock := 40
	updated, found, err := f.admin.UpdateProduct(created.ID, catalog.ProductUpdate{Stock: &stock})
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 40, updated.Stock)
	assert.Equal(t, 0, f.admin.GetLowStockCount())

	_, found, err = f.admin.UpdateProduct("missing", catalog.ProductUpdate{Stock: &stock})
	assert.NoError(t, err)
	assert.False(t, found)

	assert.True(t, f.admin.DeleteProduct(created.ID))
	assert.False(t, f.admin.DeleteProduct(created.ID))

	// the storefront reads the same catalog
	_, ok := f.catalog.ProductByID(created.ID)
	assert.False(t, ok)

	_, err = f.admin.AddProduct(catalog.Product{Name: "", Price: dec("1")})
	assert.ErrorIs(t, err, catalog.ErrInvalidProduct)
}

func TestCategoryManagement(t *testing.T) {
	f := newFixture(t)

	cat, err := f.admin.AddCategory(catalog.Category{Name: "Garden", Slug: "garden", Subcategories: []string{"Tools"}})
	require.NoError(t, err)
	assert.Len(t, f.admin.Categories(), 9)

	assert.True(t, f.admin.DeleteCategory(cat.ID))
	assert.False(t, f.admin.DeleteCategory("missing"))
	assert.Len(t, f.admin.Categories(), 8)
}

func TestRevenueAndOrderCounts(t *testing.T) {
	f := newFixture(t)
	assert.True(t, f.admin.GetTotalRevenue().IsZero())
	assert.Equal(t, 0, f.admin.GetTotalOrders())

	a := f.orders.AddOrder([]cart.CartItem{f.line(t, "1", 1)}, dec("25"), dec("5"), dec("4.99"), customer)
	f.orders.AddOrder([]cart.CartItem{f.line(t, "2", 1)}, dec("100"), dec("0"), dec("0"), customer)
	assert.True(t, f.admin.GetTotalRevenue().Equal(dec("124.99")))

	f.orders.UpdateOrderStatus(a.ID, order.StatusCancelled)
	assert.True(t, f.admin.GetTotalRevenue().Equal(dec("100")))
	assert.Equal(t, 2, f.admin.GetTotalOrders())
}

func TestTopSellingProducts(t *testing.T) {
	f := newFixture(t)
	f.orders.AddOrder([]cart.CartItem{f.line(t, "1", 2), f.line(t, "2", 1)}, dec("1"), dec("0"), dec("0"), customer)
	f.orders.AddOrder([]cart.CartItem{f.line(t, "3", 5), f.line(t, "1", 1)}, dec("1"), dec("0"), dec("0"), customer)
	cancelled := f.orders.AddOrder([]cart.CartItem{f.line(t, "4", 4)}, dec("1"), dec("0"), dec("0"), customer)
	f.orders.UpdateOrderStatus(cancelled.ID, order.StatusCancelled)
	f.orders.AddOrder([]cart.CartItem{f.line(t, "5", 1), f.line(t, "6", 1), f.line(t, "7", 2)}, dec("1"), dec("0"), dec("0"), customer)

	top := f.admin.GetTopSellingProducts()
	require.Len(t, top, TopSellersLimit)

	got := make([][2]interface{}, len(top))
	for i, ps := range top {
		got[i] = [2]interface{}{ps.Product.ID, ps.TotalSold}
	}
	// cancelled orders still count toward sales
	assert.Equal(t, [][2]interface{}{{"3", 5}, {"4", 4}, {"1", 3}, {"7", 2}, {"2", 1}}, got)

	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].TotalSold, top[i].TotalSold)
	}

	t.Run("DeletedProductsAreDropped", func(t *testing.T) {
		require.True(t, f.admin.DeleteProduct("3"))
		top := f.admin.GetTopSellingProducts()
		for _, ps := range top {
			assert.NotEqual(t, "3", ps.Product.ID)
		}
		assert.Equal(t, "4", top[0].Product.ID)
	})

	t.Run("JoinUsesCurrentCatalog", func(t *testing.T) {
		name := "Renamed Lamp"
		_, _, err := f.admin.UpdateProduct("7", catalog.ProductUpdate{Name: &name})
		require.NoError(t, err)
		for _, ps := range f.admin.GetTopSellingProducts() {
			if ps.Product.ID == "7" {
				assert.Equal(t, "Renamed Lamp", ps.Product.Name)
			}
		}
	})
}

func TestDashboard(t *testing.T) {
	f := newFixture(t)
	var last order.Order
	for i := 0; i < 7; i++ {
		last = f.orders.AddOrder([]cart.CartItem{f.line(t, "10", 1)}, dec("10"), dec("0"), dec("0"), customer)
	}
	f.orders.UpdateOrderStatus(last.ID, order.StatusShipped)

	stats := f.admin.Dashboard()
	assert.Equal(t, 7, stats.TotalOrders)
	assert.True(t, stats.TotalRevenue.Equal(dec("70")))
	assert.Equal(t, len(catalog.SeedProducts()), stats.TotalProducts)
	assert.Equal(t, 8, stats.TotalCategories)
	assert.Equal(t, 6, stats.OrdersByStatus[order.StatusPending])
	assert.Equal(t, 1, stats.OrdersByStatus[order.StatusShipped])
	assert.Equal(t, 0, stats.OrdersByStatus[order.StatusCancelled])
	require.Len(t, stats.RecentOrders, RecentOrdersLimit)
	assert.Equal(t, last.ID, stats.RecentOrders[0].ID)
	require.Len(t, stats.TopSelling, 1)
	assert.Equal(t, 7, stats.TopSelling[0].TotalSold)
}

func TestLifecycle(t *testing.T) {
	f := newFixture(t)
	f.admin.Close()

	defer func() {
		err, ok := recover().(*lifecycle.AccessError)
		require.True(t, ok)
		assert.True(t, errors.Is(err, lifecycle.ErrClosed))
		// the shared collaborators stay usable
		assert.NotPanics(t, func() { f.orders.Count() })
	}()
	f.admin.GetTotalRevenue()
}
