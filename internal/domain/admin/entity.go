// internal/domain/admin/entity.go
package admin

import (
	"github.com/shopspring/decimal"
	"github.com/your-org/shopfront/internal/domain/catalog"
	"github.com/your-org/shopfront/internal/domain/order"
)

// TopSellersLimit caps the top selling products list
const TopSellersLimit = 5

// RecentOrdersLimit caps the recent orders shown on the dashboard
const RecentOrdersLimit = 5

// ProductSales pairs a product with the quantity sold across all orders
type ProductSales struct {
	Product   catalog.Product `json:"product"`
	TotalSold int             `json:"total_sold"`
}

// DashboardStats represents the admin dashboard figures
type DashboardStats struct {
	TotalRevenue    decimal.Decimal      `json:"total_revenue"`
	TotalOrders     int                  `json:"total_orders"`
	TotalProducts   int                  `json:"total_products"`
	TotalCategories int                  `json:"total_categories"`
	LowStockCount   int                  `json:"low_stock_count"`
	OrdersByStatus  map[order.Status]int `json:"orders_by_status"`
	TopSelling      []ProductSales       `json:"top_selling"`
	RecentOrders    []order.Order        `json:"recent_orders"`
}
