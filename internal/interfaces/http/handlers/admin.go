// internal/interfaces/http/handlers/admin.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/shopfront/internal/domain/admin"
	"github.com/your-org/shopfront/internal/domain/catalog"
	"github.com/your-org/shopfront/internal/domain/order"
)

// UpdateOrderStatusRequest represents the status change payload
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// AdminHandler handles dashboard endpoints
type AdminHandler struct {
	admin  *admin.Store
	orders *order.Store
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(a *admin.Store, orders *order.Store) *AdminHandler {
	return &AdminHandler{admin: a, orders: orders}
}

// GetProducts handles GET /admin/products
func (h *AdminHandler) GetProducts(c *gin.Context) {
	products := h.admin.Products()
	respondOK(c, "Products retrieved successfully", gin.H{
		"products": products,
		"total":    len(products),
	})
}

// CreateProduct handles POST /admin/products
func (h *AdminHandler) CreateProduct(c *gin.Context) {
	var req catalog.Product
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	created, err := h.admin.AddProduct(req)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product created successfully",
		"data":    created,
	})
}

// UpdateProduct handles PUT /admin/products/:id
func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	var req catalog.ProductUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	updated, found, err := h.admin.UpdateProduct(c.Param("id"), req)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	if !found {
		respondError(c, http.StatusNotFound, "Product not found")
		return
	}

	respondOK(c, "Product updated successfully", updated)
}

// DeleteProduct handles DELETE /admin/products/:id
func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	if !h.admin.DeleteProduct(c.Param("id")) {
		respondError(c, http.StatusNotFound, "Product not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

// GetCategories handles GET /admin/categories
func (h *AdminHandler) GetCategories(c *gin.Context) {
	respondOK(c, "Categories retrieved successfully", h.admin.Categories())
}

// CreateCategory handles POST /admin/categories
func (h *AdminHandler) CreateCategory(c *gin.Context) {
	var req catalog.Category
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	created, err := h.admin.AddCategory(req)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Category created successfully",
		"data":    created,
	})
}

// DeleteCategory handles DELETE /admin/categories/:id
func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	if !h.admin.DeleteCategory(c.Param("id")) {
		respondError(c, http.StatusNotFound, "Category not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}

// GetOrders handles GET /admin/orders?status=
func (h *AdminHandler) GetOrders(c *gin.Context) {
	var orders []order.Order
	if raw := c.Query("status"); raw != "" {
		status, err := order.ParseStatus(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		orders = h.orders.GetOrdersByStatus(status)
	} else {
		orders = h.orders.Orders()
	}

	respondOK(c, "Orders retrieved successfully", gin.H{
		"orders": orders,
		"total":  len(orders),
	})
}

// UpdateOrderStatus handles PUT /admin/orders/:id/status. Any status may be
// set, including leaving a terminal one.
func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	status, err := order.ParseStatus(req.Status)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	id := c.Param("id")
	if !h.orders.UpdateOrderStatus(id, status) {
		respondError(c, http.StatusNotFound, "Order not found")
		return
	}

	updated, _ := h.orders.GetOrderByID(id)
	respondOK(c, "Order status updated successfully", updated)
}

// GetDashboard handles GET /admin/analytics/dashboard
func (h *AdminHandler) GetDashboard(c *gin.Context) {
	stats := h.admin.Dashboard()
	respondOK(c, "Dashboard data retrieved successfully", gin.H{
		"stats":         stats,
		"total_revenue": formatCurrency(stats.TotalRevenue),
	})
}

func respondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalog.ErrInvalidProduct), errors.Is(err, catalog.ErrInvalidCategory):
		respondError(c, http.StatusBadRequest, err.Error())
	default:
		respondError(c, http.StatusInternalServerError, "Request failed")
	}
}
