// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/shopfront/internal/domain/catalog"
)

// CatalogHandler serves the storefront product and category reads
type CatalogHandler struct {
	catalog *catalog.Catalog
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(c *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: c}
}

// GetProducts handles GET /products?category=&q=
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	var products []catalog.Product
	switch {
	case c.Query("q") != "":
		products = h.catalog.Search(c.Query("q"))
		if categoryID := c.Query("category"); categoryID != "" {
			products = catalog.FilterByCategory(products, categoryID)
		}
	case c.Query("category") != "":
		products = h.catalog.ProductsByCategory(c.Query("category"))
	default:
		products = h.catalog.Products()
	}

	respondOK(c, "Products retrieved successfully", gin.H{
		"products": products,
		"total":    len(products),
	})
}

// GetProduct handles GET /products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, ok := h.catalog.ProductByID(c.Param("id"))
	if !ok {
		respondError(c, http.StatusNotFound, "Product not found")
		return
	}
	respondOK(c, "Product retrieved successfully", product)
}

// GetFeatured handles GET /products/featured
func (h *CatalogHandler) GetFeatured(c *gin.Context) {
	respondOK(c, "Featured products retrieved successfully", h.catalog.Featured())
}

// GetTrending handles GET /products/trending
func (h *CatalogHandler) GetTrending(c *gin.Context) {
	respondOK(c, "Trending products retrieved successfully", h.catalog.Trending())
}

// GetOnSale handles GET /products/sale
func (h *CatalogHandler) GetOnSale(c *gin.Context) {
	respondOK(c, "Sale products retrieved successfully", h.catalog.OnSale())
}

// GetNewArrivals handles GET /products/new
func (h *CatalogHandler) GetNewArrivals(c *gin.Context) {
	respondOK(c, "New arrivals retrieved successfully", h.catalog.NewArrivals())
}

// GetLowStock handles GET /products/low-stock
func (h *CatalogHandler) GetLowStock(c *gin.Context) {
	respondOK(c, "Low stock products retrieved successfully", h.catalog.LowStock())
}

// GetCategories handles GET /categories
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	respondOK(c, "Categories retrieved successfully", h.catalog.Categories())
}

// GetCategory handles GET /categories/:id. The id may also be a slug.
func (h *CatalogHandler) GetCategory(c *gin.Context) {
	id := c.Param("id")
	category, ok := h.catalog.CategoryByID(id)
	if !ok {
		category, ok = h.catalog.CategoryBySlug(id)
	}
	if !ok {
		respondError(c, http.StatusNotFound, "Category not found")
		return
	}

	respondOK(c, "Category retrieved successfully", gin.H{
		"category": category,
		"products": h.catalog.ProductsByCategory(category.ID),
	})
}
