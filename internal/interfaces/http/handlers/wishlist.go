// internal/interfaces/http/handlers/wishlist.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/shopfront/internal/domain/catalog"
	"github.com/your-org/shopfront/internal/domain/wishlist"
)

// WishlistHandler handles wishlist endpoints
type WishlistHandler struct {
	wishlist *wishlist.Store
	catalog  *catalog.Catalog
}

// NewWishlistHandler creates a new wishlist handler
func NewWishlistHandler(w *wishlist.Store, cat *catalog.Catalog) *WishlistHandler {
	return &WishlistHandler{wishlist: w, catalog: cat}
}

// GetWishlist handles GET /wishlist
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	summary := h.wishlist.Summary()
	respondOK(c, "Wishlist retrieved successfully", gin.H{
		"items":   h.wishlist.Entries(),
		"summary": summary,
		"formatted": gin.H{
			"total_value":   formatCurrency(summary.TotalValue),
			"average_price": formatCurrency(summary.AveragePrice),
		},
	})
}

// ToggleWishlist handles POST /wishlist/items/:productId/toggle
func (h *WishlistHandler) ToggleWishlist(c *gin.Context) {
	product, ok := h.catalog.ProductByID(c.Param("productId"))
	if !ok {
		respondError(c, http.StatusNotFound, "Product not found")
		return
	}

	inWishlist := h.wishlist.ToggleWishlist(product)
	message := "Product removed from wishlist"
	if inWishlist {
		message = "Product added to wishlist"
	}
	respondOK(c, message, gin.H{
		"product_id":  product.ID,
		"in_wishlist": inWishlist,
		"count":       h.wishlist.Count(),
	})
}

// AddToWishlist handles PUT /wishlist/items/:productId
func (h *WishlistHandler) AddToWishlist(c *gin.Context) {
	product, ok := h.catalog.ProductByID(c.Param("productId"))
	if !ok {
		respondError(c, http.StatusNotFound, "Product not found")
		return
	}

	h.wishlist.AddToWishlist(product)
	respondOK(c, "Product added to wishlist", gin.H{
		"product_id":  product.ID,
		"in_wishlist": true,
		"count":       h.wishlist.Count(),
	})
}

// RemoveFromWishlist handles DELETE /wishlist/items/:productId
func (h *WishlistHandler) RemoveFromWishlist(c *gin.Context) {
	productID := c.Param("productId")
	h.wishlist.RemoveFromWishlist(productID)
	respondOK(c, "Product removed from wishlist", gin.H{
		"product_id":  productID,
		"in_wishlist": false,
		"count":       h.wishlist.Count(),
	})
}

// ClearWishlist handles DELETE /wishlist
func (h *WishlistHandler) ClearWishlist(c *gin.Context) {
	h.wishlist.ClearWishlist()
	respondOK(c, "Wishlist cleared successfully", gin.H{"count": 0})
}
