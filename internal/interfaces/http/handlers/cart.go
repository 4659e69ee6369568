// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/shopfront/internal/domain/cart"
	"github.com/your-org/shopfront/internal/domain/catalog"
)

// AddToCartRequest represents the add to cart payload
type AddToCartRequest struct {
	ProductID     string  `json:"product_id" binding:"required"`
	SelectedSize  *string `json:"selected_size"`
	SelectedColor *string `json:"selected_color"`
	Quantity      int     `json:"quantity" binding:"omitempty,min=1,max=99"`
}

// UpdateCartItemRequest represents the quantity update payload
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// PromoCodeRequest represents the promo code payload
type PromoCodeRequest struct {
	Code string `json:"code"`
}

// CartResponse is the cart as returned to clients
type CartResponse struct {
	Items     []cart.CartItem   `json:"items"`
	Totals    cart.Totals       `json:"totals"`
	Formatted map[string]string `json:"formatted"`
}

// CartHandler handles cart endpoints
type CartHandler struct {
	cart    *cart.Store
	catalog *catalog.Catalog
}

// NewCartHandler creates a new cart handler
func NewCartHandler(c *cart.Store, cat *catalog.Catalog) *CartHandler {
	return &CartHandler{cart: c, catalog: cat}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	respondOK(c, "Cart retrieved successfully", h.cartResponse())
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	product, ok := h.catalog.ProductByID(req.ProductID)
	if !ok {
		respondError(c, http.StatusNotFound, "Product not found")
		return
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	size, color := optionalVariant(req.SelectedSize), optionalVariant(req.SelectedColor)
	for i := 0; i < quantity; i++ {
		h.cart.AddToCart(product, size, color)
	}

	respondOK(c, "Item added to cart successfully", h.cartResponse())
}

// UpdateCartItem handles PUT /cart/items/:productId. With a size or color
// query parameter only that line changes, otherwise every line of the product.
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	productID := c.Param("productId")
	if key, ok := lineKeyFromQuery(c, productID); ok {
		if !h.cart.UpdateLineQuantity(key, *req.Quantity) {
			respondError(c, http.StatusNotFound, "Cart line not found")
			return
		}
	} else {
		h.cart.UpdateQuantity(productID, *req.Quantity)
	}

	respondOK(c, "Cart item updated successfully", h.cartResponse())
}

// RemoveFromCart handles DELETE /cart/items/:productId
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	productID := c.Param("productId")
	if key, ok := lineKeyFromQuery(c, productID); ok {
		if !h.cart.RemoveLine(key) {
			respondError(c, http.StatusNotFound, "Cart line not found")
			return
		}
	} else {
		h.cart.RemoveFromCart(productID)
	}

	respondOK(c, "Item removed from cart successfully", h.cartResponse())
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	h.cart.ClearCart()
	respondOK(c, "Cart cleared successfully", h.cartResponse())
}

// SetPromoCode handles PUT /cart/promo. Unknown codes are stored and simply
// give no discount.
func (h *CartHandler) SetPromoCode(c *gin.Context) {
	var req PromoCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	h.cart.SetPromoCode(req.Code)
	resp := h.cartResponse()

	message := "Promo code applied successfully"
	if req.Code != "" && !resp.Totals.PromoValid {
		message = "Promo code not recognized"
	}
	respondOK(c, message, resp)
}

func (h *CartHandler) cartResponse() CartResponse {
	snap := h.cart.Snapshot()
	return CartResponse{
		Items:  snap.Items,
		Totals: snap.Totals,
		Formatted: map[string]string{
			"subtotal": formatCurrency(snap.Totals.TotalPrice),
			"discount": formatCurrency(snap.Totals.Discount),
			"total":    formatCurrency(snap.Totals.Total()),
		},
	}
}

func optionalVariant(label *string) cart.Variant {
	if label == nil || *label == "" {
		return cart.NoVariant()
	}
	return cart.Choose(*label)
}

// lineKeyFromQuery builds a line key when the request names a variant. An
// empty parameter selects the line without that choice.
func lineKeyFromQuery(c *gin.Context, productID string) (cart.LineKey, bool) {
	size, hasSize := c.GetQuery("size")
	color, hasColor := c.GetQuery("color")
	if !hasSize && !hasColor {
		return cart.LineKey{}, false
	}
	return cart.LineKey{
		ProductID: productID,
		Size:      optionalVariant(&size),
		Color:     optionalVariant(&color),
	}, true
}
