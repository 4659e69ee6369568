// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/shopfront/internal/domain/checkout"
	"github.com/your-org/shopfront/internal/domain/order"
)

// CheckoutHandler handles checkout endpoints
type CheckoutHandler struct {
	checkout *checkout.Service
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(s *checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{checkout: s}
}

// GetQuote handles POST /checkout/quote
func (h *CheckoutHandler) GetQuote(c *gin.Context) {
	quote := h.checkout.Quote()
	respondOK(c, "Checkout quote calculated successfully", gin.H{
		"quote": quote,
		"formatted": gin.H{
			"subtotal": formatCurrency(quote.Subtotal),
			"discount": formatCurrency(quote.Discount),
			"shipping": formatCurrency(quote.Shipping),
			"total":    formatCurrency(quote.Total),
		},
	})
}

// PlaceOrder handles POST /checkout
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	var req order.CustomerInfo
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	placed, err := h.checkout.PlaceOrder(req)
	switch {
	case errors.Is(err, checkout.ErrEmptyCart):
		respondError(c, http.StatusUnprocessableEntity, "Cart is empty")
		return
	case errors.Is(err, checkout.ErrInvalidCustomer):
		respondError(c, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		respondError(c, http.StatusInternalServerError, "Failed to place order")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"data":    placed,
	})
}
