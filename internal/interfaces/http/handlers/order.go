// internal/interfaces/http/handlers/order.go
package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/shopfront/internal/domain/order"
)

// InvoiceGenerator renders order invoices
type InvoiceGenerator interface {
	GenerateHTML(o *order.Order) (string, error)
	GenerateInvoice(o *order.Order) (*bytes.Buffer, error)
}

// OrderHandler handles order history endpoints
type OrderHandler struct {
	orders   *order.Store
	invoices InvoiceGenerator
	logger   logrus.FieldLogger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orders *order.Store, invoices InvoiceGenerator, logger logrus.FieldLogger) *OrderHandler {
	return &OrderHandler{orders: orders, invoices: invoices, logger: logger}
}

// GetOrders handles GET /orders
func (h *OrderHandler) GetOrders(c *gin.Context) {
	orders := h.orders.Orders()
	respondOK(c, "Orders retrieved successfully", gin.H{
		"orders": orders,
		"total":  len(orders),
	})
}

// GetOrder handles GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	o, ok := h.orders.GetOrderByID(c.Param("id"))
	if !ok {
		respondError(c, http.StatusNotFound, "Order not found")
		return
	}

	respondOK(c, "Order retrieved successfully", gin.H{
		"order":                 o,
		"available_transitions": o.Status.AvailableTransitions(),
		"formatted_total":       formatCurrency(o.Total),
	})
}

// GetInvoice handles GET /orders/:id/invoice. format=html returns the page
// that the PDF is rendered from.
func (h *OrderHandler) GetInvoice(c *gin.Context) {
	o, ok := h.orders.GetOrderByID(c.Param("id"))
	if !ok {
		respondError(c, http.StatusNotFound, "Order not found")
		return
	}

	if c.Query("format") == "html" {
		page, err := h.invoices.GenerateHTML(&o)
		if err != nil {
			h.logger.WithError(err).WithField("order_id", o.ID).Error("Invoice rendering failed")
			respondError(c, http.StatusInternalServerError, "Failed to generate invoice")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
		return
	}

	pdfBuffer, err := h.invoices.GenerateInvoice(&o)
	if err != nil {
		h.logger.WithError(err).WithField("order_id", o.ID).Error("Invoice generation failed")
		respondError(c, http.StatusInternalServerError, "Failed to generate invoice")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoice-%s.pdf", o.ID))
	c.Header("Content-Length", strconv.Itoa(pdfBuffer.Len()))
	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())
}
