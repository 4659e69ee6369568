package pdf

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/shopfront/internal/config"
	"github.com/your-org/shopfront/internal/domain/cart"
	"github.com/your-org/shopfront/internal/domain/catalog"
	"github.com/your-org/shopfront/internal/domain/order"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testService() *Service {
	cfg := &config.Config{App: config.AppConfig{
		CompanyName:  "Shopfront Inc.",
		CompanyEmail: "support@shop.example",
		CompanyPhone: "555-0100",
	}}
	s := NewService(cfg)
	s.now = func() time.Time { return time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC) }
	return s
}

func testOrder() *order.Order {
	return &order.Order{
		ID: "ORD-ABC",
		Items: []cart.CartItem{
			{
				Product:       catalog.Product{ID: "1", Name: "Trail Jacket", SKU: "JKT-1", Price: dec("10")},
				Quantity:      2,
				SelectedSize:  cart.Choose("M"),
				SelectedColor: cart.Choose("Black"),
			},
			{
				Product:  catalog.Product{ID: "2", Name: "Mug <Large>", SKU: "MUG-2", Price: dec("5")},
				Quantity: 1,
			},
		},
		Subtotal:        dec("25"),
		Discount:        dec("5"),
		Shipping:        dec("4.99"),
		Total:           dec("24.99"),
		Status:          order.StatusPending,
		CreatedAt:       time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC),
		CustomerName:    "Ada",
		CustomerEmail:   "ada@example.com",
		ShippingAddress: "1 Main St",
	}
}

func TestGenerateHTML(t *testing.T) {
	html, err := testService().GenerateHTML(testOrder())
	require.NoError(t, err)

	for _, want := range []string{
		"INV-ORD-ABC",
		"October 2, 2026",
		"October 1, 2026",
		"Shopfront Inc.",
		"Ada",
		"1 Main St",
		"Trail Jacket",
		"Size M, Black",
		"$20.00",
		"$25.00",
		"-$5.00",
		"$4.99",
		"$24.99",
		"PENDING",
	} {
		assert.Contains(t, html, want)
	}

	// product names are escaped
	assert.Contains(t, html, "Mug &lt;Large&gt;")
}

func TestGenerateHTMLFreeShippingNoDiscount(t *testing.T) {
	o := testOrder()
	o.Discount = decimal.Zero
	o.Shipping = decimal.Zero
	o.Total = dec("25")

	html, err := testService().GenerateHTML(o)
	require.NoError(t, err)
	assert.Contains(t, html, "Free")
	assert.NotContains(t, html, "Discount:")
}

func TestVariantLabel(t *testing.T) {
	assert.Equal(t, "Size S", variantLabel(cart.CartItem{SelectedSize: cart.Choose("S")}))
	assert.Equal(t, "Red", variantLabel(cart.CartItem{SelectedColor: cart.Choose("Red")}))
	assert.Empty(t, variantLabel(cart.CartItem{}))
}
