// internal/domain/wishlist/entity.go
package wishlist

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/your-org/shopfront/internal/domain/catalog"
)

// WishlistItem represents a favorited product
type WishlistItem struct {
	Product catalog.Product `json:"product"`
	AddedAt time.Time       `json:"added_at"`
}

// WishlistSummary provides summary information
type WishlistSummary struct {
	TotalItems   int             `json:"total_items"`
	OnSaleItems  int             `json:"on_sale_items"`
	LowStock     int             `json:"low_stock_items"`
	TotalValue   decimal.Decimal `json:"total_value"`
	AveragePrice decimal.Decimal `json:"average_price"`
}
