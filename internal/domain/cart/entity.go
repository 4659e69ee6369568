// internal/domain/cart/entity.go
package cart

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/your-org/shopfront/internal/domain/catalog"
)

// Variant is an optional size or color selection. The zero value means
// "nothing chosen", which never equals a chosen empty label.
type Variant struct {
	value string
	set   bool
}

// Choose returns a variant with the given label selected
func Choose(label string) Variant {
	return Variant{value: label, set: true}
}

// NoVariant returns the unselected variant
func NoVariant() Variant {
	return Variant{}
}

// Value returns the label and whether one was chosen
func (v Variant) Value() (string, bool) {
	return v.value, v.set
}

// IsSet reports whether a label was chosen
func (v Variant) IsSet() bool {
	return v.set
}

func (v Variant) String() string {
	if !v.set {
		return "-"
	}
	return v.value
}

// MarshalJSON encodes an unselected variant as null
func (v Variant) MarshalJSON() ([]byte, error) {
	if !v.set {
		return []byte("null"), nil
	}
	return json.Marshal(v.value)
}

// UnmarshalJSON decodes null as unselected
func (v *Variant) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = Variant{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*v = Choose(s)
	return nil
}

// LineKey identifies a cart line: the same product with different variant
// selections is a different line
type LineKey struct {
	ProductID string
	Size      Variant
	Color     Variant
}

// Equal reports whether two keys identify the same line
func (k LineKey) Equal(other LineKey) bool {
	return k == other
}

// CartItem is one line of the cart
type CartItem struct {
	Product       catalog.Product `json:"product"`
	Quantity      int             `json:"quantity"`
	SelectedSize  Variant         `json:"selected_size"`
	SelectedColor Variant         `json:"selected_color"`
}

// Key returns the line identity
func (i CartItem) Key() LineKey {
	return LineKey{ProductID: i.Product.ID, Size: i.SelectedSize, Color: i.SelectedColor}
}

// LineTotal returns quantity × unit price
func (i CartItem) LineTotal() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Clone returns a deep copy of the line
func (i CartItem) Clone() CartItem {
	i.Product = i.Product.Clone()
	return i
}

// CloneItems deep-copies a list of lines
func CloneItems(items []CartItem) []CartItem {
	out := make([]CartItem, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}
	return out
}

// Totals represents the derived cart figures
type Totals struct {
	TotalItems int             `json:"total_items"` // sum of quantities
	LineCount  int             `json:"line_count"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Discount   decimal.Decimal `json:"discount"`
	PromoCode  string          `json:"promo_code"`
	PromoValid bool            `json:"promo_valid"`
}

// Snapshot is a consistent copy of the cart used for order creation
type Snapshot struct {
	Items  []CartItem `json:"items"`
	Totals Totals     `json:"totals"`
}

// Total returns the price after discount
func (t Totals) Total() decimal.Decimal {
	return t.TotalPrice.Sub(t.Discount)
}

var promoCodes = map[string]decimal.Decimal{
	"SAVE10":  decimal.RequireFromString("0.10"),
	"SAVE20":  decimal.RequireFromString("0.20"),
	"FIRST50": decimal.RequireFromString("0.50"),
}

// PromoPercent returns the discount fraction for a code, or zero when the
// code is unknown. Matching is case-insensitive.
func PromoPercent(code string) decimal.Decimal {
	if pct, ok := promoCodes[strings.ToUpper(code)]; ok {
		return pct
	}
	return decimal.Zero
}

// IsKnownPromoCode reports whether the code maps to a discount
func IsKnownPromoCode(code string) bool {
	_, ok := promoCodes[strings.ToUpper(code)]
	return ok
}

// CalculateTotals derives the cart figures from items and promo code
func CalculateTotals(items []CartItem, promoCode string) Totals {
	totals := Totals{
		LineCount:  len(items),
		TotalPrice: decimal.Zero,
		PromoCode:  promoCode,
		PromoValid: IsKnownPromoCode(promoCode),
	}
	for _, item := range items {
		totals.TotalItems += item.Quantity
		totals.TotalPrice = totals.TotalPrice.Add(item.LineTotal())
	}
	totals.Discount = totals.TotalPrice.Mul(PromoPercent(promoCode))
	return totals
}
