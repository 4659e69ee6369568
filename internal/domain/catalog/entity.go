// internal/domain/catalog/entity.go
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Badge represents a promotional tag on a product
type Badge string

const (
	BadgeNew        Badge = "NEW"
	BadgeSale       Badge = "SALE"
	BadgeBestSeller Badge = "BEST_SELLER"
	BadgeNone       Badge = "NONE"
)

// LowStockThreshold is the stock level below which a product counts as low stock
const LowStockThreshold = 20

var (
	ErrInvalidProduct  = errors.New("invalid product")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidBadge    = errors.New("invalid badge")
)

// ParseBadge parses a badge name case-insensitively. An empty string is NONE.
func ParseBadge(s string) (Badge, error) {
	switch b := Badge(strings.ToUpper(strings.TrimSpace(s))); b {
	case BadgeNew, BadgeSale, BadgeBestSeller, BadgeNone:
		return b, nil
	case "":
		return BadgeNone, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidBadge, s)
	}
}

// Valid reports whether b is one of the known badges
func (b Badge) Valid() bool {
	switch b {
	case BadgeNew, BadgeSale, BadgeBestSeller, BadgeNone:
		return true
	}
	return false
}

// Product represents a product in the catalog
type Product struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Price          decimal.Decimal   `json:"price"`
	OriginalPrice  *decimal.Decimal  `json:"original_price,omitempty"`
	Image          string            `json:"image"`
	Images         []string          `json:"images,omitempty"`
	Category       string            `json:"category"`
	CategoryID     string            `json:"category_id"`
	Rating         float64           `json:"rating"`
	Reviews        int               `json:"reviews"`
	Sizes          []string          `json:"sizes,omitempty"`
	Colors         []string          `json:"colors,omitempty"`
	Stock          int               `json:"stock"`
	Badge          Badge             `json:"badge"`
	SKU            string            `json:"sku"`
	Features       []string          `json:"features,omitempty"`
	Specifications map[string]string `json:"specifications,omitempty"`
}

// Validate checks the product invariants
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidProduct)
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("%w: price cannot be negative", ErrInvalidProduct)
	}
	if p.OriginalPrice != nil && p.OriginalPrice.LessThan(p.Price) {
		return fmt.Errorf("%w: original price must not be below price", ErrInvalidProduct)
	}
	if p.Rating < 0 || p.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 0 and 5", ErrInvalidProduct)
	}
	if p.Reviews < 0 {
		return fmt.Errorf("%w: reviews cannot be negative", ErrInvalidProduct)
	}
	if p.Stock < 0 {
		return fmt.Errorf("%w: stock cannot be negative", ErrInvalidProduct)
	}
	if !p.Badge.Valid() {
		return fmt.Errorf("%w: badge %q", ErrInvalidProduct, p.Badge)
	}
	return nil
}

// IsLowStock reports whether the product is below the low stock threshold
func (p *Product) IsLowStock() bool {
	return p.Stock < LowStockThreshold
}

// OnSale reports whether the product is discounted from its original price
func (p *Product) OnSale() bool {
	return p.OriginalPrice != nil && p.OriginalPrice.GreaterThan(p.Price)
}

// Clone returns a deep copy of the product
func (p Product) Clone() Product {
	if p.OriginalPrice != nil {
		op := *p.OriginalPrice
		p.OriginalPrice = &op
	}
	p.Images = cloneStrings(p.Images)
	p.Sizes = cloneStrings(p.Sizes)
	p.Colors = cloneStrings(p.Colors)
	p.Features = cloneStrings(p.Features)
	if p.Specifications != nil {
		specs := make(map[string]string, len(p.Specifications))
		for k, v := range p.Specifications {
			specs[k] = v
		}
		p.Specifications = specs
	}
	return p
}

// ProductUpdate carries a partial product update; nil fields are left unchanged
type ProductUpdate struct {
	Name           *string            `json:"name"`
	Description    *string            `json:"description"`
	Price          *decimal.Decimal   `json:"price"`
	OriginalPrice  *decimal.Decimal   `json:"original_price"`
	Image          *string            `json:"image"`
	Images         *[]string          `json:"images"`
	Category       *string            `json:"category"`
	CategoryID     *string            `json:"category_id"`
	Rating         *float64           `json:"rating"`
	Reviews        *int               `json:"reviews"`
	Sizes          *[]string          `json:"sizes"`
	Colors         *[]string          `json:"colors"`
	Stock          *int               `json:"stock"`
	Badge          *Badge             `json:"badge"`
	SKU            *string            `json:"sku"`
	Features       *[]string          `json:"features"`
	Specifications *map[string]string `json:"specifications"`
}

// Apply merges the update onto a copy of p and returns it
func (u ProductUpdate) Apply(p Product) Product {
	out := p.Clone()
	if u.Name != nil {
		out.Name = *u.Name
	}
	if u.Description != nil {
		out.Description = *u.Description
	}
	if u.Price != nil {
		out.Price = *u.Price
	}
	if u.OriginalPrice != nil {
		op := *u.OriginalPrice
		out.OriginalPrice = &op
	}
	if u.Image != nil {
		out.Image = *u.Image
	}
	if u.Images != nil {
		out.Images = cloneStrings(*u.Images)
	}
	if u.Category != nil {
		out.Category = *u.Category
	}
	if u.CategoryID != nil {
		out.CategoryID = *u.CategoryID
	}
	if u.Rating != nil {
		out.Rating = *u.Rating
	}
	if u.Reviews != nil {
		out.Reviews = *u.Reviews
	}
	if u.Sizes != nil {
		out.Sizes = cloneStrings(*u.Sizes)
	}
	if u.Colors != nil {
		out.Colors = cloneStrings(*u.Colors)
	}
	if u.Stock != nil {
		out.Stock = *u.Stock
	}
	if u.Badge != nil {
		out.Badge = *u.Badge
	}
	if u.SKU != nil {
		out.SKU = *u.SKU
	}
	if u.Features != nil {
		out.Features = cloneStrings(*u.Features)
	}
	if u.Specifications != nil {
		specs := make(map[string]string, len(*u.Specifications))
		for k, v := range *u.Specifications {
			specs[k] = v
		}
		out.Specifications = specs
	}
	return out
}

// Category represents a product category
type Category struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Slug          string   `json:"slug"`
	Image         string   `json:"image"`
	ProductCount  int      `json:"product_count"` // display hint, not recomputed
	Subcategories []string `json:"subcategories,omitempty"`
}

// Validate checks the category invariants
func (c *Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidCategory)
	}
	if strings.TrimSpace(c.Slug) == "" {
		return fmt.Errorf("%w: slug is required", ErrInvalidCategory)
	}
	if c.ProductCount < 0 {
		return fmt.Errorf("%w: product count cannot be negative", ErrInvalidCategory)
	}
	return nil
}

// Clone returns a deep copy of the category
func (c Category) Clone() Category {
	c.Subcategories = cloneStrings(c.Subcategories)
	return c
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
