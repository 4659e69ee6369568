// internal/domain/catalog/query.go
package catalog

import (
	"sort"
	"strings"
)

// Result caps for the storefront shelves
const (
	FeaturedLimit = 6
	TrendingLimit = 6
	SaleLimit     = 6
	NewLimit      = 6
	LowStockLimit = 10
)

// FindProduct returns the product with the given id
func FindProduct(products []Product, id string) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return Product{}, false
}

// FilterByCategory returns the products belonging to a category
func FilterByCategory(products []Product, categoryID string) []Product {
	return filter(products, 0, func(p *Product) bool {
		return p.CategoryID == categoryID
	})
}

// Search matches query case-insensitively against name, description and category.
// An empty query matches every product.
func Search(products []Product, query string) []Product {
	q := strings.ToLower(query)
	return filter(products, 0, func(p *Product) bool {
		return strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Category), q)
	})
}

// Featured returns best sellers and new arrivals
func Featured(products []Product) []Product {
	return filter(products, FeaturedLimit, func(p *Product) bool {
		return p.Badge == BadgeBestSeller || p.Badge == BadgeNew
	})
}

// Trending returns the most reviewed products, keeping catalog order on ties
func Trending(products []Product) []Product {
	sorted := filter(products, 0, func(*Product) bool { return true })
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Reviews > sorted[j].Reviews
	})
	if len(sorted) > TrendingLimit {
		sorted = sorted[:TrendingLimit]
	}
	return sorted
}

// OnSale returns products carrying the SALE badge
func OnSale(products []Product) []Product {
	return filter(products, SaleLimit, func(p *Product) bool {
		return p.Badge == BadgeSale
	})
}

// NewArrivals returns products carrying the NEW badge
func NewArrivals(products []Product) []Product {
	return filter(products, NewLimit, func(p *Product) bool {
		return p.Badge == BadgeNew
	})
}

// LowStock returns products below the low stock threshold
func LowStock(products []Product) []Product {
	return filter(products, LowStockLimit, (*Product).IsLowStock)
}

// FindCategory returns the category with the given id
func FindCategory(categories []Category, id string) (Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c.Clone(), true
		}
	}
	return Category{}, false
}

// FindCategoryBySlug returns the category with the given slug
func FindCategoryBySlug(categories []Category, slug string) (Category, bool) {
	for _, c := range categories {
		if c.Slug == slug {
			return c.Clone(), true
		}
	}
	return Category{}, false
}

// filter copies matching products in order; limit <= 0 means no cap
func filter(products []Product, limit int, match func(*Product) bool) []Product {
	out := make([]Product, 0)
	for i := range products {
		if limit > 0 && len(out) == limit {
			break
		}
		if match(&products[i]) {
			out = append(out, products[i].Clone())
		}
	}
	return out
}
