// internal/domain/catalog/service.go
package catalog

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/your-org/shopfront/internal/pkg/lifecycle"
)

const storeName = "catalog"

// Catalog is the authoritative product and category collection shared by
// the storefront and the admin dashboard
type Catalog struct {
	guard      lifecycle.Guard
	mu         sync.RWMutex
	products   []Product
	categories []Category
}

// NewCatalog creates a catalog holding copies of the given records
func NewCatalog(products []Product, categories []Category) *Catalog {
	c := &Catalog{
		products:   make([]Product, 0, len(products)),
		categories: make([]Category, 0, len(categories)),
	}
	for _, p := range products {
		c.products = append(c.products, p.Clone())
	}
	for _, cat := range categories {
		c.categories = append(c.categories, cat.Clone())
	}
	c.guard.Open()
	return c
}

// NewSeededCatalog creates a catalog from the built-in mock data
func NewSeededCatalog() *Catalog {
	return NewCatalog(SeedProducts(), SeedCategories())
}

// Close discards the catalog; later calls panic
func (c *Catalog) Close() {
	if c == nil {
		return
	}
	c.guard.Close()
}

func (c *Catalog) check(op string) {
	if c == nil {
		lifecycle.Fail(storeName, op, lifecycle.ErrNotInitialized)
	}
	c.guard.Check(storeName, op)
}

// read runs fn against the current products under the read lock
func (c *Catalog) read(op string, fn func(products []Product) []Product) []Product {
	c.check(op)
	c.mu.RLock()
	defer c.mu.RUnlock()
	return fn(c.products)
}

// Products returns all products in catalog order
func (c *Catalog) Products() []Product {
	return c.read("Products", func(products []Product) []Product {
		return filter(products, 0, func(*Product) bool { return true })
	})
}

// Categories returns all categories in catalog order
func (c *Catalog) Categories() []Category {
	c.check("Categories")
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Category, len(c.categories))
	for i, cat := range c.categories {
		out[i] = cat.Clone()
	}
	return out
}

// ProductByID looks up a product
func (c *Catalog) ProductByID(id string) (Product, bool) {
	c.check("ProductByID")
	c.mu.RLock()
	defer c.mu.RUnlock()
	return FindProduct(c.products, id)
}

// CategoryByID looks up a category
func (c *Catalog) CategoryByID(id string) (Category, bool) {
	c.check("CategoryByID")
	c.mu.RLock()
	defer c.mu.RUnlock()
	return FindCategory(c.categories, id)
}

// CategoryBySlug looks up a category by slug
func (c *Catalog) CategoryBySlug(slug string) (Category, bool) {
	c.check("CategoryBySlug")
	c.mu.RLock()
	defer c.mu.RUnlock()
	return FindCategoryBySlug(c.categories, slug)
}

// ProductsByCategory returns the products in a category
func (c *Catalog) ProductsByCategory(categoryID string) []Product {
	return c.read("ProductsByCategory", func(products []Product) []Product {
		return FilterByCategory(products, categoryID)
	})
}

// Search returns products matching the query
func (c *Catalog) Search(query string) []Product {
	return c.read("Search", func(products []Product) []Product {
		return Search(products, query)
	})
}

func (c *Catalog) Featured() []Product    { return c.read("Featured", Featured) }
func (c *Catalog) Trending() []Product    { return c.read("Trending", Trending) }
func (c *Catalog) OnSale() []Product      { return c.read("OnSale", OnSale) }
func (c *Catalog) NewArrivals() []Product { return c.read("NewArrivals", NewArrivals) }
func (c *Catalog) LowStock() []Product    { return c.read("LowStock", LowStock) }

// LowStockCount counts every product below the threshold, uncapped
func (c *Catalog) LowStockCount() int {
	c.check("LowStockCount")
	c.mu.RLock()
	defer c.mu.RUnlock()

	count := 0
	for i := range c.products {
		if c.products[i].IsLowStock() {
			count++
		}
	}
	return count
}

// Add validates the product, assigns it a new id and appends it
func (c *Catalog) Add(p Product) (Product, error) {
	c.check("Add")
	if p.Badge == "" {
		p.Badge = BadgeNone
	}
	if err := p.Validate(); err != nil {
		return Product{}, err
	}

	created := p.Clone()
	created.ID = newID("prod")

	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = append(c.products, created)
	return created.Clone(), nil
}

// Update merges u onto the product with the given id. It reports false and
// changes nothing when the id is unknown.
func (c *Catalog) Update(id string, u ProductUpdate) (Product, bool, error) {
	c.check("Update")
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.products {
		if c.products[i].ID != id {
			continue
		}
		merged := u.Apply(c.products[i])
		merged.ID = id
		if err := merged.Validate(); err != nil {
			return Product{}, true, err
		}
		c.products[i] = merged
		return merged.Clone(), true, nil
	}
	return Product{}, false, nil
}

// Delete removes the product with the given id and reports whether it existed
func (c *Catalog) Delete(id string) bool {
	c.check("Delete")
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.products {
		if c.products[i].ID == id {
			c.products = append(c.products[:i], c.products[i+1:]...)
			return true
		}
	}
	return false
}

// AddCategory validates the category, assigns it a new id and appends it
func (c *Catalog) AddCategory(cat Category) (Category, error) {
	c.check("AddCategory")
	if err := cat.Validate(); err != nil {
		return Category{}, err
	}

	created := cat.Clone()
	created.ID = newID("cat")

	c.mu.Lock()
	defer c.mu.Unlock()
	c.categories = append(c.categories, created)
	return created.Clone(), nil
}

// DeleteCategory removes the category with the given id and reports whether it existed
func (c *Catalog) DeleteCategory(id string) bool {
	c.check("DeleteCategory")
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.categories {
		if c.categories[i].ID == id {
			c.categories = append(c.categories[:i], c.categories[i+1:]...)
			return true
		}
	}
	return false
}

func newID(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString())
}
