package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/shopfront/internal/pkg/lifecycle"
)

func ids(products []Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestQueries(t *testing.T) {
	products := SeedProducts()

	t.Run("FindProduct", func(t *testing.T) {
		p, ok := FindProduct(products, "5")
		require.True(t, ok)
		assert.Equal(t, "Running Shoes Ultra", p.Name)

		_, ok = FindProduct(products, "missing")
		assert.False(t, ok)
	})

	t.Run("FilterByCategory", func(t *testing.T) {
		assert.Equal(t, []string{"4", "5", "6"}, ids(FilterByCategory(products, "2")))
		assert.Empty(t, FilterByCategory(products, "8"))
	})

	t.Run("SearchIsCaseInsensitiveAcrossFields", func(t *testing.T) {
		assert.Equal(t, []string{"3"}, ids(Search(products, "BLUETOOTH SPEAKER")))
		// description match
		assert.Contains(t, ids(Search(products, "noise cancellation")), "1")
		// category match
		assert.Equal(t, []string{"10", "11", "12"}, ids(Search(products, "sports")))
		assert.Empty(t, Search(products, "no such thing"))
		assert.Len(t, Search(products, ""), len(products))
	})

	t.Run("FeaturedCappedAtSix", func(t *testing.T) {
		featured := Featured(products)
		assert.Equal(t, []string{"1", "5", "6", "9", "10", "14"}, ids(featured))
		for _, p := range featured {
			assert.True(t, p.Badge == BadgeBestSeller || p.Badge == BadgeNew)
		}
	})

	t.Run("TrendingSortedByReviews", func(t *testing.T) {
		trending := Trending(products)
		require.Len(t, trending, TrendingLimit)
		// 892 appears twice; catalog order breaks the tie
		assert.Equal(t, []string{"1", "2", "5", "10", "3", "13"}, ids(trending))
	})

	t.Run("OnSaleAndNewArrivals", func(t *testing.T) {
		assert.Equal(t, []string{"2", "7", "11", "13", "15"}, ids(OnSale(products)))
		assert.Equal(t, []string{"6", "9", "14"}, ids(NewArrivals(products)))
	})

	t.Run("LowStockCappedAtTen", func(t *testing.T) {
		assert.Empty(t, LowStock(products))

		many := make([]Product, 0, 12)
		for i := 0; i < 12; i++ {
			p := products[0].Clone()
			p.ID = strings.Repeat("x", i+1)
			p.Stock = i
			many = append(many, p)
		}
		p := products[1].Clone()
		p.Stock = LowStockThreshold
		many = append([]Product{p}, many...)
		low := LowStock(many)
		assert.Len(t, low, LowStockLimit)
		assert.NotContains(t, ids(low), p.ID)
	})

	t.Run("ResultsAreCopies", func(t *testing.T) {
		out := FilterByCategory(products, "1")
		out[0].Colors[0] = "Mutated"
		out[0].OriginalPrice = nil
		assert.Equal(t, "Black", products[0].Colors[0])
		assert.NotNil(t, products[0].OriginalPrice)
	})

	t.Run("CategoryLookups", func(t *testing.T) {
		categories := SeedCategories()
		c, ok := FindCategory(categories, "3")
		require.True(t, ok)
		assert.Equal(t, "home-living", c.Slug)

		c, ok = FindCategoryBySlug(categories, "books-media")
		require.True(t, ok)
		assert.Equal(t, "6", c.ID)

		_, ok = FindCategoryBySlug(categories, "nope")
		assert.False(t, ok)
	})
}

func TestSeedDataIsValid(t *testing.T) {
	seen := map[string]bool{}
	skus := map[string]bool{}
	for _, p := range SeedProducts() {
		assert.NoError(t, p.Validate(), p.ID)
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		assert.False(t, skus[p.SKU], "duplicate sku %s", p.SKU)
		seen[p.ID] = true
		skus[p.SKU] = true
	}
	for _, c := range SeedCategories() {
		assert.NoError(t, c.Validate(), c.ID)
	}
}

func TestProductValidate(t *testing.T) {
	base := func() Product {
		return Product{Name: "Mug", Price: decimal.RequireFromString("9.99"), Badge: BadgeNone, Rating: 4}
	}
	lower := decimal.RequireFromString("5.00")

	tests := []struct {
		name   string
		modify func(p *Product)
	}{
		{"EmptyName", func(p *Product) { p.Name = "  " }},
		{"NegativePrice", func(p *Product) { p.Price = decimal.NewFromInt(-1) }},
		{"OriginalBelowPrice", func(p *Product) { p.OriginalPrice = &lower }},
		{"RatingTooHigh", func(p *Product) { p.Rating = 5.1 }},
		{"NegativeReviews", func(p *Product) { p.Reviews = -1 }},
		{"NegativeStock", func(p *Product) { p.Stock = -3 }},
		{"UnknownBadge", func(p *Product) { p.Badge = "HOT" }},
	}

	valid := base()
	require.NoError(t, valid.Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base()
			tt.modify(&p)
			assert.ErrorIs(t, p.Validate(), ErrInvalidProduct)
		})
	}
}

func TestParseBadge(t *testing.T) {
	b, err := ParseBadge("best_seller")
	require.NoError(t, err)
	assert.Equal(t, BadgeBestSeller, b)

	b, err = ParseBadge("")
	require.NoError(t, err)
	assert.Equal(t, BadgeNone, b)

	_, err = ParseBadge("clearance")
	assert.ErrorIs(t, err, ErrInvalidBadge)
}

func TestCatalog(t *testing.T) {
	t.Run("AddAssignsUniqueIDs", func(t *testing.T) {
		c := NewSeededCatalog()
		a, err := c.Add(Product{Name: "Kettle", Price: decimal.RequireFromString("25")})
		require.NoError(t, err)
		b, err := c.Add(Product{Name: "Kettle", Price: decimal.RequireFromString("25")})
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(a.ID, "prod-"))
		assert.NotEqual(t, a.ID, b.ID)
		assert.Equal(t, BadgeNone, a.Badge)
		assert.Len(t, c.Products(), len(SeedProducts())+2)

		got, ok := c.ProductByID(a.ID)
		require.True(t, ok)
		assert.Equal(t, "Kettle", got.Name)
	})

	t.Run("AddRejectsInvalid", func(t *testing.T) {
		c := NewSeededCatalog()
		_, err := c.Add(Product{Price: decimal.NewFromInt(1)})
		assert.ErrorIs(t, err, ErrInvalidProduct)
		assert.Len(t, c.Products(), len(SeedProducts()))
	})

	t.Run("UpdateMergesFields", func(t *testing.T) {
		c := NewSeededCatalog()
		stock := 3
		name := "Headphones II"
		updated, found, err := c.Update("1", ProductUpdate{Stock: &stock, Name: &name})
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "1", updated.ID)
		assert.Equal(t, 3, updated.Stock)
		assert.Equal(t, "Headphones II", updated.Name)
		assert.Equal(t, "ELEC-001", updated.SKU)
		assert.Equal(t, 1, c.LowStockCount())
	})

	t.Run("UpdateUnknownIsNoop", func(t *testing.T) {
		c := NewSeededCatalog()
		stock := 1
		_, found, err := c.Update("missing", ProductUpdate{Stock: &stock})
		require.NoError(t, err)
		assert.False(t, found)
		assert.Equal(t, SeedProducts(), c.Products())
	})

	t.Run("UpdateRejectsInvalidMerge", func(t *testing.T) {
		c := NewSeededCatalog()
		neg := -5
		_, found, err := c.Update("2", ProductUpdate{Stock: &neg})
		assert.True(t, found)
		assert.ErrorIs(t, err, ErrInvalidProduct)
		p, _ := c.ProductByID("2")
		assert.Equal(t, 28, p.Stock)
	})

	t.Run("DeleteAndCategories", func(t *testing.T) {
		c := NewSeededCatalog()
		assert.True(t, c.Delete("3"))
		assert.False(t, c.Delete("3"))
		_, ok := c.ProductByID("3")
		assert.False(t, ok)

		cat, err := c.AddCategory(Category{Name: "Garden", Slug: "garden"})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(cat.ID, "cat-"))
		got, ok := c.CategoryBySlug("garden")
		require.True(t, ok)
		assert.Equal(t, cat.ID, got.ID)

		_, err = c.AddCategory(Category{Name: "No slug"})
		assert.ErrorIs(t, err, ErrInvalidCategory)

		assert.True(t, c.DeleteCategory(cat.ID))
		assert.False(t, c.DeleteCategory(cat.ID))
		assert.Len(t, c.Categories(), len(SeedCategories()))
	})

	t.Run("StorefrontSeesAdminChanges", func(t *testing.T) {
		c := NewSeededCatalog()
		badge := BadgeSale
		_, _, err := c.Update("3", ProductUpdate{Badge: &badge})
		require.NoError(t, err)
		assert.Contains(t, ids(c.OnSale()), "3")
		assert.Equal(t, []string{"1", "2", "3"}, ids(c.ProductsByCategory("1")))
		assert.Equal(t, []string{"15"}, ids(c.Search("novel")))
		assert.Len(t, c.Featured(), FeaturedLimit)
		assert.Len(t, c.Trending(), TrendingLimit)
		assert.Len(t, c.NewArrivals(), 3)
		assert.Empty(t, c.LowStock())
	})

	t.Run("ClosedCatalogPanics", func(t *testing.T) {
		c := NewSeededCatalog()
		c.Close()
		defer func() {
			r := recover()
			err, ok := r.(*lifecycle.AccessError)
			require.True(t, ok)
			assert.True(t, errors.Is(err, lifecycle.ErrClosed))
		}()
		c.Products()
	})

	t.Run("NilCatalogPanics", func(t *testing.T) {
		var c *Catalog
		assert.PanicsWithError(t, "catalog.Search: store is not initialized", func() {
			c.Search("x")
		})
	})
}
