// internal/domain/catalog/seed.go
package catalog

import "github.com/shopspring/decimal"

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func originalPrice(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// SeedCategories returns a fresh copy of the mock category list
func SeedCategories() []Category {
	return []Category{
		{
			ID:            "1",
			Name:          "Electronics",
			Slug:          "electronics",
			Image:         "https://images.pexels.com/photos/374870/pexels-photo-374870.jpeg",
			ProductCount:  45,
			Subcategories: []string{"Phones", "Laptops", "Audio", "Cameras", "Accessories"},
		},
		{
			ID:            "2",
			Name:          "Clothing",
			Slug:          "clothing",
			Image:         "https://images.pexels.com/photos/10026491/pexels-photo-10026491.jpeg",
			ProductCount:  128,
			Subcategories: []string{"Men", "Women", "Kids", "Accessories", "Shoes"},
		},
		{
			ID:            "3",
			Name:          "Home & Living",
			Slug:          "home-living",
			Image:         "https://images.pexels.com/photos/1571460/pexels-photo-1571460.jpeg",
			ProductCount:  67,
			Subcategories: []string{"Furniture", "Decor", "Bedding", "Kitchen", "Storage"},
		},
		{
			ID:            "4",
			Name:          "Sports & Outdoors",
			Slug:          "sports-outdoors",
			Image:         "https://images.pexels.com/photos/2529148/pexels-photo-2529148.jpeg",
			ProductCount:  89,
			Subcategories: []string{"Fitness", "Outdoor", "Team Sports", "Camping", "Cycling"},
		},
		{
			ID:            "5",
			Name:          "Beauty & Personal Care",
			Slug:          "beauty-personal-care",
			Image:         "https://images.pexels.com/photos/3762875/pexels-photo-3762875.jpeg",
			ProductCount:  156,
			Subcategories: []string{"Skincare", "Makeup", "Haircare", "Fragrance", "Personal Care"},
		},
		{
			ID:            "6",
			Name:          "Books & Media",
			Slug:          "books-media",
			Image:         "https://images.pexels.com/photos/159711/books-pile-library-education-159711.jpeg",
			ProductCount:  234,
			Subcategories: []string{"Fiction", "Non-Fiction", "Textbooks", "Comics", "Magazines"},
		},
		{
			ID:            "7",
			Name:          "Toys & Games",
			Slug:          "toys-games",
			Image:         "https://images.pexels.com/photos/2681786/pexels-photo-2681786.jpeg",
			ProductCount:  78,
			Subcategories: []string{"Board Games", "Puzzles", "Action Figures", "Dolls", "Educational"},
		},
		{
			ID:            "8",
			Name:          "Food & Beverages",
			Slug:          "food-beverages",
			Image:         "https://images.pexels.com/photos/1640777/pexels-photo-1640777.jpeg",
			ProductCount:  92,
			Subcategories: []string{"Snacks", "Beverages", "Pantry", "Frozen", "Organic"},
		},
	}
}

// SeedProducts returns a fresh copy of the mock product list
func SeedProducts() []Product {
	return []Product{
		{
			ID:            "1",
			Name:          "Wireless Noise Cancelling Headphones",
			Description:   "Premium wireless headphones with active noise cancellation, 30-hour battery life, and immersive sound quality.",
			Price:         price("129.99"),
			OriginalPrice: originalPrice("199.99"),
			Image:         "https://images.pexels.com/photos/374870/pexels-photo-374870.jpeg",
			Images:        []string{"https://images.pexels.com/photos/374870/pexels-photo-374870.jpeg"},
			Category:      "Electronics",
			CategoryID:    "1",
			Rating:        4.8,
			Reviews:       1254,
			Colors:        []string{"Black", "White", "Silver"},
			Stock:         45,
			Badge:         BadgeBestSeller,
			SKU:           "ELEC-001",
			Features:      []string{"Active Noise Cancellation", "30hr Battery", "Bluetooth 5.2"},
		},
		{
			ID:            "2",
			Name:          "Smart Watch Pro",
			Description:   "Advanced smartwatch with health monitoring, GPS tracking, and 7-day battery life.",
			Price:         price("199.99"),
			OriginalPrice: originalPrice("299.99"),
			Image:         "https://images.pexels.com/photos/2774062/pexels-photo-2774062.jpeg",
			Category:      "Electronics",
			CategoryID:    "1",
			Rating:        4.6,
			Reviews:       892,
			Colors:        []string{"Black", "Silver", "Gold"},
			Stock:         28,
			Badge:         BadgeSale,
			SKU:           "ELEC-002",
			Features:      []string{"Heart Rate Monitor", "GPS", "Water Resistant 50m"},
		},
		{
			ID:          "3",
			Name:        "Portable Bluetooth Speaker",
			Description: "Compact yet powerful waterproof speaker with 360° sound and 20-hour playtime.",
			Price:       price("49.99"),
			Image:       "https://images.pexels.com/photos/18023372/pexels-photo-18023372/free-photo-of-electronic-device.jpeg",
			Category:    "Electronics",
			CategoryID:  "1",
			Rating:      4.5,
			Reviews:     567,
			Colors:      []string{"Black", "Blue", "Red"},
			Stock:       78,
			Badge:       BadgeNone,
			SKU:         "ELEC-003",
			Features:    []string{"Waterproof IPX7", "360° Sound", "20hr Battery"},
		},
		{
			ID:            "4",
			Name:          "Classic Cotton T-Shirt",
			Description:   "Premium 100% organic cotton t-shirt with a relaxed fit.",
			Price:         price("24.99"),
			OriginalPrice: originalPrice("34.99"),
			Image:         "https://images.pexels.com/photos/10026491/pexels-photo-10026491.jpeg",
			Category:      "Clothing",
			CategoryID:    "2",
			Rating:        4.4,
			Reviews:       324,
			Sizes:         []string{"XS", "S", "M", "L", "XL"},
			Colors:        []string{"White", "Black", "Navy", "Gray"},
			Stock:         156,
			Badge:         BadgeNone,
			SKU:           "CLTH-001",
			Features:      []string{"100% Organic Cotton", "Pre-shrunk", "Reinforced Collar"},
		},
		{
			ID:            "5",
			Name:          "Running Shoes Ultra",
			Description:   "Lightweight running shoes with responsive cushioning and breathable mesh upper.",
			Price:         price("89.99"),
			OriginalPrice: originalPrice("119.99"),
			Image:         "https://images.pexels.com/photos/2529148/pexels-photo-2529148.jpeg",
			Category:      "Clothing",
			CategoryID:    "2",
			Rating:        4.7,
			Reviews:       892,
			Sizes:         []string{"6", "7", "8", "9", "10", "11"},
			Colors:        []string{"Black/White", "Blue/Orange", "Gray/Pink"},
			Stock:         67,
			Badge:         BadgeBestSeller,
			SKU:           "CLTH-002",
			Features:      []string{"Responsive Cushioning", "Breathable Mesh", "Anti-slip Sole"},
		},
		{
			ID:          "6",
			Name:        "Denim Jacket Classic",
			Description: "Timeless denim jacket with a modern fit.",
			Price:       price("59.99"),
			Image:       "https://images.pexels.com/photos/934416/pexels-photo-934416.jpeg",
			Category:    "Clothing",
			CategoryID:  "2",
			Rating:      4.3,
			Reviews:     234,
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"Light Blue", "Dark Blue", "Black"},
			Stock:       45,
			Badge:       BadgeNew,
			SKU:         "CLTH-003",
			Features:    []string{"100% Cotton Denim", "Button Closure", "Chest Pockets"},
		},
		{
			ID:            "7",
			Name:          "Minimalist Desk Lamp",
			Description:   "Modern LED desk lamp with adjustable brightness and color temperature.",
			Price:         price("34.99"),
			OriginalPrice: originalPrice("49.99"),
			Image:         "https://images.pexels.com/photos/1513509/pexels-photo-1513509.jpeg",
			Category:      "Home & Living",
			CategoryID:    "3",
			Rating:        4.6,
			Reviews:       456,
			Colors:        []string{"White", "Black", "Wood"},
			Stock:         89,
			Badge:         BadgeSale,
			SKU:           "HOME-001",
			Features:      []string{"5 Brightness Levels", "3 Color Temps", "USB Charging Port"},
		},
		{
			ID:          "8",
			Name:        "Ceramic Plant Pot Set",
			Description: "Set of 3 handmade ceramic plant pots with drainage holes.",
			Price:       price("29.99"),
			Image:       "https://images.pexels.com/photos/2471234/pexels-photo-2471234.jpeg",
			Category:    "Home & Living",
			CategoryID:  "3",
			Rating:      4.8,
			Reviews:     189,
			Colors:      []string{"Terracotta", "White", "Sage Green"},
			Stock:       56,
			Badge:       BadgeNone,
			SKU:         "HOME-002",
			Features:    []string{"Handmade", "Drainage Holes", "Trays Included"},
		},
		{
			ID:          "9",
			Name:        "Cotton Throw Blanket",
			Description: "Soft and cozy cotton throw blanket with a geometric pattern.",
			Price:       price("44.99"),
			Image:       "https://images.pexels.com/photos/2079246/pexels-photo-2079246.jpeg",
			Category:    "Home & Living",
			CategoryID:  "3",
			Rating:      4.7,
			Reviews:     312,
			Colors:      []string{"Navy/White", "Gray/Ivory", "Rust/Cream"},
			Stock:       34,
			Badge:       BadgeNew,
			SKU:         "HOME-003",
			Features:    []string{"100% Cotton", "Machine Washable", "Lightweight"},
		},
		{
			ID:            "10",
			Name:          "Yoga Mat Premium",
			Description:   "Extra thick non-slip yoga mat with alignment guides.",
			Price:         price("39.99"),
			OriginalPrice: originalPrice("54.99"),
			Image:         "https://images.pexels.com/photos/3823039/pexels-photo-3823039.jpeg",
			Category:      "Sports & Outdoors",
			CategoryID:    "4",
			Rating:        4.9,
			Reviews:       678,
			Colors:        []string{"Purple", "Teal", "Coral", "Black"},
			Stock:         123,
			Badge:         BadgeBestSeller,
			SKU:           "SPRT-001",
			Features:      []string{"Non-slip Surface", "6mm Thickness", "Alignment Guides"},
		},
		{
			ID:            "11",
			Name:          "Fitness Tracker Band",
			Description:   "Slim fitness tracker with step counting and heart rate monitoring.",
			Price:         price("59.99"),
			OriginalPrice: originalPrice("79.99"),
			Image:         "https://images.pexels.com/photos/3784398/pexels-photo-3784398.jpeg",
			Category:      "Sports & Outdoors",
			CategoryID:    "4",
			Rating:        4.4,
			Reviews:       445,
			Colors:        []string{"Black", "Navy", "Rose Gold"},
			Stock:         89,
			Badge:         BadgeSale,
			SKU:           "SPRT-002",
			Features:      []string{"Step Tracking", "Heart Rate", "Sleep Analysis"},
		},
		{
			ID:          "12",
			Name:        "Resistance Bands Set",
			Description: "Complete set of 5 resistance bands with different strength levels.",
			Price:       price("19.99"),
			Image:       "https://images.pexels.com/photos/841321/pexels-photo-841321.jpeg",
			Category:    "Sports & Outdoors",
			CategoryID:  "4",
			Rating:      4.6,
			Reviews:     234,
			Colors:      []string{"Multicolor"},
			Stock:       167,
			Badge:       BadgeNone,
			SKU:         "SPRT-003",
			Features:    []string{"5 Resistance Levels", "Carry Bag Included", "Exercise Guide"},
		},
		{
			ID:            "13",
			Name:          "Skincare Gift Set",
			Description:   "Complete skincare set with cleanser, toner, serum, and moisturizer.",
			Price:         price("49.99"),
			OriginalPrice: originalPrice("69.99"),
			Image:         "https://images.pexels.com/photos/3762875/pexels-photo-3762875.jpeg",
			Category:      "Beauty & Personal Care",
			CategoryID:    "5",
			Rating:        4.7,
			Reviews:       567,
			Colors:        []string{"Normal Skin", "Dry Skin", "Oily Skin"},
			Stock:         78,
			Badge:         BadgeSale,
			SKU:           "BEAU-001",
			Features:      []string{"Cruelty Free", "Vegan", "Paraben Free"},
		},
		{
			ID:          "14",
			Name:        "Hair Care Bundle",
			Description: "Professional hair care bundle with shampoo, conditioner, and hair mask.",
			Price:       price("34.99"),
			Image:       "https://images.pexels.com/photos/3757942/pexels-photo-3757942.jpeg",
			Category:    "Beauty & Personal Care",
			CategoryID:  "5",
			Rating:      4.5,
			Reviews:     389,
			Colors:      []string{"For All Hair Types", "Color Safe", "Hydrating"},
			Stock:       92,
			Badge:       BadgeNew,
			SKU:         "BEAU-002",
			Features:    []string{"Sulfate Free", "Keratin Enriched", "UV Protection"},
		},
		{
			ID:            "15",
			Name:          "Bestseller Novel Collection",
			Description:   "Collection of 5 bestselling fiction novels.",
			Price:         price("29.99"),
			OriginalPrice: originalPrice("49.99"),
			Image:         "https://images.pexels.com/photos/159711/books-pile-library-education-159711.jpeg",
			Category:      "Books & Media",
			CategoryID:    "6",
			Rating:        4.8,
			Reviews:       234,
			Stock:         45,
			Badge:         BadgeSale,
			SKU:           "BOOK-001",
			Features:      []string{"5 Hardcovers", "Bestsellers", "Gift Ready"},
		},
	}
}
