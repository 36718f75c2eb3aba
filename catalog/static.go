package catalog

import "wed-storefront/models"

// staticProducts is the hard-coded fallback catalog. It is served whenever
// the remote data service fails or returns nothing, so the storefront is
// never empty.
var staticProducts = []models.Product{
	{
		ID:          "prod-001",
		Name:        "Ash Brown Jacket",
		Price:       1150.00,
		Currency:    "EGP",
		Description: "Clean cut, timeless comfort. Essential piece for daily wear built to last beyond the season.",
		Images: []string{
			"/img/IMG_4091.jpg",
			"/img/IMG_4095.webp",
			"/img/IMG_4098_0a62a697-8421-4a83-9cea-f70677aca4af.webp",
			"/img/IMG_4103.webp",
		},
		Sizes:    []string{"S", "M", "L", "XL"},
		Category: "jackets",
		InStock:  true,
	},
	{
		ID:          "prod-002",
		Name:        "Navy Jacket",
		Price:       1300.00,
		Currency:    "EGP",
		Description: "Elegant navy jacket with modern design. Perfect for any occasion.",
		Images: []string{
			"/img/IMG_4098_0a62a697-8421-4a83-9cea-f70677aca4af.webp",
			"/img/IMG_4103.webp",
			"/img/IMG_4114.webp",
			"/img/IMG_4117.jpg",
		},
		Sizes:    []string{"S", "M", "L", "XL"},
		Category: "jackets",
		InStock:  true,
	},
	{
		ID:          "prod-003",
		Name:        "Essential White Tee",
		Price:       450.00,
		Currency:    "EGP",
		Description: "Classic white t-shirt made from premium cotton. A wardrobe essential.",
		Images: []string{
			"/img/IMG_4114.webp",
			"/img/IMG_4117.jpg",
			"/img/IMG_4124.webp",
			"/img/IMG_4129.webp",
		},
		Sizes:    []string{"S", "M", "L", "XL", "XXL"},
		Category: "tops",
		InStock:  true,
	},
	{
		ID:          "prod-004",
		Name:        "Minimalist Coat",
		Price:       1850.00,
		Currency:    "EGP",
		Description: "Sophisticated coat with clean lines. Perfect for the modern wardrobe.",
		Images: []string{
			"/img/IMG_4124.webp",
			"/img/IMG_4129.webp",
			"/img/IMG_4130.jpg",
			"/img/IMG_4142.webp",
		},
		Sizes:    []string{"S", "M", "L", "XL"},
		Category: "coats",
		InStock:  true,
	},
	{
		ID:          "prod-005",
		Name:        "Classic Blazer",
		Price:       1650.00,
		Currency:    "EGP",
		Description: "Timeless blazer that elevates any outfit. Essential for every wardrobe.",
		Images: []string{
			"/img/IMG_4130.jpg",
			"/img/IMG_4142.webp",
			"/img/IMG_4143.webp",
			"/img/IMG_4091.jpg",
		},
		Sizes:    []string{"S", "M", "L", "XL"},
		Category: "blazers",
		InStock:  true,
	},
	{
		ID:          "prod-006",
		Name:        "Comfort Cardigan",
		Price:       950.00,
		Currency:    "EGP",
		Description: "Soft and comfortable cardigan for everyday wear. Versatile and stylish.",
		Images: []string{
			"/img/IMG_4143.webp",
			"/img/IMG_4091.jpg",
			"/img/IMG_4095.webp",
			"/img/IMG_4098_0a62a697-8421-4a83-9cea-f70677aca4af.webp",
		},
		Sizes:    []string{"S", "M", "L", "XL"},
		Category: "cardigans",
		InStock:  true,
	},
	{
		ID:          "prod-007",
		Name:        "Urban Jacket",
		Price:       1450.00,
		Currency:    "EGP",
		Description: "Modern urban jacket with functional design. Built for city life.",
		Images: []string{
			"/img/IMG_4095.webp",
			"/img/IMG_4098_0a62a697-8421-4a83-9cea-f70677aca4af.webp",
			"/img/IMG_4103.webp",
			"/img/IMG_4114.webp",
		},
		Sizes:    []string{"S", "M", "L", "XL"},
		Category: "jackets",
		InStock:  true,
	},
	{
		ID:          "prod-008",
		Name:        "Essential Hoodie",
		Price:       850.00,
		Currency:    "EGP",
		Description: "Comfortable hoodie for casual days. Made with premium materials.",
		Images: []string{
			"/img/IMG_4103.webp",
			"/img/IMG_4114.webp",
			"/img/IMG_4117.jpg",
			"/img/IMG_4124.webp",
		},
		Sizes:    []string{"S", "M", "L", "XL", "XXL"},
		Category: "hoodies",
		InStock:  true,
	},
}

// StaticCatalog returns a copy of the fallback product set.
func StaticCatalog() []models.Product {
	out := make([]models.Product, len(staticProducts))
	copy(out, staticProducts)
	return out
}
