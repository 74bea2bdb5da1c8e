// Seeds a development database with an admin account and a small catalog.
package main

import (
	"context"
	"log"

	"github.com/shopspring/decimal"
	"github.com/tanvi/artisan-market/internal/auth"
	"github.com/tanvi/artisan-market/internal/config"
	"github.com/tanvi/artisan-market/internal/database"
	"github.com/tanvi/artisan-market/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Load config: %v", err)
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		log.Fatalf("Connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	hash, err := auth.HashPassword("admin123")
	if err != nil {
		log.Fatalf("Hash password: %v", err)
	}
	admin, err := store.CreateUser(ctx, db, "admin@artisanmarket.example", hash, "Admin", "User", true)
	if err != nil {
		log.Fatalf("Create admin: %v", err)
	}
	log.Printf("Created admin %s", admin.Email)

	ramesh, err := store.CreateArtisan(ctx, db, store.ArtisanParams{
		Name:           "Ramesh Kumar",
		Bio:            "Third-generation blue pottery craftsman.",
		Location:       "Jaipur, Rajasthan",
		Specialization: "Blue Pottery",
		Experience:     "25 years",
		Story:          "Learned the craft from his grandfather in the lanes of the old city.",
	})
	if err != nil {
		log.Fatalf("Create artisan: %v", err)
	}

	meenakshi, err := store.CreateArtisan(ctx, db, store.ArtisanParams{
		Name:           "Meenakshi Devi",
		Bio:            "Award-winning Madhubani painter.",
		Location:       "Madhubani, Bihar",
		Specialization: "Madhubani Painting",
		Experience:     "18 years",
		Story:          "Paints scenes from folk epics using natural dyes.",
	})
	if err != nil {
		log.Fatalf("Create artisan: %v", err)
	}

	discounted := decimal.RequireFromString("1499.00")
	products := []store.ProductParams{
		{
			ASIN:            "B0ARTSN001",
			Name:            "Blue Pottery Vase",
			Description:     "Hand-thrown vase with traditional Jaipur glaze.",
			OriginalPrice:   decimal.RequireFromString("1899.00"),
			DiscountedPrice: &discounted,
			Category:        "Home Decor",
			Material:        "Ceramic",
			CountryOfOrigin: "India",
			ArtisanID:       &ramesh.ID,
			Images:          []string{"/images/blue-pottery-vase.jpg"},
			InStock:         true,
			Featured:        true,
		},
		{
			ASIN:            "B0ARTSN002",
			Name:            "Madhubani Wall Art",
			Description:     "Hand-painted canvas depicting the tree of life.",
			OriginalPrice:   decimal.RequireFromString("2499.00"),
			Category:        "Wall Art",
			Material:        "Canvas",
			CountryOfOrigin: "India",
			ArtisanID:       &meenakshi.ID,
			Images:          []string{"/images/madhubani-tree.jpg"},
			InStock:         true,
		},
		{
			ASIN:            "B0ARTSN003",
			Name:            "Carved Teak Jewellery Box",
			Description:     "Teak box with hand-carved floral lattice.",
			OriginalPrice:   decimal.RequireFromString("3299.00"),
			Category:        "Storage",
			Material:        "Wood",
			CountryOfOrigin: "India",
			Images:          []string{"/images/teak-box.jpg"},
			InStock:         true,
		},
	}

	for _, p := range products {
		product, err := store.CreateProduct(ctx, db, p)
		if err != nil {
			log.Fatalf("Create product %s: %v", p.ASIN, err)
		}
		log.Printf("Created product %s (%s)", product.Name, product.ASIN)
	}

	log.Println("Seed complete")
}
