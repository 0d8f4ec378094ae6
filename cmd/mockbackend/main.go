package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
)

// main runs a tiny stand-in for the commerce backend so the gateway can
// be exercised without one.
// Usage: go run cmd/mockbackend/main.go [-port 5000]
// This is a standalone CLI tool, not part of the main application.
func main() {
	port := flag.String("port", "5000", "port to listen on")
	flag.Parse()

	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("VELORA GATEWAY - Mock Commerce Backend")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	products := sampleProducts()
	categories := sampleCategories()

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()
	api := router.Group("/api")

	api.GET("/products", func(c *gin.Context) {
		respond(c, "Products retrieved", products)
	})
	api.GET("/products/featured", func(c *gin.Context) {
		featured := make([]models.Product, 0)
		for _, p := range products {
			if p.IsFeatured {
				featured = append(featured, p)
			}
		}
		respond(c, "Featured products retrieved", featured)
	})
	api.GET("/products/:id", func(c *gin.Context) {
		for _, p := range products {
			if p.ID == c.Param("id") {
				respond(c, "Product retrieved", p)
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found", "error": "not found"})
	})
	api.GET("/products/:id/colors", func(c *gin.Context) {
		respond(c, "Colors retrieved", sampleColors())
	})
	api.GET("/products/:id/variants/:color", func(c *gin.Context) {
		respond(c, "Variants retrieved", sampleVariantSet(c.Param("color")))
	})
	api.GET("/categories", func(c *gin.Context) {
		respond(c, "Categories retrieved", categories)
	})
	api.GET("/currency/config", func(c *gin.Context) {
		respond(c, "Currency config retrieved", models.CurrencyConfig{
			Base:    "USD",
			Symbols: map[string]string{"USD": "$", "EUR": "€", "GBP": "£"},
			Rates:   map[string]float64{"USD": 1, "EUR": 0.91, "GBP": 0.78},
		})
	})

	fmt.Println("🚀 Mock backend is running on http://localhost:" + *port + "/api")
	if err := router.Run(":" + *port); err != nil {
		log.Fatalf("Mock backend failed: %v", err)
	}
}

func respond(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, gin.H{"message": message, "data": data})
}

func sampleProducts() []models.Product {
	now := time.Now()
	price := func(v float64) *float64 { return &v }
	rating := func(v float64) *float64 { return &v }

	return []models.Product{
		{
			ID:           uuid.NewString(),
			Name:         "Heavyweight Oxford Shirt",
			Slug:         "heavyweight-oxford-shirt",
			CategoryName: "Shirts",
			CategorySlug: "shirts",
			Price:        68,
			ComparePrice: price(84),
			IsOnSale:     true,
			IsFeatured:   true,
			Variants: []models.ProductVariant{
				{Size: "S", Color: "White", Stock: 6},
				{Size: "M", Color: "White", Stock: 10},
				{Size: "L", Color: "Blue", Stock: 3},
				{Size: "XL", Color: "Blue", Stock: 0},
			},
			AverageRating: rating(4.6),
			ReviewCount:   38,
			CreatedAt:     now.Add(-48 * time.Hour),
		},
		{
			ID:           uuid.NewString(),
			Name:         "Relaxed Linen Trousers",
			Slug:         "relaxed-linen-trousers",
			CategoryName: "Trousers",
			CategorySlug: "trousers",
			Price:        92,
			Variants: []models.ProductVariant{
				{Size: "M", Color: "Sand", Stock: 8},
				{Size: "L", Color: "Olive", Stock: 2},
			},
			AverageRating: rating(4.1),
			ReviewCount:   12,
			CreatedAt:     now.Add(-24 * time.Hour),
		},
		{
			ID:           uuid.NewString(),
			Name:         "Merino Crewneck",
			Slug:         "merino-crewneck",
			CategoryName: "Knitwear",
			CategorySlug: "knitwear",
			Price:        120,
			Variants: []models.ProductVariant{
				{Size: "XS", Color: "Charcoal", Stock: 0},
				{Size: "S", Color: "Charcoal", Stock: 0, AllowBackorder: true},
			},
			CreatedAt: now,
		},
	}
}

func sampleCategories() []models.Category {
	return []models.Category{
		{ID: uuid.NewString(), Name: "Shirts", Slug: "shirts"},
		{ID: uuid.NewString(), Name: "Trousers", Slug: "trousers"},
		{ID: uuid.NewString(), Name: "Knitwear", Slug: "knitwear"},
	}
}

func sampleColors() []models.ProductColor {
	return []models.ProductColor{
		{Name: "White", HexCode: "#FFFFFF", HasStock: true},
		{Name: "Blue", HexCode: "#1E3A8A", HasStock: true},
		{Name: "Charcoal", HexCode: "#36454F", HasStock: false},
	}
}

func sampleVariantSet(color string) models.VariantSet {
	return models.VariantSet{
		Color: color,
		Variants: []models.ProductVariant{
			{Size: "S", Color: color, Stock: 4},
			{Size: "M", Color: color, Stock: 12},
			{Size: "L", Color: color, Stock: 0, AllowBackorder: true},
		},
		AvailableSizes: []string{"S", "M", "L"},
	}
}
