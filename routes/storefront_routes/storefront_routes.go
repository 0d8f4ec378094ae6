package storefront_routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/controllers/storefront/category_controller"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/controllers/storefront/engagement_controller"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/controllers/storefront/product_controller"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/controllers/storefront/sizing_controller"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/middleware"
)

func SetupStorefrontRoutes(router *gin.RouterGroup) {
	// Storefront routes (public, no auth required)
	store := router.Group("/store")

	// Product routes
	products := store.Group("/products")
	{
		products.GET("", product_controller.GetProducts) // List with filters
		products.GET("/filters", product_controller.GetFilterMetadata)
		products.GET("/featured", product_controller.GetFeaturedProducts)
		products.GET("/flash-sales/active", product_controller.GetActiveFlashSales)
		products.GET("/slug/:slug", product_controller.GetProductBySlug)
		products.GET("/:id", product_controller.GetProductByID)
		products.GET("/:id/related", product_controller.GetRelatedProducts)
		products.GET("/:id/colors", product_controller.GetProductColors)
		products.GET("/:id/variants/:color", product_controller.GetProductVariants)
		products.GET("/:id/images/:color", product_controller.GetProductImages)
		products.GET("/:id/selection", product_controller.GetSelection)

		// Reviews and Q&A live under the product; posting needs a login
		products.GET("/:id/reviews", engagement_controller.GetReviews)
		products.POST("/:id/reviews", middleware.AuthMiddleware(), engagement_controller.CreateReview)
		products.GET("/:id/questions", engagement_controller.GetQuestions)
		products.POST("/:id/questions", middleware.AuthMiddleware(), engagement_controller.AskQuestion)
	}

	reviews := store.Group("/reviews")
	reviews.Use(middleware.AuthMiddleware())
	{
		reviews.POST("/:id/replies", engagement_controller.ReplyToReview)
		reviews.POST("/:id/report", engagement_controller.ReportReview)
	}

	// Category routes
	categories := store.Group("/categories")
	{
		categories.GET("", category_controller.GetCategories) // List all
		categories.GET("/:slug", category_controller.GetCategoryBySlug)
	}

	store.GET("/search", product_controller.SearchProducts)

	store.POST("/sizing/recommendation", sizing_controller.RecommendSize)

	store.GET("/currency", engagement_controller.GetCurrencyConfig)
	store.GET("/currency/convert", engagement_controller.ConvertPrice)

	store.POST("/contact", middleware.RateLimiter(5, 10*time.Minute), engagement_controller.SubmitContact)
}
