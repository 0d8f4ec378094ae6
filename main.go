// @title Velora Storefront Gateway API
// @version 1.0
// @description Customer-facing storefront gateway for the Velora commerce backend
// @host localhost:8082
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/config"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/controllers/account/address_controller"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/controllers/session/activity_controller"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/controllers/session/cart_controller"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/controllers/session/wishlist_controller"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/controllers/storefront/category_controller"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/controllers/storefront/engagement_controller"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/controllers/storefront/product_controller"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/routes/account_routes"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/routes/session_routes"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/routes/storefront_routes"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/services"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/session"
)

func init() {
	_ = godotenv.Load()
}

// buildPersister picks the session store from SESSION_STORE: "redis" keeps
// shopper state in Redis with a 30-day TTL, "memory" is for tests and
// one-off runs, anything else lands on the embedded SQLite store. The Redis
// connection is already up; the rate limiter needs it regardless.
func buildPersister() session.Persister {
	switch os.Getenv("SESSION_STORE") {
	case "redis":
		return session.NewRedisPersister(config.RedisClient, session.DefaultSessionTTL)
	case "memory":
		log.Println("⚠️  Using in-memory session store, shopper state will not survive restarts")
		return session.NewMemoryPersister()
	default:
		config.InitSessionDB()
		persister, err := session.NewGormPersister(config.SessionGorm)
		if err != nil {
			log.Fatalf("Failed to initialize session store: %v", err)
		}
		return persister
	}
}

func main() {
	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}

	// Redis backs the rate limiter even when sessions live in SQLite
	config.ConnectRedis()

	manager := session.NewManager(buildPersister())
	defer config.CloseSessionDB()
	log.Println("✅ Session store initialized")

	client := services.NewStorefrontClient(config.BackendAPIURL())
	searchService := services.NewSearchService(client)
	currencyService := services.NewCurrencyService(client)
	log.Println("✅ Backend client initialized:", config.BackendAPIURL())

	product_controller.Init(client, searchService)
	category_controller.Init(client)
	engagement_controller.Init(client, currencyService)
	address_controller.Init(client)
	cart_controller.Init(manager)
	wishlist_controller.Init(manager, client)
	activity_controller.Init(manager)

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")

	storefront_routes.SetupStorefrontRoutes(api)
	log.Println("✅ Storefront routes registered")

	session_routes.SetupSessionRoutes(api)
	log.Println("✅ Session routes registered")

	account_routes.SetupAccountRoutes(api)
	log.Println("✅ Account routes registered")

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := config.Port()
	fmt.Println("🚀 Server is running on http://localhost:" + port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
