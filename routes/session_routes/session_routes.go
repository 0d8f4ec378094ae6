package session_routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/controllers/session/activity_controller"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/controllers/session/cart_controller"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/controllers/session/wishlist_controller"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/middleware"
)

// SetupSessionRoutes wires the per-shopper state surface. Everything here
// works anonymously off the session cookie; OptionalAuth only matters to
// the wishlist, which mirrors changes to the shopper's account when a
// token is present.
func SetupSessionRoutes(router *gin.RouterGroup) {
	sess := router.Group("/session")
	sess.Use(middleware.SessionMiddleware())
	sess.Use(middleware.RateLimiter(120, time.Minute))

	cart := sess.Group("/cart")
	{
		cart.GET("", cart_controller.GetCart)
		cart.DELETE("", cart_controller.ClearCart)
		cart.POST("/items", cart_controller.AddCartItem)
		cart.PUT("/items/:productId", cart_controller.UpdateCartItem)
		cart.DELETE("/items/:productId", cart_controller.RemoveCartItem)
	}

	wishlist := sess.Group("/wishlist")
	wishlist.Use(middleware.OptionalAuth())
	{
		wishlist.GET("", wishlist_controller.GetWishlist)
		wishlist.POST("/items", wishlist_controller.AddWishlistItem)
		wishlist.GET("/items/:productId", wishlist_controller.CheckWishlist)
		wishlist.DELETE("/items/:productId", wishlist_controller.RemoveWishlistItem)
	}

	sess.GET("/recently-viewed", activity_controller.GetRecentlyViewed)
	sess.POST("/recently-viewed", activity_controller.RecordProductView)
	sess.POST("/interactions", activity_controller.RecordInteraction)
	sess.GET("/popular", activity_controller.GetPopular)
}
