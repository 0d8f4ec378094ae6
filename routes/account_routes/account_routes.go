package account_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/controllers/account/address_controller"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/middleware"
)

// SetupAccountRoutes sets up the authenticated account routes
func SetupAccountRoutes(router *gin.RouterGroup) {
	user := router.Group("/user")
	user.Use(middleware.AuthMiddleware()) // All routes require auth
	{
		// Addresses
		user.GET("/addresses", address_controller.GetAddresses)
		user.POST("/addresses", address_controller.AddAddress)
		user.PUT("/addresses/:id", address_controller.UpdateAddress)
		user.DELETE("/addresses/:id", address_controller.DeleteAddress)
		user.PUT("/addresses/:id/default", address_controller.SetDefaultAddress)
	}
}
