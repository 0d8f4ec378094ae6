package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
)

// ClearCart godoc
// @Summary Empty the cart
// @Tags Session - Cart
// @Produce json
// @Success 200 {object} models.ApiResponse "Cart cleared"
// @Router /session/cart [delete]
func ClearCart(c *gin.Context) {
	state, ok := loadState(c)
	if !ok {
		return
	}

	state.ClearCart()

	if !saveState(c, state) {
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart cleared", cartView(state)))
}
