package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
)

// GetCart godoc
// @Summary Get the session cart
// @Tags Session - Cart
// @Produce json
// @Success 200 {object} models.ApiResponse "Cart fetched successfully"
// @Router /session/cart [get]
func GetCart(c *gin.Context) {
	state, ok := loadState(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart fetched successfully", cartView(state)))
}
