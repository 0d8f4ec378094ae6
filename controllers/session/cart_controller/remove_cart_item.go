package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
)

// RemoveCartItem godoc
// @Summary Remove a cart line
// @Tags Session - Cart
// @Produce json
// @Param productId path string true "Product ID"
// @Param size query string true "Size"
// @Param color query string true "Colour"
// @Success 200 {object} models.ApiResponse "Item removed from cart"
// @Failure 404 {object} models.ApiResponse "Cart line not found"
// @Router /session/cart/items/{productId} [delete]
func RemoveCartItem(c *gin.Context) {
	state, ok := loadState(c)
	if !ok {
		return
	}

	if !state.RemoveCartItem(c.Param("productId"), c.Query("size"), c.Query("color")) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Cart line not found"))
		return
	}

	if !saveState(c, state) {
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item removed from cart", cartView(state)))
}
