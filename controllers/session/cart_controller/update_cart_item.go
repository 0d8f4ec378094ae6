package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
)

// UpdateCartItem godoc
// @Summary Update a cart line's quantity
// @Description Quantity zero removes the line.
// @Tags Session - Cart
// @Accept json
// @Produce json
// @Param productId path string true "Product ID"
// @Param size query string true "Size"
// @Param color query string true "Colour"
// @Param quantity body models.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} models.ApiResponse "Cart updated"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 404 {object} models.ApiResponse "Cart line not found"
// @Router /session/cart/items/{productId} [put]
func UpdateCartItem(c *gin.Context) {
	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	state, ok := loadState(c)
	if !ok {
		return
	}

	if !state.SetCartQuantity(c.Param("productId"), c.Query("size"), c.Query("color"), req.Quantity) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Cart line not found"))
		return
	}

	if !saveState(c, state) {
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart updated", cartView(state)))
}
