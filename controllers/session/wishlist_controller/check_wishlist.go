package wishlist_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
)

// CheckWishlist godoc
// @Summary Check whether a product is wishlisted
// @Tags Session - Wishlist
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} models.ApiResponse "Wishlist status"
// @Router /session/wishlist/items/{productId} [get]
func CheckWishlist(c *gin.Context) {
	state, ok := loadState(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Wishlist status", gin.H{
		"productId":  c.Param("productId"),
		"inWishlist": state.IsInWishlist(c.Param("productId")),
	}))
}
