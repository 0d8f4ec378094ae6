package wishlist_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
)

// RemoveWishlistItem godoc
// @Summary Remove a product from the wishlist
// @Tags Session - Wishlist
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} models.ApiResponse "Removed from wishlist"
// @Failure 404 {object} models.ApiResponse "Product not in wishlist"
// @Router /session/wishlist/items/{productId} [delete]
func RemoveWishlistItem(c *gin.Context) {
	state, ok := loadState(c)
	if !ok {
		return
	}

	productID := c.Param("productId")
	if !state.RemoveFromWishlist(productID) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not in wishlist"))
		return
	}

	if !saveState(c, state) {
		return
	}
	syncRemote(c, productID, false)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Removed from wishlist", state.Wishlist))
}
