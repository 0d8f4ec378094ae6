package wishlist_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
)

// GetWishlist godoc
// @Summary Get the session wishlist
// @Tags Session - Wishlist
// @Produce json
// @Success 200 {object} models.ApiResponse "Wishlist fetched successfully"
// @Router /session/wishlist [get]
func GetWishlist(c *gin.Context) {
	state, ok := loadState(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Wishlist fetched successfully", state.Wishlist))
}
