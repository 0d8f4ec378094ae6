package wishlist_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
)

// AddWishlistItem godoc
// @Summary Add a product to the wishlist
// @Description Idempotent: re-adding a wishlisted product is a no-op. Signed-in shoppers also get a best-effort server-side sync.
// @Tags Session - Wishlist
// @Accept json
// @Produce json
// @Param item body models.AddWishlistItemRequest true "Wishlist entry"
// @Success 201 {object} models.ApiResponse "Added to wishlist"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Router /session/wishlist/items [post]
func AddWishlistItem(c *gin.Context) {
	var req models.AddWishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	state, ok := loadState(c)
	if !ok {
		return
	}

	state.AddToWishlist(models.WishlistItem{
		ProductID: req.ProductID,
		Name:      req.Name,
		Slug:      req.Slug,
		Image:     req.Image,
		Price:     req.Price,
	})
	state.RecordInteraction(models.UserInteraction{
		Type:     models.InteractionWishlist,
		TargetID: req.ProductID,
	})

	if !saveState(c, state) {
		return
	}
	syncRemote(c, req.ProductID, true)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Added to wishlist", state.Wishlist))
}
