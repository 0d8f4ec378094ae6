package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
)

// AddCartItem godoc
// @Summary Add an item to the cart
// @Description Adds a product line. Adding the same product+size+colour again merges quantities.
// @Tags Session - Cart
// @Accept json
// @Produce json
// @Param item body models.AddCartItemRequest true "Cart line"
// @Success 201 {object} models.ApiResponse "Item added to cart"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Router /session/cart/items [post]
func AddCartItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	state, ok := loadState(c)
	if !ok {
		return
	}

	state.AddCartItem(models.CartItem{
		ProductID: req.ProductID,
		Name:      req.Name,
		Slug:      req.Slug,
		Image:     req.Image,
		Price:     req.Price,
		Size:      req.Size,
		Color:     req.Color,
		Quantity:  req.Quantity,
	})
	state.RecordInteraction(models.UserInteraction{
		Type:     models.InteractionCart,
		TargetID: req.ProductID,
	})

	if !saveState(c, state) {
		return
	}
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Item added to cart", cartView(state)))
}
