package activity_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
)

// GetRecentlyViewed godoc
// @Summary Get recently viewed products
// @Tags Session - Activity
// @Produce json
// @Success 200 {object} models.ApiResponse "Recently viewed fetched successfully"
// @Router /session/recently-viewed [get]
func GetRecentlyViewed(c *gin.Context) {
	state, ok := loadState(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Recently viewed fetched successfully", state.RecentlyViewed))
}

// RecordProductView godoc
// @Summary Record a product view
// @Description Puts the product at the front of the recently-viewed list (capped, deduplicated) and logs a view interaction.
// @Tags Session - Activity
// @Accept json
// @Produce json
// @Param view body models.RecordViewRequest true "Viewed product"
// @Success 201 {object} models.ApiResponse "View recorded"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Router /session/recently-viewed [post]
func RecordProductView(c *gin.Context) {
	var req models.RecordViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	state, ok := loadState(c)
	if !ok {
		return
	}

	state.RecordView(models.RecentlyViewedProduct{
		ProductID: req.ProductID,
		Name:      req.Name,
		Slug:      req.Slug,
		Image:     req.Image,
		Price:     req.Price,
	})
	state.RecordInteraction(models.UserInteraction{
		Type:     models.InteractionView,
		TargetID: req.ProductID,
	})

	if !saveState(c, state) {
		return
	}
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "View recorded", state.RecentlyViewed))
}
