package sizing_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/sizing"
)

// RecommendSize godoc
// @Summary Recommend a garment size
// @Description Deterministic size lookup from body measurements. All measurements are imperial and must be positive.
// @Tags Storefront - Sizing
// @Accept json
// @Produce json
// @Param measurements body models.SizeRecommendationRequest true "Body measurements"
// @Success 200 {object} models.ApiResponse "Size recommendation computed"
// @Failure 400 {object} models.ApiResponse "Invalid measurements"
// @Router /store/sizing/recommendation [post]
func RecommendSize(c *gin.Context) {
	var req models.SizeRecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	rec, ok := sizing.Recommend(req)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "All measurements must be positive"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Size recommendation computed", rec))
}
