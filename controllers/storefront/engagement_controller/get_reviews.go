package engagement_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/config"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
)

// GetReviews godoc
// @Summary Get reviews for a product
// @Tags Storefront - Reviews
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse "Reviews fetched successfully"
// @Failure 502 {object} models.ApiResponse "Upstream failure"
// @Router /store/products/{id}/reviews [get]
func GetReviews(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	reviews, err := client.GetReviews(ctx, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch reviews"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Reviews fetched successfully", reviews))
}
