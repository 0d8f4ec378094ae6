package engagement_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/config"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/middleware"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
)

// CreateReview godoc
// @Summary Post a review for a product
// @Tags Storefront - Reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param review body models.CreateReviewRequest true "Review"
// @Success 201 {object} models.ApiResponse "Review created successfully"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 502 {object} models.ApiResponse "Upstream failure"
// @Router /store/products/{id}/reviews [post]
func CreateReview(c *gin.Context) {
	var req models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	token := middleware.GetAuthTokenFromContext(c)
	review, err := client.CreateReview(ctx, token, c.Param("id"), req)
	if err != nil {
		respondUpstreamError(c, err, "Failed to create review")
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Review created successfully", review))
}
