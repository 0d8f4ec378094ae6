package engagement_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/config"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/middleware"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
)

// ReplyToReview godoc
// @Summary Reply to a review
// @Tags Storefront - Reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param reply body models.ReplyToReviewRequest true "Reply"
// @Success 201 {object} models.ApiResponse "Reply created successfully"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 502 {object} models.ApiResponse "Upstream failure"
// @Router /store/reviews/{id}/replies [post]
func ReplyToReview(c *gin.Context) {
	var req models.ReplyToReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	token := middleware.GetAuthTokenFromContext(c)
	reply, err := client.ReplyToReview(ctx, token, c.Param("id"), req)
	if err != nil {
		respondUpstreamError(c, err, "Failed to post reply")
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Reply created successfully", reply))
}
