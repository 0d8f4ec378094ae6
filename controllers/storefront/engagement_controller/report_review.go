package engagement_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/config"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/middleware"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
)

// ReportReview godoc
// @Summary Report a review
// @Tags Storefront - Reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param report body models.ReportReviewRequest true "Report reason"
// @Success 200 {object} models.ApiResponse "Review reported"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 502 {object} models.ApiResponse "Upstream failure"
// @Router /store/reviews/{id}/report [post]
func ReportReview(c *gin.Context) {
	var req models.ReportReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	token := middleware.GetAuthTokenFromContext(c)
	if err := client.ReportReview(ctx, token, c.Param("id"), req); err != nil {
		respondUpstreamError(c, err, "Failed to report review")
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Review reported", nil))
}
