package engagement_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/config"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/middleware"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
)

// GetQuestions godoc
// @Summary Get Q&A entries for a product
// @Tags Storefront - Questions
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse "Questions fetched successfully"
// @Failure 502 {object} models.ApiResponse "Upstream failure"
// @Router /store/products/{id}/questions [get]
func GetQuestions(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	questions, err := client.GetQuestions(ctx, c.Param("id"))
	if err != nil {
		respondUpstreamError(c, err, "Failed to fetch questions")
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Questions fetched successfully", questions))
}

// AskQuestion godoc
// @Summary Ask a question about a product
// @Tags Storefront - Questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param question body models.AskQuestionRequest true "Question"
// @Success 201 {object} models.ApiResponse "Question submitted"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 502 {object} models.ApiResponse "Upstream failure"
// @Router /store/products/{id}/questions [post]
func AskQuestion(c *gin.Context) {
	var req models.AskQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	token := middleware.GetAuthTokenFromContext(c)
	question, err := client.AskQuestion(ctx, token, c.Param("id"), req)
	if err != nil {
		respondUpstreamError(c, err, "Failed to submit question")
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Question submitted", question))
}
