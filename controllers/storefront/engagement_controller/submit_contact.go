package engagement_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/config"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
)

// SubmitContact godoc
// @Summary Submit a contact form message
// @Tags Storefront - Contact
// @Accept json
// @Produce json
// @Param message body models.ContactRequest true "Contact message"
// @Success 201 {object} models.ApiResponse "Message submitted"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 502 {object} models.ApiResponse "Upstream failure"
// @Router /store/contact [post]
func SubmitContact(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := client.SubmitContact(ctx, req); err != nil {
		respondUpstreamError(c, err, "Failed to submit message")
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Message submitted", nil))
}
