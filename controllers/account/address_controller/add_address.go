package address_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/middleware"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
)

// AddAddress godoc
// @Summary Save a new address
// @Tags Account - Addresses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param address body models.AddAddressRequest true "Address"
// @Success 201 {object} models.ApiResponse "Address saved"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 401 {object} models.ApiResponse "Session expired"
// @Router /user/addresses [post]
func AddAddress(c *gin.Context) {
	var req models.AddAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	token := middleware.GetAuthTokenFromContext(c)

	address, err := client.AddAddress(c.Request.Context(), token, req)
	if err != nil {
		respondUpstreamError(c, err, "Failed to save address")
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Address saved", address))
}
