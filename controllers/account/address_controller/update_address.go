package address_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/middleware"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
)

// UpdateAddress godoc
// @Summary Update a saved address
// @Tags Account - Addresses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Address ID"
// @Param address body models.UpdateAddressRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse "Address updated"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 404 {object} models.ApiResponse "Address not found"
// @Router /user/addresses/{id} [put]
func UpdateAddress(c *gin.Context) {
	id := c.Param("id")

	var req models.UpdateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	token := middleware.GetAuthTokenFromContext(c)

	address, err := client.UpdateAddress(c.Request.Context(), token, id, req)
	if err != nil {
		respondUpstreamError(c, err, "Failed to update address")
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Address updated", address))
}
