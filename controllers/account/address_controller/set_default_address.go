package address_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/middleware"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
)

// SetDefaultAddress godoc
// @Summary Mark an address as the default
// @Tags Account - Addresses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Address ID"
// @Success 200 {object} models.ApiResponse "Default address updated"
// @Failure 404 {object} models.ApiResponse "Address not found"
// @Router /user/addresses/{id}/default [put]
func SetDefaultAddress(c *gin.Context) {
	id := c.Param("id")
	token := middleware.GetAuthTokenFromContext(c)

	if err := client.SetDefaultAddress(c.Request.Context(), token, id); err != nil {
		respondUpstreamError(c, err, "Failed to set default address")
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Default address updated", gin.H{"id": id}))
}
