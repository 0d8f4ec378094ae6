package address_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/middleware"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
)

// GetAddresses godoc
// @Summary List the shopper's saved addresses
// @Tags Account - Addresses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse "Addresses retrieved"
// @Failure 401 {object} models.ApiResponse "Session expired"
// @Router /user/addresses [get]
func GetAddresses(c *gin.Context) {
	token := middleware.GetAuthTokenFromContext(c)

	addresses, err := client.GetAddresses(c.Request.Context(), token)
	if err != nil {
		respondUpstreamError(c, err, "Failed to fetch addresses")
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Addresses retrieved", addresses))
}
