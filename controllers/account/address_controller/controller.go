package address_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/services"
)

var client *services.StorefrontClient

func Init(c *services.StorefrontClient) {
	client = c
}

// Address operations always run behind AuthMiddleware, so the token in
// context is present and already validated.
func respondUpstreamError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrSessionExpired):
		c.SetCookie("auth_token", "", -1, "/", "", false, true)
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Session expired, please log in again"))
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Address not found"))
	default:
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, fallback))
	}
}
