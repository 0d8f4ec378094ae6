package engagement_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/services"
)

// respondUpstreamError maps upstream failures to storefront responses. A
// 401 from the backend means the shopper's session expired: the auth
// cookie is cleared and the storefront redirects to login.
func respondUpstreamError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrSessionExpired):
		c.SetCookie("auth_token", "", -1, "/", "", false, true)
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Session expired, please log in again"))
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Not found"))
	default:
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, fallback))
	}
}
