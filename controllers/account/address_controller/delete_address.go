package address_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/middleware"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
)

// DeleteAddress godoc
// @Summary Delete a saved address
// @Tags Account - Addresses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Address ID"
// @Success 200 {object} models.ApiResponse "Address deleted"
// @Failure 404 {object} models.ApiResponse "Address not found"
// @Router /user/addresses/{id} [delete]
func DeleteAddress(c *gin.Context) {
	id := c.Param("id")
	token := middleware.GetAuthTokenFromContext(c)

	if err := client.DeleteAddress(c.Request.Context(), token, id); err != nil {
		respondUpstreamError(c, err, "Failed to delete address")
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Address deleted", gin.H{"id": id}))
}
