package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/config"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
)

// GetProductColors godoc
// @Summary Get available colours for a product
// @Tags Storefront - Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse "Colours fetched successfully"
// @Failure 502 {object} models.ApiResponse "Upstream failure"
// @Router /store/products/{id}/colors [get]
func GetProductColors(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	colors, err := client.GetProductColors(ctx, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch colors"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Colors fetched successfully", colors))
}
