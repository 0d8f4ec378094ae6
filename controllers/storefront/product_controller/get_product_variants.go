package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/config"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
)

// GetProductVariants godoc
// @Summary Get variants for a product colour
// @Description Returns the size+colour SKUs and the backend's available-size summary for one colour.
// @Tags Storefront - Products
// @Produce json
// @Param id path string true "Product ID"
// @Param color path string true "Colour name"
// @Success 200 {object} models.ApiResponse "Variants fetched successfully"
// @Failure 502 {object} models.ApiResponse "Upstream failure"
// @Router /store/products/{id}/variants/{color} [get]
func GetProductVariants(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	set, err := client.GetProductVariants(ctx, c.Param("id"), c.Param("color"))
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch variants"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Variants fetched successfully", set))
}
