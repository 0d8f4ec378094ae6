package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/config"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
)

// GetProductImages godoc
// @Summary Get gallery images for a product colour
// @Tags Storefront - Products
// @Produce json
// @Param id path string true "Product ID"
// @Param color path string true "Colour name"
// @Success 200 {object} models.ApiResponse "Images fetched successfully"
// @Failure 502 {object} models.ApiResponse "Upstream failure"
// @Router /store/products/{id}/images/{color} [get]
func GetProductImages(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	images, err := client.GetProductImages(ctx, c.Param("id"), c.Param("color"))
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch images"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Images fetched successfully", images))
}
