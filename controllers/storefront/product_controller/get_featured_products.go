package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/config"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
)

// GetFeaturedProducts godoc
// @Summary Get featured products
// @Tags Storefront - Products
// @Produce json
// @Success 200 {object} models.ApiResponse "Featured products fetched successfully"
// @Failure 502 {object} models.ApiResponse "Upstream failure"
// @Router /store/products/featured [get]
func GetFeaturedProducts(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	products, err := client.GetFeaturedProducts(ctx)
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch featured products"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Featured products fetched successfully", products))
}
