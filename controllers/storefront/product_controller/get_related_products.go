package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/config"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
)

// GetRelatedProducts godoc
// @Summary Get products related to one product
// @Tags Storefront - Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse "Related products fetched successfully"
// @Failure 502 {object} models.ApiResponse "Upstream failure"
// @Router /store/products/{id}/related [get]
func GetRelatedProducts(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	products, err := client.GetRelatedProducts(ctx, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch related products"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Related products fetched successfully", products))
}
