package product_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/config"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/services"
)

// GetProductBySlug godoc
// @Summary Get a single product by slug
// @Tags Storefront - Products
// @Produce json
// @Param slug path string true "Product slug"
// @Success 200 {object} models.ApiResponse "Product fetched successfully"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 502 {object} models.ApiResponse "Upstream failure"
// @Router /store/products/slug/{slug} [get]
func GetProductBySlug(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	product, err := client.GetProductBySlug(ctx, c.Param("slug"))
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch product"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", product))
}
