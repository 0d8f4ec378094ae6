package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/catalog"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
)

// GetFilterMetadata godoc
// @Summary Get all filter metadata
// @Description Returns availability counts, categories, sizes, colours and price range for the storefront filter panel
// @Tags Storefront - Products
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.FilterMetadata} "Filter metadata fetched"
// @Failure 502 {object} models.ApiResponse "Backend unavailable"
// @Router /store/products/filters [get]
func GetFilterMetadata(c *gin.Context) {
	products, err := loadProducts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch filter metadata"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched", catalog.BuildFilterMetadata(products)))
}
