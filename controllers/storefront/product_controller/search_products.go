package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/config"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
)

// SearchProducts godoc
// @Summary Search products
// @Description Backend text search. Identical concurrent queries share one upstream call.
// @Tags Storefront - Products
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {object} models.ApiResponse "Search completed successfully"
// @Failure 502 {object} models.ApiResponse "Upstream failure"
// @Router /store/search [get]
func SearchProducts(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	products, err := searchService.Search(ctx, c.Query("q"))
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Search failed"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Search completed successfully", products))
}
