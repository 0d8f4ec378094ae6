package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/config"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
)

// GetActiveFlashSales godoc
// @Summary Get the active flash sales
// @Tags Storefront - Products
// @Produce json
// @Success 200 {object} models.ApiResponse "Flash sales fetched successfully"
// @Failure 502 {object} models.ApiResponse "Upstream failure"
// @Router /store/products/flash-sales/active [get]
func GetActiveFlashSales(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	sales, err := client.GetActiveFlashSales(ctx)
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch flash sales"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Flash sales fetched successfully", sales))
}
