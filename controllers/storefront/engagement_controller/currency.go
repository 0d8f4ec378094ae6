package engagement_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/config"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
)

// GetCurrencyConfig godoc
// @Summary Get the storefront currency configuration
// @Tags Storefront - Currency
// @Produce json
// @Success 200 {object} models.ApiResponse "Currency config fetched successfully"
// @Failure 502 {object} models.ApiResponse "Upstream failure"
// @Router /store/currency [get]
func GetCurrencyConfig(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	cfg, err := currencyService.Config(ctx)
	if err != nil {
		respondUpstreamError(c, err, "Failed to fetch currency config")
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Currency config fetched successfully", cfg))
}

// ConvertPrice godoc
// @Summary Convert a base-currency amount for display
// @Tags Storefront - Currency
// @Produce json
// @Param amount query number true "Amount in the base currency"
// @Param to query string true "Display currency code"
// @Success 200 {object} models.ApiResponse "Price converted"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 502 {object} models.ApiResponse "Upstream failure"
// @Router /store/currency/convert [get]
func ConvertPrice(c *gin.Context) {
	amount, err := strconv.ParseFloat(c.Query("amount"), 64)
	if err != nil || amount < 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid amount"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	price, err := currencyService.Convert(ctx, amount, c.Query("to"))
	if err != nil {
		respondUpstreamError(c, err, "Failed to convert price")
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Price converted", price))
}
