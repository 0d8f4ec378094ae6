package product_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/config"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/services"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/variant"
)

// GetSelection godoc
// @Summary Get a variant selection snapshot
// @Description Runs the colour/size selection flow for a product: default colour (first with stock), variants for that colour, auto-selected size from the backend's availability summary, and the derived price/stock state. Pass color and size to pin an explicit selection.
// @Tags Storefront - Products
// @Produce json
// @Param id path string true "Product ID"
// @Param color query string false "Colour to select"
// @Param size query string false "Size to select"
// @Success 200 {object} models.ApiResponse "Selection computed successfully"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 502 {object} models.ApiResponse "Upstream failure"
// @Router /store/products/{id}/selection [get]
func GetSelection(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	product, err := client.GetProduct(ctx, c.Param("id"))
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch product"))
		return
	}

	engine := variant.NewEngine(client, *product)

	if color := c.Query("color"); color != "" {
		err = engine.SelectColor(ctx, color)
	} else {
		err = engine.Init(ctx)
	}
	// On a failed load the snapshot still carries the last good data and
	// the error string; the storefront renders both.
	if size := c.Query("size"); err == nil && size != "" {
		engine.SelectSize(size)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Selection computed successfully", engine.Snapshot()))
}
