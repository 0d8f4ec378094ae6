package category_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalog_cache "github.com/Velora-Ecommerce/velora-storefront-gateway/cache"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/config"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/services"
)

var client *services.StorefrontClient

// Init wires the upstream client into this controller.
func Init(c *services.StorefrontClient) {
	client = c
}

// GetCategories godoc
// @Summary Get the category tree
// @Tags Storefront - Categories
// @Produce json
// @Success 200 {object} models.ApiResponse "Categories fetched successfully"
// @Failure 502 {object} models.ApiResponse "Upstream failure"
// @Router /store/categories [get]
func GetCategories(c *gin.Context) {
	if cached, ok := catalog_cache.GetCategories(); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", cached))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	categories, err := client.GetCategories(ctx)
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch categories"))
		return
	}
	catalog_cache.SetCategories(categories)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", categories))
}
