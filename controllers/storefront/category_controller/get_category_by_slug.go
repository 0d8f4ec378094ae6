package category_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/config"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/services"
)

// GetCategoryBySlug godoc
// @Summary Get a single category
// @Tags Storefront - Categories
// @Produce json
// @Param slug path string true "Category slug"
// @Success 200 {object} models.ApiResponse "Category fetched successfully"
// @Failure 404 {object} models.ApiResponse "Category not found"
// @Failure 502 {object} models.ApiResponse "Upstream failure"
// @Router /store/categories/{slug} [get]
func GetCategoryBySlug(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	category, err := client.GetCategoryBySlug(ctx, c.Param("slug"))
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Category not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch category"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category fetched successfully", category))
}
