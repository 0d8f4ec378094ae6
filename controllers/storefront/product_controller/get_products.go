package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/catalog"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/config"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
)

// GetProducts godoc
// @Summary List storefront products
// @Description Retrieve products with optional search, category, size, colour, price range, stock/sale/featured and rating filters, plus sorting.
// @Tags Storefront - Products
// @Produce json
// @Param q query string false "Search query (product name substring)"
// @Param category query string false "Category name"
// @Param size query string false "Size"
// @Param color query string false "Colour"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param minRating query number false "Minimum average rating"
// @Param inStock query bool false "Only products with stock"
// @Param onSale query bool false "Only products on sale"
// @Param featured query bool false "Only featured products"
// @Param sortBy query string false "Sort key (newest | price-low | price-high | rating | name)" default(newest)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.ApiResponse "Products fetched successfully"
// @Failure 502 {object} models.ApiResponse "Upstream failure"
// @Router /store/products [get]
func GetProducts(c *gin.Context) {
	page, limit := parsePagination(c)
	state := parseFilterState(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	products, err := loadProducts(ctx)
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	filtered := catalog.Apply(products, state)
	pageItems := catalog.Page(filtered, page, limit)

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Products fetched successfully",
		gin.H{
			"products":      pageItems,
			"activeFilters": catalog.ActiveCount(state),
		},
		models.NewPagination(page, limit, len(filtered)),
	))
}
