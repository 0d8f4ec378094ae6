package product_controller

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	catalog_cache "github.com/Velora-Ecommerce/velora-storefront-gateway/cache"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
)

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "12"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}

	return page, limit
}

// isNeutral folds the legacy query sentinels meaning "filter not applied"
// into the engine's single neutral value.
func isNeutral(v string) bool {
	return v == "" || v == "all" || v == "any"
}

func filterValue(v string) string {
	if isNeutral(v) {
		return ""
	}
	return v
}

// parseFilterState translates listing query params into the engine's
// FilterState. Sentinel translation happens here and only here.
func parseFilterState(c *gin.Context) models.FilterState {
	state := models.NeutralFilterState()

	state.Search = c.Query("q")
	state.Category = filterValue(c.Query("category"))
	state.Size = filterValue(c.Query("size"))
	state.Color = filterValue(c.Query("color"))

	if v := c.Query("minPrice"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			state.MinPrice = &f
		}
	}
	if v := c.Query("maxPrice"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			state.MaxPrice = &f
		}
	}
	if v := c.Query("minRating"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			state.MinRating = &f
		}
	}

	state.InStock = c.Query("inStock") == "true" || c.Query("availability") == "in_stock"
	state.OnSale = c.Query("onSale") == "true"
	state.Featured = c.Query("featured") == "true"

	switch key := models.SortKey(c.DefaultQuery("sortBy", string(models.SortNewest))); key {
	case models.SortPriceLow, models.SortPriceHigh, models.SortRating, models.SortName, models.SortNewest:
		state.Sort = key
	default:
		state.Sort = models.SortNewest
	}

	return state
}

// loadProducts serves the active product list from cache, falling back to
// the backend.
func loadProducts(ctx context.Context) ([]models.Product, error) {
	if cached, ok := catalog_cache.GetProducts(); ok {
		return cached, nil
	}
	products, err := client.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	catalog_cache.SetProducts(products)
	return products, nil
}
