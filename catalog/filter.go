// Package catalog holds the in-memory product filter/sort engine used by
// the storefront listing endpoints. Filtering is a conjunction of
// independent predicates over an already-fetched product slice; a neutral
// filter value (see models.FilterState) never excludes a product.
package catalog

import (
	"strings"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
)

// Apply filters products by every set field of state, then orders the
// result by state.Sort. The input slice is never mutated.
func Apply(products []models.Product, state models.FilterState) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if matches(&p, &state) {
			out = append(out, p)
		}
	}
	sortProducts(out, state.Sort)
	return out
}

func matches(p *models.Product, f *models.FilterState) bool {
	if f.Search != "" &&
		!strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Search)) {
		return false
	}
	if f.Category != "" && !strings.EqualFold(p.CategoryName, f.Category) {
		return false
	}
	if f.Size != "" && !p.HasSize(f.Size) {
		return false
	}
	if f.Color != "" && !p.HasColor(f.Color) {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.InStock && !p.InStock() {
		return false
	}
	if f.OnSale && !p.IsOnSale {
		return false
	}
	if f.Featured && !p.IsFeatured {
		return false
	}
	// A missing rating passes; only a known rating below the floor excludes.
	if f.MinRating != nil && p.AverageRating != nil && *p.AverageRating < *f.MinRating {
		return false
	}
	return true
}

// ActiveCount reports how many filter fields differ from their neutral
// defaults. The storefront shows this next to the filter panel.
func ActiveCount(state models.FilterState) int {
	count := 0
	if state.Search != "" {
		count++
	}
	if state.Category != "" {
		count++
	}
	if state.Size != "" {
		count++
	}
	if state.Color != "" {
		count++
	}
	if state.MinPrice != nil {
		count++
	}
	if state.MaxPrice != nil {
		count++
	}
	if state.InStock {
		count++
	}
	if state.OnSale {
		count++
	}
	if state.Featured {
		count++
	}
	if state.MinRating != nil {
		count++
	}
	if state.Sort != "" && state.Sort != models.SortNewest {
		count++
	}
	return count
}

// Page slices a filtered result for a 1-based page. Out-of-range pages
// return an empty slice, never an error.
func Page(products []models.Product, page, limit int) []models.Product {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * limit
	if start >= len(products) {
		return []models.Product{}
	}
	end := start + limit
	if end > len(products) {
		end = len(products)
	}
	return products[start:end]
}
