package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
)

// sortProducts orders products in place by the given key. The sort is
// stable so products the comparator treats as equal keep their fetched
// order (the backend returns newest-first).
func sortProducts(products []models.Product, key models.SortKey) {
	switch key {
	case models.SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case models.SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case models.SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return ratingOrZero(&products[i]) > ratingOrZero(&products[j])
		})
	case models.SortName:
		col := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(products, func(i, j int) bool {
			return col.CompareString(products[i].Name, products[j].Name) < 0
		})
	case models.SortNewest, "":
		sort.SliceStable(products, func(i, j int) bool {
			// A missing date on either side compares as equal.
			if products[i].CreatedAt.IsZero() || products[j].CreatedAt.IsZero() {
				return false
			}
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	}
}

func ratingOrZero(p *models.Product) float64 {
	if p.AverageRating == nil {
		return 0
	}
	return *p.AverageRating
}
