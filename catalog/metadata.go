package catalog

import (
	"sort"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
)

// sizeRank orders the common size labels; anything unknown sorts after
// them, alphabetically.
var sizeRank = map[string]int{
	"XS": 0, "S": 1, "M": 2, "L": 3, "XL": 4, "XXL": 5,
}

// BuildFilterMetadata derives the filter panel data from a product slice.
// Counts are per product, not per variant: a product with three blue
// variants contributes one to "Blue".
func BuildFilterMetadata(products []models.Product) models.FilterMetadata {
	categories := map[string]*models.FilterOption{}
	sizes := map[string]int{}
	colors := map[string]int{}

	inStock, outOfStock := 0, 0
	priceRange := models.PriceRange{}
	havePrice := false

	for i := range products {
		p := &products[i]

		if p.CategorySlug != "" {
			opt, ok := categories[p.CategorySlug]
			if !ok {
				opt = &models.FilterOption{Label: p.CategoryName, Value: p.CategorySlug}
				categories[p.CategorySlug] = opt
			}
			opt.Count++
		}

		seenSizes := map[string]bool{}
		seenColors := map[string]bool{}
		for _, v := range p.Variants {
			if v.Size != "" && !seenSizes[v.Size] {
				seenSizes[v.Size] = true
				sizes[v.Size]++
			}
			if v.Color != "" && !seenColors[v.Color] {
				seenColors[v.Color] = true
				colors[v.Color]++
			}
		}

		if p.InStock() {
			inStock++
		} else {
			outOfStock++
		}

		if p.Price > 0 {
			if !havePrice {
				priceRange.Min, priceRange.Max = p.Price, p.Price
				havePrice = true
			} else {
				if p.Price < priceRange.Min {
					priceRange.Min = p.Price
				}
				if p.Price > priceRange.Max {
					priceRange.Max = p.Price
				}
			}
		}
	}

	metadata := models.FilterMetadata{
		Categories: make([]models.FilterOption, 0, len(categories)),
		Sizes:      make([]models.FilterOption, 0, len(sizes)),
		Colors:     make([]models.FilterOption, 0, len(colors)),
		PriceRange: priceRange,
		Availability: []models.FilterOption{
			{Label: "In Stock", Value: "in_stock", Count: inStock},
			{Label: "Out of Stock", Value: "out_of_stock", Count: outOfStock},
		},
	}

	for _, opt := range categories {
		metadata.Categories = append(metadata.Categories, *opt)
	}
	sort.Slice(metadata.Categories, func(i, j int) bool {
		return metadata.Categories[i].Label < metadata.Categories[j].Label
	})

	for size, count := range sizes {
		metadata.Sizes = append(metadata.Sizes, models.FilterOption{Label: size, Value: size, Count: count})
	}
	sort.Slice(metadata.Sizes, func(i, j int) bool {
		ri, iKnown := sizeRank[metadata.Sizes[i].Value]
		rj, jKnown := sizeRank[metadata.Sizes[j].Value]
		switch {
		case iKnown && jKnown:
			return ri < rj
		case iKnown != jKnown:
			return iKnown
		default:
			return metadata.Sizes[i].Value < metadata.Sizes[j].Value
		}
	})

	for color, count := range colors {
		metadata.Colors = append(metadata.Colors, models.FilterOption{Label: color, Value: color, Count: count})
	}
	sort.Slice(metadata.Colors, func(i, j int) bool {
		return metadata.Colors[i].Label < metadata.Colors[j].Label
	})

	return metadata
}
