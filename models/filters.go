package models

// ═══════════════════════════════════════════════════════════
// Filter State
// ═══════════════════════════════════════════════════════════
//
// FilterState is the transient per-request filter/sort selection. Each
// field's neutral value means "this filter is not applied"; the neutral
// values are defined here, once, and nowhere else:
//
//	Search, Category, Size, Color  ""        (legacy "all"/"any" query
//	                                          sentinels are translated to
//	                                          "" at the HTTP boundary)
//	MinPrice, MaxPrice, MinRating  nil
//	InStock, OnSale, Featured      false
//	Sort                           SortNewest

type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
	SortName      SortKey = "name"
)

type FilterState struct {
	Search    string   `json:"search"`
	Category  string   `json:"category"`
	Size      string   `json:"size"`
	Color     string   `json:"color"`
	MinPrice  *float64 `json:"minPrice,omitempty"`
	MaxPrice  *float64 `json:"maxPrice,omitempty"`
	InStock   bool     `json:"inStock"`
	OnSale    bool     `json:"onSale"`
	Featured  bool     `json:"featured"`
	MinRating *float64 `json:"minRating,omitempty"`
	Sort      SortKey  `json:"sort"`
}

// NeutralFilterState returns a state where every filter is unset.
func NeutralFilterState() FilterState {
	return FilterState{Sort: SortNewest}
}

// FilterMetadata is the aggregate filter panel data for the storefront.
type FilterMetadata struct {
	Categories   []FilterOption `json:"categories"`
	Sizes        []FilterOption `json:"sizes"`
	Colors       []FilterOption `json:"colors"`
	PriceRange   PriceRange     `json:"priceRange"`
	Availability []FilterOption `json:"availability"`
}

// FilterOption is a single selectable filter value with its product count.
type FilterOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Count int    `json:"count"`
}

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
