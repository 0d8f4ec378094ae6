package models

import "time"

// ═══════════════════════════════════════════════════════════
// Storefront Catalog Models
// ═══════════════════════════════════════════════════════════
//
// These records mirror the platform backend's JSON shapes. The gateway
// holds read-only copies; the backend owns the data.

type ProductImage struct {
	URL   string `json:"url"`
	Color string `json:"color,omitempty"`
	Order *int   `json:"order,omitempty"`
}

// ProductColor is one entry of a product's colour list. HasStock is the
// backend's per-colour stock summary, used for default colour selection.
type ProductColor struct {
	Name     string `json:"name"`
	HexCode  string `json:"hexCode,omitempty"`
	HasStock bool   `json:"hasStock"`
}

// ProductVariant is a size+colour SKU. Price, when present, overrides the
// product base price for that SKU.
type ProductVariant struct {
	ID             string   `json:"id"`
	ProductID      string   `json:"productId"`
	Size           string   `json:"size"`
	Color          string   `json:"color"`
	Stock          int      `json:"stock"`
	Price          *float64 `json:"price,omitempty"`
	AllowBackorder bool     `json:"allowBackorder"`
	StockStatus    string   `json:"stockStatus,omitempty"`
}

// VariantSet is the backend response for one product+colour pair.
// AvailableSizes is the server-side availability summary; it is the source
// of truth for which sizes are offered, independent of raw variant stock.
type VariantSet struct {
	Color          string           `json:"color"`
	Variants       []ProductVariant `json:"variants"`
	AvailableSizes []string         `json:"availableSizes"`
}

type Product struct {
	ID            string           `json:"id"`
	Slug          string           `json:"slug"`
	Name          string           `json:"name"`
	Description   string           `json:"description,omitempty"`
	Price         float64          `json:"price"`
	ComparePrice  *float64         `json:"comparePrice,omitempty"`
	SalePrice     *float64         `json:"salePrice,omitempty"`
	IsOnSale      bool             `json:"isOnSale"`
	IsFeatured    bool             `json:"isFeatured"`
	Tags          []string         `json:"tags,omitempty"`
	CategoryName  string           `json:"categoryName,omitempty"`
	CategorySlug  string           `json:"categorySlug,omitempty"`
	Images        []ProductImage   `json:"images,omitempty"`
	Variants      []ProductVariant `json:"variants,omitempty"`
	AverageRating *float64         `json:"averageRating,omitempty"`
	ReviewCount   int              `json:"reviewCount"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt,omitempty"`
}

// HasSize reports whether any variant carries the given size.
func (p *Product) HasSize(size string) bool {
	for _, v := range p.Variants {
		if v.Size == size {
			return true
		}
	}
	return false
}

// HasColor reports whether any variant carries the given colour.
func (p *Product) HasColor(color string) bool {
	for _, v := range p.Variants {
		if v.Color == color {
			return true
		}
	}
	return false
}

// InStock reports whether any variant has stock on hand.
func (p *Product) InStock() bool {
	for _, v := range p.Variants {
		if v.Stock > 0 {
			return true
		}
	}
	return false
}

// FlashSale is an active time-boxed promotion as reported by the backend.
type FlashSale struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	DiscountPct  float64   `json:"discountPct"`
	StartsAt     time.Time `json:"startsAt"`
	EndsAt       time.Time `json:"endsAt"`
	ProductIDs   []string  `json:"productIds,omitempty"`
	Products     []Product `json:"products,omitempty"`
	BannerImage  string    `json:"bannerImage,omitempty"`
	PromoTagline string    `json:"promoTagline,omitempty"`
}
