package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
)

func ptrTo[T any](v T) *T {
	return &v
}

func fixtureProducts() []models.Product {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return []models.Product{
		{
			ID: "p1", Name: "Oxford Shirt", CategoryName: "Shirts", CategorySlug: "shirts",
			Price: 68, ComparePrice: ptrTo(84.0), IsOnSale: true, IsFeatured: true,
			AverageRating: ptrTo(4.6),
			Variants: []models.ProductVariant{
				{Size: "M", Color: "White", Stock: 4},
				{Size: "L", Color: "Blue", Stock: 0},
			},
			CreatedAt: base.Add(72 * time.Hour),
		},
		{
			ID: "p2", Name: "Linen Trousers", CategoryName: "Trousers", CategorySlug: "trousers",
			Price:         92,
			AverageRating: ptrTo(4.1),
			Variants: []models.ProductVariant{
				{Size: "L", Color: "Sand", Stock: 2},
			},
			CreatedAt: base.Add(48 * time.Hour),
		},
		{
			ID: "p3", Name: "Merino Crewneck", CategoryName: "Knitwear", CategorySlug: "knitwear",
			Price: 120,
			Variants: []models.ProductVariant{
				{Size: "S", Color: "Charcoal", Stock: 0},
			},
			CreatedAt: base.Add(24 * time.Hour),
		},
		{
			ID: "p4", Name: "Canvas Tote", CategoryName: "Accessories", CategorySlug: "accessories",
			Price: 35, IsOnSale: true,
			Variants: []models.ProductVariant{
				{Size: "M", Color: "Natural", Stock: 30},
			},
			CreatedAt: base,
		},
	}
}

func TestApplyNeutralStateIsIdentity(t *testing.T) {
	products := fixtureProducts()

	got := Apply(products, models.NeutralFilterState())

	require.Len(t, got, len(products))
	for i := range products {
		// Fixture is already newest-first, so ordering must survive too.
		assert.Equal(t, products[i].ID, got[i].ID)
	}
}

func TestApplyOnSaleSoundness(t *testing.T) {
	state := models.NeutralFilterState()
	state.OnSale = true

	got := Apply(fixtureProducts(), state)

	require.NotEmpty(t, got)
	for _, p := range got {
		assert.True(t, p.IsOnSale, "product %s is not on sale", p.ID)
	}
	assert.Len(t, got, 2)
}

func TestApplyPriceSortsAreReversals(t *testing.T) {
	products := fixtureProducts() // all prices distinct

	low := models.NeutralFilterState()
	low.Sort = models.SortPriceLow
	asc := Apply(products, low)

	high := models.NeutralFilterState()
	high.Sort = models.SortPriceHigh
	desc := Apply(products, high)

	require.Len(t, asc, len(desc))
	for i := range asc {
		assert.Equal(t, asc[i].ID, desc[len(desc)-1-i].ID)
	}
}

func TestApplyFilterPredicates(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.FilterState)
		wantIDs []string
	}{
		{
			name:    "search is case-insensitive substring",
			mutate:  func(f *models.FilterState) { f.Search = "oxford" },
			wantIDs: []string{"p1"},
		},
		{
			name:    "category matches ignoring case",
			mutate:  func(f *models.FilterState) { f.Category = "trousers" },
			wantIDs: []string{"p2"},
		},
		{
			name:    "size matches any variant",
			mutate:  func(f *models.FilterState) { f.Size = "M" },
			wantIDs: []string{"p1", "p4"},
		},
		{
			name:    "color matches any variant",
			mutate:  func(f *models.FilterState) { f.Color = "Charcoal" },
			wantIDs: []string{"p3"},
		},
		{
			name:    "price bounds are inclusive",
			mutate:  func(f *models.FilterState) { f.MinPrice = ptrTo(68.0); f.MaxPrice = ptrTo(92.0) },
			wantIDs: []string{"p1", "p2"},
		},
		{
			name:    "in stock needs one variant with stock",
			mutate:  func(f *models.FilterState) { f.InStock = true },
			wantIDs: []string{"p1", "p2", "p4"},
		},
		{
			name:    "rating floor keeps unrated products",
			mutate:  func(f *models.FilterState) { f.MinRating = ptrTo(4.5) },
			wantIDs: []string{"p1", "p3", "p4"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			state := models.NeutralFilterState()
			tc.mutate(&state)

			got := Apply(fixtureProducts(), state)

			ids := make([]string, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tc.wantIDs, ids)
		})
	}
}

func TestActiveCount(t *testing.T) {
	assert.Equal(t, 0, ActiveCount(models.NeutralFilterState()))

	state := models.NeutralFilterState()
	state.Search = "shirt"
	state.Category = "shirts"
	state.InStock = true
	assert.Equal(t, 3, ActiveCount(state))

	state.MinPrice = ptrTo(10.0)
	state.Sort = models.SortPriceLow
	assert.Equal(t, 5, ActiveCount(state))
}

func TestSortRatingMissingCountsAsZero(t *testing.T) {
	state := models.NeutralFilterState()
	state.Sort = models.SortRating

	got := Apply(fixtureProducts(), state)

	require.Len(t, got, 4)
	assert.Equal(t, "p1", got[0].ID)
	assert.Equal(t, "p2", got[1].ID)
	// p3 and p4 are unrated and keep their incoming relative order.
	assert.Equal(t, "p3", got[2].ID)
	assert.Equal(t, "p4", got[3].ID)
}

func TestSortNameIsLocaleAware(t *testing.T) {
	products := []models.Product{
		{ID: "b", Name: "beanie"},
		{ID: "a", Name: "Anorak"},
		{ID: "c", Name: "Cardigan"},
	}
	state := models.NeutralFilterState()
	state.Sort = models.SortName

	got := Apply(products, state)

	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
	assert.Equal(t, "c", got[2].ID)
}

func TestPage(t *testing.T) {
	products := fixtureProducts()

	first := Page(products, 1, 3)
	require.Len(t, first, 3)
	assert.Equal(t, "p1", first[0].ID)

	second := Page(products, 2, 3)
	require.Len(t, second, 1)
	assert.Equal(t, "p4", second[0].ID)

	assert.Empty(t, Page(products, 3, 3))
	assert.Len(t, Page(products, 0, 3), 3) // page<1 clamps to 1
}

func TestBuildFilterMetadata(t *testing.T) {
	metadata := BuildFilterMetadata(fixtureProducts())

	require.Len(t, metadata.Categories, 4)
	assert.Equal(t, "Accessories", metadata.Categories[0].Label)

	require.NotEmpty(t, metadata.Sizes)
	assert.Equal(t, "S", metadata.Sizes[0].Value) // ladder order, not lexical

	assert.Equal(t, 35.0, metadata.PriceRange.Min)
	assert.Equal(t, 120.0, metadata.PriceRange.Max)

	require.Len(t, metadata.Availability, 2)
	assert.Equal(t, 3, metadata.Availability[0].Count)
	assert.Equal(t, 1, metadata.Availability[1].Count)
}
