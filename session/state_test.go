package session

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
)

func cartItem(productID, size, color string, price float64, qty int) models.CartItem {
	return models.CartItem{
		ProductID: productID,
		Name:      "Item " + productID,
		Price:     price,
		Size:      size,
		Color:     color,
		Quantity:  qty,
	}
}

func TestAddCartItemMergesMatchingLines(t *testing.T) {
	state := NewState()

	state.AddCartItem(cartItem("p1", "M", "Blue", 40, 1))
	state.AddCartItem(cartItem("p1", "M", "Blue", 40, 2))
	state.AddCartItem(cartItem("p1", "L", "Blue", 40, 1)) // different size, new line

	require.Len(t, state.Cart, 2)
	assert.Equal(t, 3, state.Cart[0].Quantity)
	assert.Equal(t, 4, state.CartCount())
	assert.Equal(t, 160.0, state.CartSubtotal())
}

func TestSetCartQuantity(t *testing.T) {
	state := NewState()
	state.AddCartItem(cartItem("p1", "M", "Blue", 40, 2))

	require.True(t, state.SetCartQuantity("p1", "M", "Blue", 5))
	assert.Equal(t, 5, state.Cart[0].Quantity)

	// Zero removes the line.
	require.True(t, state.SetCartQuantity("p1", "M", "Blue", 0))
	assert.Empty(t, state.Cart)

	assert.False(t, state.SetCartQuantity("p1", "M", "Blue", 1))
}

func TestWishlistContains(t *testing.T) {
	state := NewState()

	state.AddToWishlist(models.WishlistItem{ProductID: "p1", Name: "Item p1"})
	state.AddToWishlist(models.WishlistItem{ProductID: "p1", Name: "Item p1"}) // no duplicate

	require.Len(t, state.Wishlist, 1)
	assert.True(t, state.IsInWishlist("p1"))
	assert.False(t, state.IsInWishlist("p2"))

	require.True(t, state.RemoveFromWishlist("p1"))
	assert.False(t, state.IsInWishlist("p1"))
	assert.False(t, state.RemoveFromWishlist("p1"))
}

func TestRecordViewMovesToFrontAndCaps(t *testing.T) {
	state := NewState()

	for i := 0; i < MaxRecentlyViewed+5; i++ {
		state.RecordView(models.RecentlyViewedProduct{ProductID: fmt.Sprintf("p%d", i)})
	}

	require.Len(t, state.RecentlyViewed, MaxRecentlyViewed)
	assert.Equal(t, "p24", state.RecentlyViewed[0].ProductID)

	// Re-viewing an old entry moves it to the front without growing the list.
	state.RecordView(models.RecentlyViewedProduct{ProductID: "p10"})

	require.Len(t, state.RecentlyViewed, MaxRecentlyViewed)
	assert.Equal(t, "p10", state.RecentlyViewed[0].ProductID)

	seen := map[string]bool{}
	for _, p := range state.RecentlyViewed {
		assert.False(t, seen[p.ProductID], "duplicate %s", p.ProductID)
		seen[p.ProductID] = true
	}
}

func TestRecordInteractionCapsLog(t *testing.T) {
	state := NewState()

	for i := 0; i < MaxInteractions+10; i++ {
		state.RecordInteraction(models.UserInteraction{
			Type:     models.InteractionView,
			TargetID: fmt.Sprintf("p%d", i),
		})
	}

	require.Len(t, state.Interactions, MaxInteractions)
	// Oldest entries were evicted.
	assert.Equal(t, "p10", state.Interactions[0].TargetID)
	assert.Equal(t, state.SessionID, state.Interactions[0].SessionID)
}

func TestPopularProducts(t *testing.T) {
	state := NewState()

	for i := 0; i < 3; i++ {
		state.RecordInteraction(models.UserInteraction{Type: models.InteractionView, TargetID: "p1"})
	}
	state.RecordInteraction(models.UserInteraction{Type: models.InteractionCart, TargetID: "p2"})
	state.RecordInteraction(models.UserInteraction{Type: models.InteractionWishlist, TargetID: "p2"})
	// Searches carry no target product and never count.
	state.RecordInteraction(models.UserInteraction{Type: models.InteractionSearch, Query: "shirt"})

	top := state.PopularProducts(5)

	require.Len(t, top, 2)
	assert.Equal(t, models.PopularEntry{ID: "p1", Count: 3}, top[0])
	assert.Equal(t, models.PopularEntry{ID: "p2", Count: 2}, top[1])
}

func TestPopularCategories(t *testing.T) {
	state := NewState()

	state.RecordInteraction(models.UserInteraction{Type: models.InteractionFilter, Category: "shirts"})
	state.RecordInteraction(models.UserInteraction{Type: models.InteractionView, TargetID: "p1", Category: "shirts"})
	state.RecordInteraction(models.UserInteraction{Type: models.InteractionFilter, Category: "knitwear"})

	top := state.PopularCategories(1)

	require.Len(t, top, 1)
	assert.Equal(t, models.PopularEntry{ID: "shirts", Count: 2}, top[0])
}
