package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
)

func TestMemoryPersisterRoundtrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryPersister()

	_, err := store.Load(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	state := NewState()
	state.AddCartItem(cartItem("p1", "M", "Blue", 40, 2))
	state.AddToWishlist(models.WishlistItem{ProductID: "p2"})
	require.NoError(t, store.Save(ctx, state))

	loaded, err := store.Load(ctx, state.SessionID)
	require.NoError(t, err)
	assert.Equal(t, state.SessionID, loaded.SessionID)
	require.Len(t, loaded.Cart, 1)
	assert.Equal(t, 2, loaded.Cart[0].Quantity)
	assert.True(t, loaded.IsInWishlist("p2"))

	// Stored state is a snapshot, not a shared pointer.
	loaded.ClearCart()
	again, err := store.Load(ctx, state.SessionID)
	require.NoError(t, err)
	assert.Len(t, again.Cart, 1)

	require.NoError(t, store.Delete(ctx, state.SessionID))
	_, err = store.Load(ctx, state.SessionID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestManagerCreatesFreshStateOnMiss(t *testing.T) {
	ctx := context.Background()
	manager := NewManager(NewMemoryPersister())

	state, err := manager.Get(ctx, "cookie-id")
	require.NoError(t, err)
	// The requested id is kept so the shopper's cookie stays valid.
	assert.Equal(t, "cookie-id", state.SessionID)
	assert.Empty(t, state.Cart)

	state.AddCartItem(cartItem("p1", "M", "Blue", 40, 1))
	require.NoError(t, manager.Put(ctx, state))

	reloaded, err := manager.Get(ctx, "cookie-id")
	require.NoError(t, err)
	assert.Len(t, reloaded.Cart, 1)

	require.NoError(t, manager.Drop(ctx, "cookie-id"))
	dropped, err := manager.Get(ctx, "cookie-id")
	require.NoError(t, err)
	assert.Empty(t, dropped.Cart)
}
