package wishlist_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/middleware"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/services"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/session"
)

var (
	manager *session.Manager
	client  *services.StorefrontClient
)

// Init wires the session manager and upstream client into this
// controller.
func Init(m *session.Manager, c *services.StorefrontClient) {
	manager = m
	client = c
}

func loadState(c *gin.Context) (*session.State, bool) {
	sessionID, exists := middleware.GetSessionIDFromContext(c)
	if !exists {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session not initialized"))
		return nil, false
	}
	state, err := manager.Get(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load session"))
		return nil, false
	}
	return state, true
}

func saveState(c *gin.Context, state *session.State) bool {
	if err := manager.Put(c.Request.Context(), state); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save session"))
		return false
	}
	return true
}

// syncRemote mirrors a wishlist mutation to the shopper's server-side
// wishlist when they are signed in. Best effort: the local wishlist works
// with no network dependency, and a sync failure only logs.
func syncRemote(c *gin.Context, productID string, add bool) {
	token := middleware.GetAuthTokenFromContext(c)
	if token == "" {
		return
	}

	var err error
	if add {
		err = client.AddWishlistRemote(c.Request.Context(), token, productID)
	} else {
		err = client.RemoveWishlistRemote(c.Request.Context(), token, productID)
	}
	if err != nil {
		log.Printf("⚠️ Wishlist sync failed for product %s: %v", productID, err)
	}
}
