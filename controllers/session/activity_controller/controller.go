package activity_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/middleware"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/session"
)

var manager *session.Manager

// Init wires the session manager into this controller.
func Init(m *session.Manager) {
	manager = m
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
