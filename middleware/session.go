package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionCookieName carries the opaque shopper session id.
const SessionCookieName = "velora_session"

// sessionCookieMaxAge matches the persister TTL (30 days).
const sessionCookieMaxAge = 30 * 24 * 60 * 60

// SessionMiddleware ensures every request carries a session id, minting
// one on first contact. The id is opaque and groups cart/wishlist/
// interaction state; it is not an auth session.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookieName)
		if err != nil || sessionID == "" {
			sessionID = uuid.NewString()
			c.SetCookie(SessionCookieName, sessionID, sessionCookieMaxAge, "/", "", false, true)
		}
		c.Set("sessionID", sessionID)
		c.Next()
	}
}

// GetSessionIDFromContext returns the shopper session id set by
// SessionMiddleware.
func GetSessionIDFromContext(c *gin.Context) (string, bool) {
	sessionID, exists := c.Get("sessionID")
	if !exists {
		return "", false
	}
	return sessionID.(string), true
}
