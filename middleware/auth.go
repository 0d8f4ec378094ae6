package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Velora-Ecommerce/velora-storefront-gateway/models"
	"github.com/Velora-Ecommerce/velora-storefront-gateway/utils"
)

// tokenFromRequest pulls the JWT from the auth cookie or the
// Authorization header.
func tokenFromRequest(c *gin.Context) string {
	if cookieToken, err := c.Cookie("auth_token"); err == nil && cookieToken != "" {
		return cookieToken
	}
	authHeader := c.GetHeader("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

// AuthMiddleware requires a valid JWT. The raw token is kept in context so
// controllers can forward it to the backend.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authorization required"))
			c.Abort()
			return
		}

		claims, err := utils.ValidateJWT(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid or expired token"))
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("userEmail", claims.Email)
		c.Set("userName", claims.Name)
		c.Set("authToken", token)

		c.Next()
	}
}

// OptionalAuth sets user info when a valid token is present and otherwise
// lets the request through anonymously. Wishlist sync and review posting
// check for the token; everything else ignores it.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token != "" {
			if claims, err := utils.ValidateJWT(token); err == nil {
				c.Set("userID", claims.UserID)
				c.Set("userEmail", claims.Email)
				c.Set("userName", claims.Name)
				c.Set("authToken", token)
			}
		}
		c.Next()
	}
}

func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		return "", false
	}
	return userID.(string), true
}

// GetAuthTokenFromContext returns the raw bearer token for upstream
// forwarding; empty string means anonymous.
func GetAuthTokenFromContext(c *gin.Context) string {
	token, exists := c.Get("authToken")
	if !exists {
		return ""
	}
	return token.(string)
}
