package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ojedapedro/gonzacars-sistem-sub000/internal/auth"
	"github.com/ojedapedro/gonzacars-sistem-sub000/internal/session"
)

// AuthMiddleware checks the Bearer token and stashes the caller's
// identity in the gin context for the handlers behind it.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header must start with Bearer"})
			c.Abort()
			return
		}

		claims, err := auth.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set("username", claims.Username)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// RequireSection gates a route group on the role/section permission
// table. Admin passes everything.
func RequireSection(section string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if !session.IsPermitted(role, section) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to access this section"})
			c.Abort()
			return
		}
		c.Next()
	}
}
