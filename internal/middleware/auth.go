package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"swiperent/pkg/jwtutil"
)

// Context keys set by Auth for downstream handlers.
const (
	ContextUserID   = "userID"
	ContextUsername = "username"
	ContextEmail    = "email"
)

// Auth guards routes with a bearer token. A missing token is a 401
// ("Access denied"); a present but malformed, expired or badly signed
// token is a 403 ("Invalid token"). Clients depend on that split.
func Auth(tokens *jwtutil.JWTUtil) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access denied"})
			return
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUsername, claims.Username)
		c.Set(ContextEmail, claims.Email)
		c.Next()
	}
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	return parts[1]
}

// UserID returns the authenticated user id set by Auth.
func UserID(c *gin.Context) uint {
	id, _ := c.Get(ContextUserID)
	uid, _ := id.(uint)
	return uid
}
