package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/valeriaulyamaeva/living-budget/internal/auth"
)

const ownerKey = "ownerID"

type TokenParser interface {
	ParseToken(token string) (*auth.Claims, error)
}

// AuthMiddleware resolves the bearer token to an owner id and aborts with 401
// when there is none.
func AuthMiddleware(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string
		header := c.GetHeader("Authorization")
		if scheme, token, ok := strings.Cut(header, " "); ok && strings.EqualFold(scheme, "Bearer") {
			tokenStr = strings.TrimSpace(token)
		}
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		claims, err := tokens.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set(ownerKey, claims.UserID)
		c.Next()
	}
}

// OwnerID returns the authenticated owner set by AuthMiddleware.
func OwnerID(c *gin.Context) (int, bool) {
	id, ok := c.Get(ownerKey)
	if !ok {
		return 0, false
	}
	ownerID, ok := id.(int)
	return ownerID, ok && ownerID > 0
}
