package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"pizza-backend/internal/httperr"
)

// Context keys set by CurrentUser.
const (
	ContextUserID    = "userId"
	ContextUserEmail = "userEmail"
)

// CurrentUser extracts the identity from a Bearer token when one is
// present. A missing or invalid token is not an error here; routes that
// need an identity chain RequireAuth after this.
func CurrentUser(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader("Authorization"))
		if raw == "" {
			c.Next()
			return
		}

		parts := strings.Split(raw, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.Next()
			return
		}

		token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.Next()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.Next()
			return
		}

		id, ok := claims["id"].(string)
		if !ok || strings.TrimSpace(id) == "" {
			c.Next()
			return
		}

		c.Set(ContextUserID, id)
		if email, ok := claims["email"].(string); ok {
			c.Set(ContextUserEmail, email)
		}
		c.Next()
	}
}

// RequireAuth rejects requests that carry no authenticated identity.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(ContextUserID); !ok {
			httperr.Abort(c, httperr.Unauthorized("Unauthorized"))
			return
		}
		c.Next()
	}
}
