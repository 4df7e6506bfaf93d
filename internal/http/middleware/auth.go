package middleware

import (
	"net/http"
	"strings"

	"backoffice/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	userIDKey = "auth_user_id"
	roleKey   = "auth_role"
)

// RequireAuth validates the bearer token and stores the operator's pricing
// role in the context.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid claims"})
			return
		}
		if id, ok := claims["user_id"].(float64); ok {
			c.Set(userIDKey, int64(id))
		}
		if role, ok := claims["role"].(string); ok {
			c.Set(roleKey, role)
		}
		c.Next()
	}
}

// GetRole returns the authenticated operator's pricing role.
func GetRole(c *gin.Context) domain.Role {
	if v, ok := c.Get(roleKey); ok {
		if s, ok := v.(string); ok {
			return domain.ParseRole(s)
		}
	}
	return domain.RoleInternalSales
}

// GetUserID returns the authenticated operator's id, 0 when anonymous.
func GetUserID(c *gin.Context) int64 {
	if v, ok := c.Get(userIDKey); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}
