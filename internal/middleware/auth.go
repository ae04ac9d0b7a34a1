package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserIDKey is the gin context key the verified user ID is stored under.
const UserIDKey = "user_id"

// TokenVerifier validates an access token and resolves the identity it
// was issued to.
type TokenVerifier interface {
	VerifyAccess(token string) (uuid.UUID, error)
}

// AuthMiddleware guards identity-scoped routes: it requires a Bearer
// access token and stores the resolved user ID in the request context.
func AuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := BearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or malformed authorization header"})
			c.Abort()
			return
		}

		userID, err := verifier.VerifyAccess(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// BearerToken extracts the token from the Authorization header.
func BearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

// UserID reads the verified user ID set by AuthMiddleware.
func UserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(UserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
