package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Context keys the auth guard populates for downstream handlers.
const (
	UserIDKey   = "user_id"
	UsernameKey = "username"
)

// TokenVerifier validates a bearer token and returns the user it belongs to.
type TokenVerifier interface {
	Verify(token string) (int64, string, error)
}

// RequireAuth guards a route group with bearer-token authentication.
//
// Behavior:
//   - Expects an "Authorization: Bearer <token>" header.
//   - Verifies the token and stores the user ID and username in the Gin
//     context under UserIDKey and UsernameKey.
//   - Responds 401 Unauthorized on a missing, malformed or invalid token.
//
// Usage:
//
//	protected := router.Group("/api/v1/portfolio")
//	protected.Use(middleware.RequireAuth(issuer))
func RequireAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			AbortWithError(c, http.StatusUnauthorized, "Missing bearer token", nil)
			return
		}

		userID, username, err := verifier.Verify(token)
		if err != nil {
			AbortWithError(c, http.StatusUnauthorized, "Invalid or expired token", err)
			return
		}

		c.Set(UserIDKey, userID)
		c.Set(UsernameKey, username)
		c.Next()
	}
}

// UserID reads the authenticated user's ID from the context. The bool is
// false on routes that never passed through RequireAuth.
func UserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
