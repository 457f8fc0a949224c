package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the gin context key the request ID is stored under.
const RequestIDKey = "request_id"

// requestIDHeader is the header the ID is read from and echoed back on.
const requestIDHeader = "X-Request-ID"

// RequestID is a Gin middleware that tags every request with a unique
// identifier.
//
// Behavior:
//   - Reuses an incoming X-Request-ID header when the client sent one, so
//     IDs survive proxy hops.
//   - Generates a UUID (v4) otherwise.
//   - Stores the ID in the Gin context under RequestIDKey and echoes it in
//     the X-Request-ID response header.
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.RequestID())
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(RequestIDKey, id)
		c.Writer.Header().Set(requestIDHeader, id)

		c.Next()
	}
}
