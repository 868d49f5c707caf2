package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the correlation ID between client and server.
const RequestIDHeader = "X-Request-ID"

// requestIDKey is the gin context key under which the ID is stored.
const requestIDKey = "request_id"

// RequestID tags every request with a correlation ID. A client-supplied
// X-Request-ID is honored so upstream proxies can trace calls end to end;
// otherwise a fresh UUID is minted.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// ContextRequestID returns the correlation ID assigned to the request, or
// the empty string when the RequestID middleware did not run.
func ContextRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
