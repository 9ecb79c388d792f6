package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"task-reminder/pkg/log"
)

const RequestIDHeader = "X-Request-ID"

// RequestID propagates or generates a request id and stores it in the
// request context so every log line of the request carries it.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
