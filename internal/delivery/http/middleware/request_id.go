package middleware

import (
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID tags every request with an identifier that the response
// envelope and audit log both carry, so one request can be traced across
// both. An incoming X-Request-ID is honored for proxy chains.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(string(domain.KeyRequestID), requestID)
		c.Header("X-Request-ID", requestID)

		c.Next()
	}
}
