package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestDeadline installs a deadline on the request context so every store
// call bound to the request inherits it. Expiry surfaces as a 504-class
// error from the usecase layer instead of a hang.
func RequestDeadline(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
