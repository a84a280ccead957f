package middleware

import (
	"context"
	"time"

	"github.com/changhyeonkim/member-directory/go-api-server/internal/shared/logger"
	"github.com/gin-gonic/gin"
)

// DefaultTimeout bounds a request, including a whole sync page.
const DefaultTimeout = 30 * time.Second

// Timeout puts a deadline on the request context. Handlers and the services
// below them observe it through ctx; nothing is written here on expiry.
func Timeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if ctx.Err() == context.DeadlineExceeded {
			logger.FromContext(c.Request.Context()).Warn("Request deadline exceeded",
				"request_id", GetRequestID(c),
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"timeout", timeout.String(),
				"status", c.Writer.Status(),
			)
		}
	}
}

// IsTimeout reports whether the request deadline has passed.
func IsTimeout(c *gin.Context) bool {
	return c.Request.Context().Err() == context.DeadlineExceeded
}
