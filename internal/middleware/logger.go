package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Vcortez99-hub/essentia/backend/internal/logger"
)

// RequestLogger assigns each request a correlation ID and logs the
// request with the structured logger. The ID is taken from the
// X-Request-ID header when the caller supplies one.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		// Generates a fresh UUID when the header is absent
		ctx := logger.WithRequestID(c.Request.Context(), c.GetHeader("X-Request-ID"))
		requestID := logger.RequestIDFromContext(ctx)
		c.Request = c.Request.WithContext(ctx)
		c.Set("request_id", requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()

		log := logger.FromContext(ctx)
		fields := []logger.Field{
			logger.String("method", method),
			logger.String("path", path),
			logger.Int("status", statusCode),
			logger.Duration("latency", latency),
			logger.String("client_ip", c.ClientIP()),
		}

		switch {
		case statusCode >= 500:
			log.Error("request completed", fields...)
		case statusCode >= 400:
			log.Warn("request completed", fields...)
		default:
			log.Info("request completed", fields...)
		}
	}
}
