package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CorrelationMiddleware handles correlation ID tracking
func CorrelationMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Check for existing X-Correlation-ID header
		correlationID := c.GetHeader("X-Correlation-ID")
		if correlationID == "" {
			// Generate a new UUID if missing
			correlationID = uuid.New().String()
		}

		c.Set("correlation_id", correlationID)
		c.Header("X-Correlation-ID", correlationID)

		c.Next()
	}
}
