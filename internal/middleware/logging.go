package middleware

import (
	"time"

	"alexsimon-listings/pkg/logger"

	"github.com/gin-gonic/gin"
)

func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		requestID := c.GetString(RequestIDKey)
		logger.GlobalLogger.Printf("%s %s %d %v request_id=%s", method, path, status, latency, requestID)
	}
}
