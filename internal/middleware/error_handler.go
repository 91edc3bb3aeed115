package middleware

import (
	"alexsimon-listings/internal/errors"
	"alexsimon-listings/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler converts errors attached by handlers into the flat
// {error, message} failure shape the frontend expects.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			appErr := errors.MapError(err)

			logger.GlobalLogger.Errorf("Request failed: path=%s, method=%s, client_ip=%s, request_id=%s, error=%s",
				c.Request.URL.Path,
				c.Request.Method,
				c.ClientIP(),
				c.GetString(RequestIDKey),
				appErr.TechnicalMessage)

			c.JSON(appErr.HTTPStatus, gin.H{
				"error":   appErr.Code,
				"message": appErr.UserMessage,
			})
		}
	}
}
