package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"alexsimon-listings/pkg/logger"

	"github.com/gin-gonic/gin"
)

// BearerAuth checks the Authorization header against a shared secret.
// When no secret is configured the request passes, optionally with a
// warning; that is the development fallback, not a production mode.
func BearerAuth(secret, secretName string, warnWhenUnset bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			if warnWhenUnset {
				logger.GlobalLogger.Warnf("%s not set - skipping auth check in development", secretName)
			}
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "Unauthorized",
				"message": "Invalid or missing authorization token",
			})
			return
		}

		c.Next()
	}
}
