// File: middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"snapvroom/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DeviceAuthMiddleware requires a valid device token on session routes and
// exposes the device id to downstream handlers.
func DeviceAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		deviceID, err := utils.ExtractDeviceIDFromToken(tokenString)
		if err != nil {
			zap.L().Warn("Rejected device token", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set("deviceID", deviceID)
		c.Next()
	}
}
