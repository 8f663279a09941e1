package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"snapvroom/utils"
)

// IssueDeviceTokenHandler hands out a signed device token. The mobile app
// calls this once per install and sends the token on every session route.
func IssueDeviceTokenHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var input struct {
		DeviceID string `json:"deviceId"`
	}
	_ = c.ShouldBindJSON(&input)
	if input.DeviceID == "" {
		input.DeviceID = uuid.New().String()
	}

	token, err := utils.GenerateDeviceToken(input.DeviceID, utils.DeviceTokenTTL)
	if err != nil {
		logger.Error("Failed to generate device token", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue token", err.Error())
		return
	}

	// Remember the hashed token so it can be audited or revoked later.
	cache := utils.GetAuthCacheClient()
	key := utils.AuthCachePrefix + input.DeviceID
	if err := cache.Set(c.Request.Context(), key, utils.HashToken(token), utils.DeviceTokenTTL).Err(); err != nil {
		logger.Warn("Failed to cache device token", zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{"deviceId": input.DeviceID, "token": token})
}
