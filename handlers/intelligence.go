// File: handlers/intelligence.go
package handlers

import (
	"encoding/base64"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	ai "snapvroom/services/intelligence"
	"snapvroom/services/session"
)

// AIHandler exposes the photo-based preference recommendation. The
// recommendation is advisory: a failure here never touches the booking flow.
type AIHandler struct {
	Advisor  ai.AdvisorService
	Sessions *session.Manager
	logger   *zap.Logger
}

func NewAIHandler(advisor ai.AdvisorService, sessions *session.Manager, logger *zap.Logger) *AIHandler {
	return &AIHandler{
		Advisor:  advisor,
		Sessions: sessions,
		logger:   logger,
	}
}

// RecommendHandler accepts a JPEG photo (multipart "image" field or a base64
// JSON field) and returns the classifier's prediction for this session.
func (h *AIHandler) RecommendHandler(c *gin.Context) {
	sess, err := h.Sessions.Get(c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found"})
		return
	}

	image, description, err := readImagePayload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid image payload", "details": err.Error()})
		return
	}

	prediction, err := h.Advisor.Recommend(c.Request.Context(), sess, image, description)
	if err != nil {
		// Advisory only: report the failure, the booking flow stays intact.
		h.logger.Warn("Recommendation failed", zap.String("sessionId", sess.ID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "recommendation unavailable", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"prediction": prediction, "summary": prediction.Summary()})
}

// GetRecommendationHandler returns the last cached prediction for a session.
func (h *AIHandler) GetRecommendationHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if _, err := h.Sessions.Get(sessionID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found"})
		return
	}

	prediction, err := h.Advisor.CachedPrediction(c.Request.Context(), sessionID)
	if err != nil {
		h.logger.Warn("Failed to read cached prediction", zap.String("sessionId", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read recommendation"})
		return
	}
	if prediction == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no recommendation yet"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"prediction": prediction, "summary": prediction.Summary()})
}

// ClearRecommendationHandler discards the cached prediction for a session,
// e.g. when the customer retakes the photo.
func (h *AIHandler) ClearRecommendationHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if _, err := h.Sessions.Get(sessionID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found"})
		return
	}
	if err := h.Advisor.ClearPrediction(c.Request.Context(), sessionID); err != nil {
		h.logger.Warn("Failed to clear cached prediction", zap.String("sessionId", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear recommendation"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "recommendation cleared"})
}

// readImagePayload extracts the JPEG bytes plus an optional trip description
// from either a multipart form or a JSON body.
func readImagePayload(c *gin.Context) ([]byte, string, error) {
	contentType := c.GetHeader("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		file, _, err := c.Request.FormFile("image")
		if err != nil {
			return nil, "", err
		}
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			return nil, "", err
		}
		return data, c.PostForm("userDescription"), nil
	}

	var input struct {
		ImageBase64     string `json:"imageBase64" binding:"required"`
		UserDescription string `json:"userDescription"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		return nil, "", err
	}
	data, err := base64.StdEncoding.DecodeString(input.ImageBase64)
	if err != nil {
		return nil, "", err
	}
	return data, input.UserDescription, nil
}
