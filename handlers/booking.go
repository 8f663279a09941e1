package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	recordsRepo "snapvroom/database/repository/records"
	"snapvroom/models"
	"snapvroom/services/rentalapi"
	"snapvroom/services/session"
)

// BookingHandler exposes the booking session operations to the mobile UI.
type BookingHandler struct {
	Sessions *session.Manager
	Records  recordsRepo.CompletedBookingRepository
	logger   *zap.Logger
}

func NewBookingHandler(sessions *session.Manager, records recordsRepo.CompletedBookingRepository, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{
		Sessions: sessions,
		Records:  records,
		logger:   logger,
	}
}

// respondOpError maps a session operation failure onto an HTTP response.
func respondOpError(c *gin.Context, err error) {
	var httpErr *rentalapi.HTTPError
	switch {
	case errors.Is(err, session.ErrNoBooking):
		c.JSON(http.StatusBadRequest, gin.H{"error": "no booking created yet"})
	case errors.As(err, &httpErr):
		c.JSON(http.StatusBadGateway, gin.H{
			"error":          "rental API rejected the request",
			"upstreamStatus": httpErr.Status,
			"upstreamBody":   httpErr.Body,
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// StartSession creates a new session and runs the initialization sequence:
// create booking, fetch detail, fetch all three candidate catalogs.
func (h *BookingHandler) StartSession(c *gin.Context) {
	var input struct {
		BookedCategory string `json:"bookedCategory"`
	}
	// The body is optional; an empty one means server-side defaults.
	_ = c.ShouldBindJSON(&input)

	req := models.CreateBookingRequest{}
	if input.BookedCategory != "" {
		req.BookedCategory = &input.BookedCategory
	}

	sess := h.Sessions.Create()
	if err := sess.Initialize(c.Request.Context(), req); err != nil {
		h.logger.Error("Failed to initialize booking session",
			zap.String("sessionId", sess.ID), zap.Error(err))
		h.Sessions.Drop(sess.ID)
		respondOpError(c, err)
		return
	}

	c.JSON(http.StatusOK, sess.Snapshot())
}

// GetSession returns the current session snapshot.
func (h *BookingHandler) GetSession(c *gin.Context) {
	sess, err := h.Sessions.Get(c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found"})
		return
	}
	c.JSON(http.StatusOK, sess.Snapshot())
}

// RefreshSession re-fetches the booking detail from the rental API.
func (h *BookingHandler) RefreshSession(c *gin.Context) {
	sess, err := h.Sessions.Get(c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found"})
		return
	}
	if err := sess.Refresh(c.Request.Context()); err != nil {
		respondOpError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess.Snapshot())
}

// GetInitialVehicle returns the heuristic starting vehicle for the wizard.
func (h *BookingHandler) GetInitialVehicle(c *gin.Context) {
	sess, err := h.Sessions.Get(c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found"})
		return
	}
	vehicle := sess.SelectInitialVehicle()
	if vehicle == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no vehicle could be selected"})
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

// AssignVehicle assigns the given vehicle to the session's booking.
func (h *BookingHandler) AssignVehicle(c *gin.Context) {
	sess, err := h.Sessions.Get(c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found"})
		return
	}
	if err := sess.AssignVehicle(c.Request.Context(), c.Param("vehicleID")); err != nil {
		respondOpError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess.Snapshot())
}

// AssignProtection assigns the given protection package to the session's booking.
func (h *BookingHandler) AssignProtection(c *gin.Context) {
	sess, err := h.Sessions.Get(c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found"})
		return
	}
	if err := sess.AssignProtection(c.Request.Context(), c.Param("packageID")); err != nil {
		respondOpError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess.Snapshot())
}

// AssignAddon adds the given addon to the session's booking. Amounts
// accumulate per addon id; the local update sticks even if the upstream
// call fails.
func (h *BookingHandler) AssignAddon(c *gin.Context) {
	sess, err := h.Sessions.Get(c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found"})
		return
	}

	var input struct {
		Title  string `json:"title"`
		Amount int    `json:"amount"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.Amount <= 0 {
		input.Amount = 1
	}

	if err := sess.AssignAddon(c.Request.Context(), c.Param("addonID"), input.Title, input.Amount); err != nil {
		respondOpError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess.Snapshot())
}

// CompleteSession finalizes the booking and archives the result.
func (h *BookingHandler) CompleteSession(c *gin.Context) {
	sess, err := h.Sessions.Get(c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found"})
		return
	}

	booking, err := sess.Complete(c.Request.Context())
	if err != nil {
		respondOpError(c, err)
		return
	}

	h.archiveCompleted(sess.ID, booking)

	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// archiveCompleted writes the completed booking to the archive in the
// background. Failures are logged and never surface to the client.
func (h *BookingHandler) archiveCompleted(sessionID string, booking *models.Booking) {
	if h.Records == nil || booking == nil {
		return
	}
	record := models.CompletedBookingRecord{
		SessionID:      sessionID,
		BookingID:      booking.ID,
		BookedCategory: booking.BookedCategory,
		Status:         booking.Status,
		Addons:         booking.Addons,
	}
	if booking.SelectedVehicle != nil {
		record.VehicleID = booking.SelectedVehicle.Vehicle.ID
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if _, err := h.Records.Create(ctx, record); err != nil {
			h.logger.Warn("Failed to archive completed booking",
				zap.String("bookingId", record.BookingID), zap.Error(err))
		}
	}()
}

// CancelSession discards the session and all its local state.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	h.Sessions.Drop(c.Param("sessionID"))
	c.JSON(http.StatusOK, gin.H{"message": "booking session discarded"})
}
