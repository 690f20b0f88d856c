package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"slotwise/models"
	"slotwise/schedule"
	scheduleService "slotwise/services/schedule"
	"slotwise/utils"
)

// ScheduleHandler serves the availability read surface and the booking
// validation endpoint.
type ScheduleHandler struct {
	Service scheduleService.ScheduleService
}

// NewScheduleHandler constructs a ScheduleHandler.
func NewScheduleHandler(svc scheduleService.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Service: svc}
}

// GetEffectiveDayHandler handles GET /:providerId/day/:date.
func (h *ScheduleHandler) GetEffectiveDayHandler(c *gin.Context) {
	providerID := c.Param("providerId")
	date := c.Param("date")
	if _, err := models.WeekdayOfDate(date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date", "message": err.Error()})
		return
	}

	view, err := h.Service.GetEffectiveDay(c.Request.Context(), providerID, date)
	if err != nil {
		utils.GetLogger().Error("Failed to resolve day", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve day", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetDaySlotsHandler handles GET /:providerId/day/:date/slots.
// Query params: duration (required, minutes), buffer (optional, minutes).
func (h *ScheduleHandler) GetDaySlotsHandler(c *gin.Context) {
	providerID := c.Param("providerId")
	date := c.Param("date")
	if _, err := models.WeekdayOfDate(date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date", "message": err.Error()})
		return
	}

	duration, err := strconv.Atoi(c.Query("duration"))
	if err != nil || duration <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid duration query param"})
		return
	}
	buffer := 0
	if raw := c.Query("buffer"); raw != "" {
		buffer, err = strconv.Atoi(raw)
		if err != nil || buffer < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid buffer query param"})
			return
		}
	}

	slots, err := h.Service.GetDaySlots(c.Request.Context(), providerID, date, duration, buffer)
	if err != nil {
		respondScheduleError(c, err, "Failed to generate slots")
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
}

// ValidateBookingHandler handles POST /:providerId/validate.
func (h *ScheduleHandler) ValidateBookingHandler(c *gin.Context) {
	providerID := c.Param("providerId")

	var req schedule.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	if _, err := models.WeekdayOfDate(req.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date", "message": err.Error()})
		return
	}

	confirmation, err := h.Service.ValidateBooking(c.Request.Context(), providerID, req)
	if err != nil {
		switch {
		case schedule.IsConflict(err):
			c.JSON(http.StatusConflict, gin.H{"accepted": false, "reason": "time unavailable"})
		case schedule.IsUnavailable(err):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"accepted": false, "reason": "time unavailable"})
		default:
			utils.GetLogger().Error("Booking validation failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Validation failed", "message": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"accepted": true, "confirmation": confirmation})
}

// respondScheduleError maps typed core errors onto the two user-visible
// failure categories.
func respondScheduleError(c *gin.Context, err error, fallback string) {
	switch {
	case schedule.IsInvalidWindow(err):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid interval", "message": err.Error()})
	case schedule.IsUnavailable(err), schedule.IsConflict(err):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "time unavailable", "message": err.Error()})
	default:
		utils.GetLogger().Error(fallback, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback, "message": err.Error()})
	}
}
