package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"slotwise/models"
)

// Editor endpoints mutate the authenticated provider's schedule. The
// auth middleware guarantees the path provider matches the token.

// GetWeeklyScheduleHandler handles GET /:providerId/weekly.
func (h *ScheduleHandler) GetWeeklyScheduleHandler(c *gin.Context) {
	providerID := c.Param("providerId")
	weekly, err := h.Service.GetWeeklySchedule(c.Request.Context(), providerID)
	if err != nil {
		respondScheduleError(c, err, "Failed to load weekly schedule")
		return
	}
	c.JSON(http.StatusOK, weekly)
}

// ToggleWeekdayHandler handles PUT /:providerId/weekly/:day/toggle.
func (h *ScheduleHandler) ToggleWeekdayHandler(c *gin.Context) {
	providerID := c.Param("providerId")
	day, err := models.ParseWeekday(c.Param("day"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid weekday", "message": err.Error()})
		return
	}

	weekly, err := h.Service.ToggleWeekday(c.Request.Context(), providerID, day)
	if err != nil {
		respondScheduleError(c, err, "Failed to toggle weekday")
		return
	}
	c.JSON(http.StatusOK, weekly)
}

// AddWindowHandler handles POST /:providerId/weekly/:day/windows.
func (h *ScheduleHandler) AddWindowHandler(c *gin.Context) {
	providerID := c.Param("providerId")
	day, err := models.ParseWeekday(c.Param("day"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid weekday", "message": err.Error()})
		return
	}
	var window models.TimeWindow
	if err := c.ShouldBindJSON(&window); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	weekly, err := h.Service.AddWindow(c.Request.Context(), providerID, day, window)
	if err != nil {
		respondScheduleError(c, err, "Failed to add window")
		return
	}
	c.JSON(http.StatusOK, weekly)
}

// EditWindowHandler handles PUT /:providerId/weekly/:day/windows/:index.
func (h *ScheduleHandler) EditWindowHandler(c *gin.Context) {
	providerID := c.Param("providerId")
	day, err := models.ParseWeekday(c.Param("day"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid weekday", "message": err.Error()})
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid window index"})
		return
	}
	var window models.TimeWindow
	if err := c.ShouldBindJSON(&window); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	weekly, err := h.Service.EditWindow(c.Request.Context(), providerID, day, index, window)
	if err != nil {
		respondScheduleError(c, err, "Failed to edit window")
		return
	}
	c.JSON(http.StatusOK, weekly)
}

// RemoveWindowHandler handles DELETE /:providerId/weekly/:day/windows/:index.
func (h *ScheduleHandler) RemoveWindowHandler(c *gin.Context) {
	providerID := c.Param("providerId")
	day, err := models.ParseWeekday(c.Param("day"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid weekday", "message": err.Error()})
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid window index"})
		return
	}

	weekly, err := h.Service.RemoveWindow(c.Request.Context(), providerID, day, index)
	if err != nil {
		respondScheduleError(c, err, "Failed to remove window")
		return
	}
	c.JSON(http.StatusOK, weekly)
}

// setOverrideRequest is the payload for PUT /:providerId/overrides/:date.
type setOverrideRequest struct {
	Type    models.OverrideType `json:"type" binding:"required"`
	Windows []models.TimeWindow `json:"windows,omitempty"`
}

// SetOverrideHandler handles PUT /:providerId/overrides/:date.
func (h *ScheduleHandler) SetOverrideHandler(c *gin.Context) {
	providerID := c.Param("providerId")
	date := c.Param("date")
	if _, err := models.WeekdayOfDate(date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date", "message": err.Error()})
		return
	}
	var req setOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	override, err := h.Service.SetOverride(c.Request.Context(), providerID, date, req.Type, req.Windows)
	if err != nil {
		respondScheduleError(c, err, "Failed to set override")
		return
	}
	c.JSON(http.StatusOK, override)
}

// ClearOverrideHandler handles DELETE /:providerId/overrides/:date.
func (h *ScheduleHandler) ClearOverrideHandler(c *gin.Context) {
	providerID := c.Param("providerId")
	date := c.Param("date")

	if err := h.Service.ClearOverride(c.Request.Context(), providerID, date); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Override not found", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Override cleared; date restored to weekly routine"})
}

// GetOverridesHandler handles GET /:providerId/overrides?from=&to=.
func (h *ScheduleHandler) GetOverridesHandler(c *gin.Context) {
	providerID := c.Param("providerId")
	from := c.Query("from")
	to := c.Query("to")
	if _, err := models.WeekdayOfDate(from); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid 'from' query param"})
		return
	}
	if _, err := models.WeekdayOfDate(to); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid 'to' query param"})
		return
	}

	overrides, err := h.Service.GetOverrides(c.Request.Context(), providerID, from, to)
	if err != nil {
		respondScheduleError(c, err, "Failed to load overrides")
		return
	}
	c.JSON(http.StatusOK, gin.H{"overrides": overrides})
}
