// File: services/schedule/interface.go
package scheduleService

import (
	"context"

	"slotwise/models"
	"slotwise/schedule"
)

// DayView is the per-date payload the presentation collaborator renders
// as a calendar day indicator.
type DayView struct {
	Date            string                `json:"date"`
	Status          models.DayStatus      `json:"status"`
	Source          models.ScheduleSource `json:"source"`
	Windows         []models.TimeWindow   `json:"windows"`
	HasAppointments bool                  `json:"hasAppointments"`
}

// ScheduleService exposes availability resolution, slot generation,
// booking validation, and the schedule editor over persisted state.
type ScheduleService interface {
	GetEffectiveDay(ctx context.Context, providerID, date string) (*DayView, error)
	GetDaySlots(ctx context.Context, providerID, date string, durationMinutes, bufferMinutes int) ([]models.Slot, error)
	ValidateBooking(ctx context.Context, providerID string, req schedule.BookingRequest) (*schedule.Confirmation, error)

	GetWeeklySchedule(ctx context.Context, providerID string) (models.WeeklySchedule, error)
	ToggleWeekday(ctx context.Context, providerID string, day models.Weekday) (models.WeeklySchedule, error)
	AddWindow(ctx context.Context, providerID string, day models.Weekday, window models.TimeWindow) (models.WeeklySchedule, error)
	EditWindow(ctx context.Context, providerID string, day models.Weekday, index int, window models.TimeWindow) (models.WeeklySchedule, error)
	RemoveWindow(ctx context.Context, providerID string, day models.Weekday, index int) (models.WeeklySchedule, error)

	GetOverrides(ctx context.Context, providerID, from, to string) (models.OverrideMap, error)
	SetOverride(ctx context.Context, providerID, date string, overrideType models.OverrideType, windows []models.TimeWindow) (*models.DateOverride, error)
	ClearOverride(ctx context.Context, providerID, date string) error
}
