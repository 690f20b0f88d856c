// File: services/schedule/service.go
package scheduleService

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	appointmentRepo "slotwise/database/repository/appointment"
	scheduleRepo "slotwise/database/repository/schedule"
	"slotwise/models"
	"slotwise/schedule"
	"slotwise/utils"
)

// DefaultScheduleService is the production implementation.
type DefaultScheduleService struct {
	Repo                 scheduleRepo.Repository
	Ledger               appointmentRepo.Repository
	Cache                *redis.Client
	DayCacheTTL          time.Duration
	DefaultBufferMinutes int
}

func (s *DefaultScheduleService) bufferOrDefault(bufferMinutes int) int {
	if bufferMinutes > 0 {
		return bufferMinutes
	}
	if s.DefaultBufferMinutes > 0 {
		return s.DefaultBufferMinutes
	}
	return schedule.DefaultBufferMinutes
}

// resolveDay loads the stores and runs the pure resolver for one date.
func (s *DefaultScheduleService) resolveDay(ctx context.Context, providerID, date string) (models.EffectiveDaySchedule, error) {
	weekly, err := s.Repo.GetWeeklySchedule(ctx, providerID)
	if err != nil {
		return models.EffectiveDaySchedule{}, fmt.Errorf("failed to load weekly schedule: %w", err)
	}
	overrides := models.OverrideMap{}
	override, err := s.Repo.GetOverride(ctx, providerID, date)
	if err != nil {
		return models.EffectiveDaySchedule{}, fmt.Errorf("failed to load override: %w", err)
	}
	if override != nil {
		overrides[date] = *override
	}
	return schedule.ResolveDay(date, weekly, overrides), nil
}

// GetEffectiveDay resolves one date and reports whether booked
// appointments exist on it. Results are cached until the provider edits
// their schedule.
func (s *DefaultScheduleService) GetEffectiveDay(ctx context.Context, providerID, date string) (*DayView, error) {
	if view, ok := s.cachedDayView(ctx, providerID, date); ok {
		return view, nil
	}

	day, err := s.resolveDay(ctx, providerID, date)
	if err != nil {
		return nil, err
	}

	appts, err := s.Ledger.GetByProviderAndDate(ctx, providerID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load appointments: %w", err)
	}

	view := &DayView{
		Date:            date,
		Status:          day.Status,
		Source:          day.Source,
		Windows:         day.Windows,
		HasAppointments: len(appts) > 0,
	}
	s.cacheDayView(ctx, providerID, date, view)
	return view, nil
}

// GetDaySlots expands the resolved day into the selectable-time grid.
func (s *DefaultScheduleService) GetDaySlots(ctx context.Context, providerID, date string, durationMinutes, bufferMinutes int) ([]models.Slot, error) {
	if durationMinutes <= 0 {
		return nil, schedule.NewInvalidWindowError("duration must be positive")
	}
	day, err := s.resolveDay(ctx, providerID, date)
	if err != nil {
		return nil, err
	}
	return schedule.GenerateDaySlots(day, durationMinutes, s.bufferOrDefault(bufferMinutes)), nil
}

// ValidateBooking runs the synchronous pre-check against fresh store
// and ledger state. Acceptance is optimistic: the booking collaborator
// still commits through the ledger's conditional insert, which is the
// authoritative double-booking guard.
func (s *DefaultScheduleService) ValidateBooking(ctx context.Context, providerID string, req schedule.BookingRequest) (*schedule.Confirmation, error) {
	logger := utils.GetLogger()

	weekly, err := s.Repo.GetWeeklySchedule(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load weekly schedule: %w", err)
	}
	overrides := models.OverrideMap{}
	override, err := s.Repo.GetOverride(ctx, providerID, req.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to load override: %w", err)
	}
	if override != nil {
		overrides[req.Date] = *override
	}
	ledger, err := s.Ledger.GetByProviderAndDate(ctx, providerID, req.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to load appointments: %w", err)
	}

	req.BufferMinutes = s.bufferOrDefault(req.BufferMinutes)
	confirmation, err := schedule.ValidateBooking(req, weekly, overrides, ledger, schedule.AlignStrict)
	if err != nil {
		logger.Debug("booking validation rejected",
			zap.String("providerId", providerID),
			zap.String("date", req.Date),
			zap.String("start", req.Start.String()),
			zap.Error(err))
		return nil, err
	}

	logger.Info("booking validated",
		zap.String("providerId", providerID),
		zap.String("date", req.Date),
		zap.String("start", req.Start.String()),
		zap.String("token", confirmation.Token))
	return confirmation, nil
}

// GetOverrides lists a provider's overrides in an inclusive date range.
func (s *DefaultScheduleService) GetOverrides(ctx context.Context, providerID, from, to string) (models.OverrideMap, error) {
	return s.Repo.GetOverridesInRange(ctx, providerID, from, to)
}
