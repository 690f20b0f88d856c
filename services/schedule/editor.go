// File: services/schedule/editor.go
package scheduleService

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"slotwise/models"
	"slotwise/schedule"
	"slotwise/utils"
)

// Editor operations load the current draft, apply the pure editor, and
// persist the result. Persistence is last-write-wins per document; no
// merge semantics for concurrent editors of the same provider.

func (s *DefaultScheduleService) GetWeeklySchedule(ctx context.Context, providerID string) (models.WeeklySchedule, error) {
	return s.Repo.GetWeeklySchedule(ctx, providerID)
}

func (s *DefaultScheduleService) ToggleWeekday(ctx context.Context, providerID string, day models.Weekday) (models.WeeklySchedule, error) {
	return s.applyWeeklyEdit(ctx, providerID, func(weekly models.WeeklySchedule) (models.WeeklySchedule, error) {
		return schedule.ToggleWeekday(weekly, day)
	})
}

func (s *DefaultScheduleService) AddWindow(ctx context.Context, providerID string, day models.Weekday, window models.TimeWindow) (models.WeeklySchedule, error) {
	return s.applyWeeklyEdit(ctx, providerID, func(weekly models.WeeklySchedule) (models.WeeklySchedule, error) {
		return schedule.AddWindow(weekly, day, window)
	})
}

func (s *DefaultScheduleService) EditWindow(ctx context.Context, providerID string, day models.Weekday, index int, window models.TimeWindow) (models.WeeklySchedule, error) {
	return s.applyWeeklyEdit(ctx, providerID, func(weekly models.WeeklySchedule) (models.WeeklySchedule, error) {
		return schedule.EditWindow(weekly, day, index, window)
	})
}

func (s *DefaultScheduleService) RemoveWindow(ctx context.Context, providerID string, day models.Weekday, index int) (models.WeeklySchedule, error) {
	return s.applyWeeklyEdit(ctx, providerID, func(weekly models.WeeklySchedule) (models.WeeklySchedule, error) {
		return schedule.RemoveWindow(weekly, day, index)
	})
}

func (s *DefaultScheduleService) applyWeeklyEdit(ctx context.Context, providerID string, edit func(models.WeeklySchedule) (models.WeeklySchedule, error)) (models.WeeklySchedule, error) {
	weekly, err := s.Repo.GetWeeklySchedule(ctx, providerID)
	if err != nil {
		return models.WeeklySchedule{}, fmt.Errorf("failed to load weekly schedule: %w", err)
	}
	updated, err := edit(weekly)
	if err != nil {
		return models.WeeklySchedule{}, err
	}
	if err := s.Repo.SaveWeeklySchedule(ctx, updated); err != nil {
		return models.WeeklySchedule{}, fmt.Errorf("failed to save weekly schedule: %w", err)
	}
	s.invalidateProviderDays(ctx, providerID)
	return updated, nil
}

// SetOverride blocks a date or replaces it with custom windows. A
// custom override created without windows is seeded from the date's
// current resolver output, a convenience default the provider can edit
// afterwards.
func (s *DefaultScheduleService) SetOverride(ctx context.Context, providerID, date string, overrideType models.OverrideType, windows []models.TimeWindow) (*models.DateOverride, error) {
	logger := utils.GetLogger()

	overrides := models.OverrideMap{}
	existing, err := s.Repo.GetOverride(ctx, providerID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load override: %w", err)
	}
	if existing != nil {
		overrides[date] = *existing
	}

	switch overrideType {
	case models.OverrideBlocked:
		overrides, err = schedule.SetBlockedOverride(overrides, providerID, date)
	case models.OverrideCustom:
		if len(windows) == 0 {
			day, rerr := s.resolveDay(ctx, providerID, date)
			if rerr != nil {
				return nil, rerr
			}
			windows = day.Windows
		}
		overrides, err = schedule.SetCustomOverride(overrides, providerID, date, windows)
	default:
		return nil, schedule.NewInvalidWindowError(fmt.Sprintf("unknown override type %q", overrideType))
	}
	if err != nil {
		return nil, err
	}

	override := overrides[date]
	if err := s.Repo.UpsertOverride(ctx, override); err != nil {
		return nil, fmt.Errorf("failed to save override: %w", err)
	}
	s.invalidateDay(ctx, providerID, date)

	logger.Info("override set",
		zap.String("providerId", providerID),
		zap.String("date", date),
		zap.String("type", string(overrideType)))
	return &override, nil
}

// ClearOverride resets a date to the weekly routine.
func (s *DefaultScheduleService) ClearOverride(ctx context.Context, providerID, date string) error {
	if err := s.Repo.DeleteOverride(ctx, providerID, date); err != nil {
		return err
	}
	s.invalidateDay(ctx, providerID, date)
	return nil
}
