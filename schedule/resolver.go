package schedule

import (
	"slotwise/models"
)

// ResolveDay combines the weekly routine and the override map into the
// effective schedule for one date.
//
// Precedence is absolute: an override always determines the day's
// outcome, even when it contradicts the weekly routine — a custom
// override can open a day the routine disables, and a blocked override
// can close a day the routine enables. Absent data is never an error;
// it resolves to fully blocked.
func ResolveDay(date string, weekly models.WeeklySchedule, overrides models.OverrideMap) models.EffectiveDaySchedule {
	if ov, ok := overrides[date]; ok {
		if ov.Type == models.OverrideBlocked {
			return models.EffectiveDaySchedule{
				Status:  models.DayBlocked,
				Windows: nil,
				Source:  models.SourceOverride,
			}
		}
		return models.EffectiveDaySchedule{
			Status:  models.DayCustom,
			Windows: ov.Windows,
			Source:  models.SourceOverride,
		}
	}

	weekday, err := models.WeekdayOfDate(date)
	if err != nil {
		// Unparseable date: fail safe, fully blocked.
		return models.EffectiveDaySchedule{Status: models.DayBlocked, Source: models.SourceWeekly}
	}

	day, ok := weekly.Days[weekday]
	if !ok || !day.Enabled {
		return models.EffectiveDaySchedule{Status: models.DayBlocked, Source: models.SourceWeekly}
	}
	return models.EffectiveDaySchedule{
		Status:  models.DayStandard,
		Windows: day.Windows,
		Source:  models.SourceWeekly,
	}
}
