package schedule

import (
	"fmt"
	"sort"

	"slotwise/models"
)

// Editor operations take a draft value and return the updated draft,
// leaving the input untouched on failure. Keeping the draft explicit
// (instead of ambient shared state) makes each operation pure and
// independently testable; persistence is the caller's concern.

// ToggleWeekday flips a day's enabled flag. Windows are retained while
// the day is disabled, so toggling twice round-trips to the original.
func ToggleWeekday(weekly models.WeeklySchedule, day models.Weekday) (models.WeeklySchedule, error) {
	ds, ok := weekly.Days[day]
	if !ok {
		return weekly, NewInvalidWindowError(fmt.Sprintf("unknown weekday %q", day))
	}
	ds.Enabled = !ds.Enabled
	updated := cloneWeekly(weekly)
	updated.Days[day] = ds
	return updated, nil
}

// AddWindow appends a window to a day and re-normalizes. The mutation
// is rejected when the window is inverted or overlaps an existing one.
func AddWindow(weekly models.WeeklySchedule, day models.Weekday, window models.TimeWindow) (models.WeeklySchedule, error) {
	ds, ok := weekly.Days[day]
	if !ok {
		return weekly, NewInvalidWindowError(fmt.Sprintf("unknown weekday %q", day))
	}
	windows := append(cloneWindows(ds.Windows), window)
	normalized, err := NormalizeWindows(windows)
	if err != nil {
		return weekly, err
	}
	ds.Windows = normalized
	updated := cloneWeekly(weekly)
	updated.Days[day] = ds
	return updated, nil
}

// EditWindow replaces the window at index and re-normalizes.
func EditWindow(weekly models.WeeklySchedule, day models.Weekday, index int, window models.TimeWindow) (models.WeeklySchedule, error) {
	ds, ok := weekly.Days[day]
	if !ok {
		return weekly, NewInvalidWindowError(fmt.Sprintf("unknown weekday %q", day))
	}
	if index < 0 || index >= len(ds.Windows) {
		return weekly, NewInvalidWindowError(fmt.Sprintf("window index %d out of range", index))
	}
	windows := cloneWindows(ds.Windows)
	windows[index] = window
	normalized, err := NormalizeWindows(windows)
	if err != nil {
		return weekly, err
	}
	ds.Windows = normalized
	updated := cloneWeekly(weekly)
	updated.Days[day] = ds
	return updated, nil
}

// RemoveWindow deletes the window at index.
func RemoveWindow(weekly models.WeeklySchedule, day models.Weekday, index int) (models.WeeklySchedule, error) {
	ds, ok := weekly.Days[day]
	if !ok {
		return weekly, NewInvalidWindowError(fmt.Sprintf("unknown weekday %q", day))
	}
	if index < 0 || index >= len(ds.Windows) {
		return weekly, NewInvalidWindowError(fmt.Sprintf("window index %d out of range", index))
	}
	windows := cloneWindows(ds.Windows)
	ds.Windows = append(windows[:index], windows[index+1:]...)
	updated := cloneWeekly(weekly)
	updated.Days[day] = ds
	return updated, nil
}

// SetBlockedOverride records a full-day block for one date.
func SetBlockedOverride(overrides models.OverrideMap, providerID, date string) (models.OverrideMap, error) {
	if _, err := models.WeekdayOfDate(date); err != nil {
		return overrides, NewInvalidWindowError(err.Error())
	}
	updated := cloneOverrides(overrides)
	updated[date] = models.DateOverride{
		ProviderID: providerID,
		Date:       date,
		Type:       models.OverrideBlocked,
	}
	return updated, nil
}

// SetCustomOverride records date-specific windows that replace the
// weekly routine for that date. Windows are validated and normalized
// exactly like weekly day windows.
func SetCustomOverride(overrides models.OverrideMap, providerID, date string, windows []models.TimeWindow) (models.OverrideMap, error) {
	if _, err := models.WeekdayOfDate(date); err != nil {
		return overrides, NewInvalidWindowError(err.Error())
	}
	normalized, err := NormalizeWindows(cloneWindows(windows))
	if err != nil {
		return overrides, err
	}
	updated := cloneOverrides(overrides)
	updated[date] = models.DateOverride{
		ProviderID: providerID,
		Date:       date,
		Type:       models.OverrideCustom,
		Windows:    normalized,
	}
	return updated, nil
}

// ClearOverride removes a date's exception, restoring the weekly
// routine for that date.
func ClearOverride(overrides models.OverrideMap, date string) models.OverrideMap {
	updated := cloneOverrides(overrides)
	delete(updated, date)
	return updated
}

// NormalizeWindows sorts windows ascending by start and rejects
// inverted or mutually overlapping entries.
func NormalizeWindows(windows []models.TimeWindow) ([]models.TimeWindow, error) {
	for _, w := range windows {
		if !w.Valid() {
			return nil, NewInvalidWindowError(fmt.Sprintf("invalid window %s-%s", w.Start, w.End))
		}
	}
	sorted := cloneWindows(windows)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].Overlaps(sorted[i]) {
			return nil, NewInvalidWindowError(fmt.Sprintf(
				"window %s-%s overlaps %s-%s",
				sorted[i-1].Start, sorted[i-1].End, sorted[i].Start, sorted[i].End))
		}
	}
	return sorted, nil
}

func cloneWindows(windows []models.TimeWindow) []models.TimeWindow {
	if windows == nil {
		return nil
	}
	out := make([]models.TimeWindow, len(windows))
	copy(out, windows)
	return out
}

func cloneWeekly(weekly models.WeeklySchedule) models.WeeklySchedule {
	days := make(map[models.Weekday]models.DaySchedule, len(weekly.Days))
	for d, ds := range weekly.Days {
		ds.Windows = cloneWindows(ds.Windows)
		days[d] = ds
	}
	weekly.Days = days
	return weekly
}

func cloneOverrides(overrides models.OverrideMap) models.OverrideMap {
	updated := make(models.OverrideMap, len(overrides)+1)
	for k, v := range overrides {
		updated[k] = v
	}
	return updated
}
