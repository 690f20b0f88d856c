package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"slotwise/models"
)

func mustWindow(t *testing.T, start, end string) models.TimeWindow {
	t.Helper()
	s, err := models.ParseTimeOfDay(start)
	if err != nil {
		t.Fatalf("bad start %q: %v", start, err)
	}
	e, err := models.ParseTimeOfDay(end)
	if err != nil {
		t.Fatalf("bad end %q: %v", end, err)
	}
	return models.TimeWindow{Start: s, End: e}
}

func weeklyWith(t *testing.T, day models.Weekday, enabled bool, windows ...models.TimeWindow) models.WeeklySchedule {
	t.Helper()
	weekly := models.DefaultWeeklySchedule("prov-1")
	weekly.Days[day] = models.DaySchedule{Enabled: enabled, Windows: windows}
	return weekly
}

func TestResolveDayWeeklyFallback(t *testing.T) {
	// 2025-03-10 is a Monday.
	weekly := weeklyWith(t, models.Monday, true, mustWindow(t, "09:00", "12:00"))

	day := ResolveDay("2025-03-10", weekly, models.OverrideMap{})

	assert.Equal(t, models.DayStandard, day.Status)
	assert.Equal(t, models.SourceWeekly, day.Source)
	assert.Equal(t, []models.TimeWindow{mustWindow(t, "09:00", "12:00")}, day.Windows)
}

func TestResolveDayDisabledWeekday(t *testing.T) {
	weekly := weeklyWith(t, models.Monday, false, mustWindow(t, "09:00", "12:00"))

	day := ResolveDay("2025-03-10", weekly, models.OverrideMap{})

	assert.Equal(t, models.DayBlocked, day.Status)
	assert.Empty(t, day.Windows)
}

func TestResolveDayBlockedOverrideBeatsEnabledWeekly(t *testing.T) {
	weekly := weeklyWith(t, models.Monday, true, mustWindow(t, "09:00", "12:00"))
	overrides := models.OverrideMap{
		"2025-03-10": {Date: "2025-03-10", Type: models.OverrideBlocked},
	}

	day := ResolveDay("2025-03-10", weekly, overrides)

	assert.Equal(t, models.DayBlocked, day.Status)
	assert.Equal(t, models.SourceOverride, day.Source)
	assert.Empty(t, day.Windows)
}

func TestResolveDayCustomOverrideOpensDisabledSaturday(t *testing.T) {
	// 2025-03-15 is a Saturday, disabled in the weekly routine.
	weekly := models.DefaultWeeklySchedule("prov-1")
	overrides := models.OverrideMap{
		"2025-03-15": {
			Date:    "2025-03-15",
			Type:    models.OverrideCustom,
			Windows: []models.TimeWindow{mustWindow(t, "14:00", "16:00")},
		},
	}

	day := ResolveDay("2025-03-15", weekly, overrides)

	assert.Equal(t, models.DayCustom, day.Status)
	assert.Equal(t, models.SourceOverride, day.Source)
	assert.Equal(t, []models.TimeWindow{mustWindow(t, "14:00", "16:00")}, day.Windows)
}

func TestResolveDayOverridePrecedenceLaw(t *testing.T) {
	// For any date with an override present, the resolution equals the
	// override's status and windows regardless of the weekly entry.
	custom := []models.TimeWindow{mustWindow(t, "08:00", "10:00")}
	for _, enabled := range []bool{true, false} {
		weekly := weeklyWith(t, models.Wednesday, enabled, mustWindow(t, "13:00", "17:00"))
		overrides := models.OverrideMap{
			"2025-03-12": {Date: "2025-03-12", Type: models.OverrideCustom, Windows: custom},
		}

		day := ResolveDay("2025-03-12", weekly, overrides)

		assert.Equal(t, models.DayCustom, day.Status, "weekly enabled=%v", enabled)
		assert.Equal(t, custom, day.Windows, "weekly enabled=%v", enabled)
	}
}

func TestResolveDayMissingDataIsBlockedNotError(t *testing.T) {
	day := ResolveDay("2025-03-10", models.WeeklySchedule{}, nil)
	assert.Equal(t, models.DayBlocked, day.Status)

	day = ResolveDay("garbage", models.DefaultWeeklySchedule("p"), nil)
	assert.Equal(t, models.DayBlocked, day.Status)
}
