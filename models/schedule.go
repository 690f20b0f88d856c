package models

import (
	"fmt"
	"time"
)

// DateLayout is the canonical calendar-date format used across the
// service (e.g., "2025-03-10"). Dates are always provider-local.
const DateLayout = "2006-01-02"

// Weekday identifies one of the seven days of the weekly routine.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// AllWeekdays lists the seven weekdays in display order.
var AllWeekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var weekdayByTime = map[time.Weekday]Weekday{
	time.Monday:    Monday,
	time.Tuesday:   Tuesday,
	time.Wednesday: Wednesday,
	time.Thursday:  Thursday,
	time.Friday:    Friday,
	time.Saturday:  Saturday,
	time.Sunday:    Sunday,
}

// ParseWeekday validates a weekday name (e.g., "monday").
func ParseWeekday(s string) (Weekday, error) {
	for _, d := range AllWeekdays {
		if Weekday(s) == d {
			return d, nil
		}
	}
	return "", fmt.Errorf("invalid weekday %q", s)
}

// WeekdayOfDate returns the weekday of a "2006-01-02" date string.
func WeekdayOfDate(date string) (Weekday, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", date, err)
	}
	return weekdayByTime[t.Weekday()], nil
}

// TimeWindow is a half-open interval [Start, End) within one day.
type TimeWindow struct {
	Start TimeOfDay `bson:"start" json:"start"`
	End   TimeOfDay `bson:"end" json:"end"`
}

// Valid reports whether the window is well-formed: both endpoints in
// range and Start strictly before End.
func (w TimeWindow) Valid() bool {
	return w.Start.Valid() && w.End.Valid() && w.Start < w.End
}

// Minutes returns the window's length in minutes.
func (w TimeWindow) Minutes() int {
	return int(w.End - w.Start)
}

// Contains reports whether [start, end) lies fully inside the window.
func (w TimeWindow) Contains(start, end TimeOfDay) bool {
	return start >= w.Start && end <= w.End
}

// Overlaps reports whether two half-open windows intersect.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.Start < other.End && other.Start < w.End
}

// DaySchedule is one weekday's routine: an enabled flag plus an ordered,
// non-overlapping list of windows sorted ascending by start.
//
// Windows are retained while the day is disabled (soft-disable), so
// re-enabling a day restores them unchanged. Never clear Windows on
// disable; that silently loses the provider's setup.
type DaySchedule struct {
	Enabled bool         `bson:"enabled" json:"enabled"`
	Windows []TimeWindow `bson:"windows" json:"windows"`
}

// WeeklySchedule is a provider's recurring routine: exactly one
// DaySchedule per weekday. Mutated only through the schedule editor.
type WeeklySchedule struct {
	ProviderID string                  `bson:"providerId" json:"providerId"`
	Days       map[Weekday]DaySchedule `bson:"days" json:"days"`
	UpdatedAt  time.Time               `bson:"updatedAt" json:"updatedAt"`
}

// DefaultWeeklySchedule returns the fail-safe default: every day
// disabled with no windows. Missing data resolves to fully blocked.
func DefaultWeeklySchedule(providerID string) WeeklySchedule {
	days := make(map[Weekday]DaySchedule, len(AllWeekdays))
	for _, d := range AllWeekdays {
		days[d] = DaySchedule{Enabled: false, Windows: nil}
	}
	return WeeklySchedule{ProviderID: providerID, Days: days}
}

// OverrideType distinguishes the two kinds of date-specific exception.
type OverrideType string

const (
	OverrideBlocked OverrideType = "blocked"
	OverrideCustom  OverrideType = "custom"
)

// DateOverride replaces the weekly routine's result for one date.
// Windows is empty when Type is blocked.
type DateOverride struct {
	ProviderID string       `bson:"providerId" json:"providerId"`
	Date       string       `bson:"date" json:"date"`
	Type       OverrideType `bson:"type" json:"type"`
	Windows    []TimeWindow `bson:"windows,omitempty" json:"windows,omitempty"`
	CreatedAt  time.Time    `bson:"createdAt" json:"createdAt"`
}

// OverrideMap indexes overrides by date string; absence means the
// weekly routine applies.
type OverrideMap map[string]DateOverride

// DayStatus classifies a resolved day.
type DayStatus string

const (
	DayBlocked  DayStatus = "blocked"
	DayStandard DayStatus = "standard"
	DayCustom   DayStatus = "custom"
)

// ScheduleSource records which layer produced a resolved day.
type ScheduleSource string

const (
	SourceOverride ScheduleSource = "override"
	SourceWeekly   ScheduleSource = "weekly"
)

// EffectiveDaySchedule is the resolved, date-specific outcome after
// override precedence is applied. Derived, never stored.
type EffectiveDaySchedule struct {
	Status  DayStatus      `json:"status"`
	Windows []TimeWindow   `json:"windows"`
	Source  ScheduleSource `json:"source"`
}

// Slot is one discrete, offerable booking start/end pair produced by
// expanding a window. Derived, never stored.
type Slot struct {
	Start TimeOfDay `json:"start"`
	End   TimeOfDay `json:"end"`
}
