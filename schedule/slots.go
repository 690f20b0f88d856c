package schedule

import (
	"slotwise/models"
)

// DefaultBufferMinutes is the spacing applied between consecutive slots
// when the caller does not specify one.
const DefaultBufferMinutes = 10

// GenerateSlots expands one window into the discrete session slots it
// can hold. Starting at window.Start, a slot of durationMinutes is
// emitted whenever it ends on or before window.End, and the next
// candidate start advances by durationMinutes + bufferMinutes.
//
// The buffer is spacing between slots only: the final slot is accepted
// because the session itself fits, never rejected because a further
// buffer-separated slot would not. Alignment is relative to
// window.Start, not to clock-hour boundaries.
func GenerateSlots(window models.TimeWindow, durationMinutes, bufferMinutes int) []models.Slot {
	if durationMinutes <= 0 || bufferMinutes < 0 || !window.Valid() {
		return nil
	}
	if durationMinutes > window.Minutes() {
		return nil
	}

	var slots []models.Slot
	for start := window.Start; start.AddMinutes(durationMinutes) <= window.End; start = start.AddMinutes(durationMinutes + bufferMinutes) {
		slots = append(slots, models.Slot{
			Start: start,
			End:   start.AddMinutes(durationMinutes),
		})
	}
	return slots
}

// GenerateDaySlots expands every window of a resolved day, preserving
// window order. Used to populate the selectable-time grid.
func GenerateDaySlots(day models.EffectiveDaySchedule, durationMinutes, bufferMinutes int) []models.Slot {
	if day.Status == models.DayBlocked {
		return nil
	}
	var slots []models.Slot
	for _, w := range day.Windows {
		slots = append(slots, GenerateSlots(w, durationMinutes, bufferMinutes)...)
	}
	return slots
}
