package schedule

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"slotwise/models"
)

// AlignmentPolicy controls whether a requested start must land on the
// slot grid the generator would offer for its window.
type AlignmentPolicy int

const (
	// AlignStrict accepts only starts equal to a generated slot start.
	// Clients are only ever shown grid-aligned slots, so this is the
	// default contract.
	AlignStrict AlignmentPolicy = iota
	// AlignAny accepts any start fully contained in an open window.
	AlignAny
)

// BookingRequest is a candidate booking to validate.
type BookingRequest struct {
	Date            string           `json:"date"`
	Start           models.TimeOfDay `json:"time"`
	DurationMinutes int              `json:"durationMinutes"`
	BufferMinutes   int              `json:"bufferMinutes,omitempty"`
}

// End returns the requested end time.
func (r BookingRequest) End() models.TimeOfDay {
	return r.Start.AddMinutes(r.DurationMinutes)
}

// Confirmation is returned on acceptance. The token is handed to the
// booking collaborator, which performs the authoritative transactional
// write; this validation is an optimistic pre-check only.
type Confirmation struct {
	Token           string           `json:"confirmationToken"`
	Date            string           `json:"date"`
	Start           models.TimeOfDay `json:"start"`
	End             models.TimeOfDay `json:"end"`
	DurationMinutes int              `json:"durationMinutes"`
	IssuedAt        time.Time        `json:"issuedAt"`
}

// ValidateBooking checks a requested booking against the effective
// schedule and the appointment ledger for the same provider and date.
//
// The request fails with Unavailable when the day resolves blocked or
// no single effective window fully contains the session (and, under
// AlignStrict, when the start is off the slot grid). It fails with
// Conflict when it overlaps any non-canceled appointment. Otherwise it
// returns a confirmation for the booking collaborator to commit.
func ValidateBooking(
	req BookingRequest,
	weekly models.WeeklySchedule,
	overrides models.OverrideMap,
	ledger []models.Appointment,
	policy AlignmentPolicy,
) (*Confirmation, error) {
	if req.DurationMinutes <= 0 {
		return nil, NewUnavailableError("duration must be positive")
	}
	if !req.Start.Valid() {
		return nil, NewUnavailableError(fmt.Sprintf("start time %s out of range", req.Start))
	}

	day := ResolveDay(req.Date, weekly, overrides)
	if day.Status == models.DayBlocked {
		return nil, NewUnavailableError(fmt.Sprintf("no availability on %s", req.Date))
	}

	window, ok := containingWindow(day.Windows, req.Start, req.End())
	if !ok {
		return nil, NewUnavailableError(fmt.Sprintf(
			"requested time %s-%s is outside the available windows on %s",
			req.Start, req.End(), req.Date))
	}

	if policy == AlignStrict {
		buffer := req.BufferMinutes
		if buffer == 0 {
			buffer = DefaultBufferMinutes
		}
		if !onSlotGrid(window, req.Start, req.DurationMinutes, buffer) {
			return nil, NewUnavailableError(fmt.Sprintf(
				"requested start %s is not an offered slot", req.Start))
		}
	}

	for _, appt := range ledger {
		if !appt.CountsForConflict() || appt.Date != req.Date {
			continue
		}
		// Half-open overlap: existing.start < req.end && req.start < existing.end.
		if appt.Start < req.End() && req.Start < appt.End() {
			return nil, NewConflictError(fmt.Sprintf(
				"overlaps existing appointment %s-%s", appt.Start, appt.End()))
		}
	}

	return &Confirmation{
		Token:           uuid.New().String(),
		Date:            req.Date,
		Start:           req.Start,
		End:             req.End(),
		DurationMinutes: req.DurationMinutes,
		IssuedAt:        time.Now().UTC(),
	}, nil
}

// containingWindow finds the window that fully contains [start, end).
// Windows are non-overlapping, so at most one can qualify.
func containingWindow(windows []models.TimeWindow, start, end models.TimeOfDay) (models.TimeWindow, bool) {
	for _, w := range windows {
		if w.Contains(start, end) {
			return w, true
		}
	}
	return models.TimeWindow{}, false
}

// onSlotGrid reports whether start coincides with a slot the generator
// would offer for this window, duration, and buffer.
func onSlotGrid(window models.TimeWindow, start models.TimeOfDay, durationMinutes, bufferMinutes int) bool {
	for _, slot := range GenerateSlots(window, durationMinutes, bufferMinutes) {
		if slot.Start == start {
			return true
		}
	}
	return false
}
