package schedule

import (
	"errors"
	"fmt"
)

// Error codes returned across the core boundary. Handlers map these to
// HTTP statuses; the core itself never panics or returns untyped faults.
const (
	CodeInvalidWindow = "invalidWindow"
	CodeUnavailable   = "unavailable"
	CodeConflict      = "conflict"
)

// ScheduleError is a typed validation outcome.
type ScheduleError struct {
	Code    string
	Message string
}

func (e *ScheduleError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidWindowError reports an edit that produced an inverted or
// overlapping window.
func NewInvalidWindowError(msg string) error {
	return &ScheduleError{Code: CodeInvalidWindow, Message: msg}
}

// NewUnavailableError reports a requested time outside any effective window.
func NewUnavailableError(msg string) error {
	return &ScheduleError{Code: CodeUnavailable, Message: msg}
}

// NewConflictError reports an overlap with an existing appointment.
func NewConflictError(msg string) error {
	return &ScheduleError{Code: CodeConflict, Message: msg}
}

func hasCode(err error, code string) bool {
	var se *ScheduleError
	return errors.As(err, &se) && se.Code == code
}

func IsInvalidWindow(err error) bool { return hasCode(err, CodeInvalidWindow) }
func IsUnavailable(err error) bool   { return hasCode(err, CodeUnavailable) }
func IsConflict(err error) bool      { return hasCode(err, CodeConflict) }
