package models

import "time"

// AppointmentStatus is the lifecycle state of a booked appointment.
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCanceled  AppointmentStatus = "canceled"
	AppointmentNoShow    AppointmentStatus = "no_show"
)

// Appointment is a booked commitment against a provider's time. This
// service only reads appointments for conflict checks; they are created
// and mutated by the booking collaborator.
type Appointment struct {
	ID              string            `bson:"id" json:"id"`
	ProviderID      string            `bson:"providerId" json:"providerId"`
	Date            string            `bson:"date" json:"date"` // provider-local, "2006-01-02"
	Start           TimeOfDay         `bson:"start" json:"start"`
	DurationMinutes int               `bson:"durationMinutes" json:"durationMinutes"`
	Status          AppointmentStatus `bson:"status" json:"status"`
	CreatedAt       time.Time         `bson:"createdAt" json:"createdAt"`
}

// End returns the appointment's end time.
func (a Appointment) End() TimeOfDay {
	return a.Start.AddMinutes(a.DurationMinutes)
}

// CountsForConflict reports whether the appointment blocks other
// bookings. Canceled appointments free their time.
func (a Appointment) CountsForConflict() bool {
	return a.Status != AppointmentCanceled
}
