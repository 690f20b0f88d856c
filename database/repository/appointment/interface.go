// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"slotwise/database"
	"slotwise/models"
)

// Repository is the read side of the appointment ledger plus the
// authoritative conditional insert used by the booking collaborator.
type Repository interface {
	// GetByProviderAndDate returns the non-canceled appointments for a
	// provider on one date, the subset the conflict check reads.
	GetByProviderAndDate(ctx context.Context, providerID, date string) ([]models.Appointment, error)
	GetByProviderInRange(ctx context.Context, providerID, from, to string) ([]models.Appointment, error)
	// TryInsert commits a new appointment only if it does not overlap a
	// non-canceled one. This write-path re-check, together with the
	// unique (providerId, date, start) index, is the authoritative
	// double-booking guard; the validator's accept is a pre-check only.
	TryInsert(ctx context.Context, appt models.Appointment) error
	EnsureIndexes(ctx context.Context) error
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB appointment Repository.
func NewMongoAppointmentRepo() Repository {
	db := database.GetDatabase()
	return &mongoAppointmentRepo{
		coll: db.Collection("appointments"),
	}
}
