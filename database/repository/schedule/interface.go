// File: database/repository/schedule/interface.go
package scheduleRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"slotwise/database"
	"slotwise/models"
)

// Repository persists weekly schedules and date overrides.
type Repository interface {
	GetWeeklySchedule(ctx context.Context, providerID string) (models.WeeklySchedule, error)
	SaveWeeklySchedule(ctx context.Context, schedule models.WeeklySchedule) error
	GetOverride(ctx context.Context, providerID, date string) (*models.DateOverride, error)
	GetOverridesInRange(ctx context.Context, providerID, from, to string) (models.OverrideMap, error)
	UpsertOverride(ctx context.Context, override models.DateOverride) error
	DeleteOverride(ctx context.Context, providerID, date string) error
	DeleteOverridesBefore(ctx context.Context, cutoff time.Time) (int64, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoScheduleRepo struct {
	weekly    *mongo.Collection
	overrides *mongo.Collection
}

// NewMongoScheduleRepo constructs a new MongoDB schedule Repository.
func NewMongoScheduleRepo() Repository {
	db := database.GetDatabase()
	return &mongoScheduleRepo{
		weekly:    db.Collection("weekly_schedules"),
		overrides: db.Collection("date_overrides"),
	}
}
