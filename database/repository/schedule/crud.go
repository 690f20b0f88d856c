// File: database/repository/schedule/crud.go
package scheduleRepo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"slotwise/models"
)

// GetWeeklySchedule loads a provider's weekly routine. A provider with
// no stored document gets the all-disabled default rather than an
// error: missing data means fully blocked.
func (r *mongoScheduleRepo) GetWeeklySchedule(ctx context.Context, providerID string) (models.WeeklySchedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var schedule models.WeeklySchedule
	err := r.weekly.FindOne(ctx, bson.M{"providerId": providerID}).Decode(&schedule)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.DefaultWeeklySchedule(providerID), nil
	}
	if err != nil {
		return models.WeeklySchedule{}, err
	}
	return schedule, nil
}

// SaveWeeklySchedule upserts the whole document. Last write wins;
// concurrent edits of the same draft carry no merge semantics.
func (r *mongoScheduleRepo) SaveWeeklySchedule(ctx context.Context, schedule models.WeeklySchedule) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	schedule.UpdatedAt = time.Now().UTC()
	opts := options.Replace().SetUpsert(true)
	_, err := r.weekly.ReplaceOne(ctx, bson.M{"providerId": schedule.ProviderID}, schedule, opts)
	return err
}

func (r *mongoScheduleRepo) GetOverride(ctx context.Context, providerID, date string) (*models.DateOverride, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var override models.DateOverride
	err := r.overrides.FindOne(ctx, bson.M{"providerId": providerID, "date": date}).Decode(&override)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &override, nil
}

// GetOverridesInRange returns all overrides with from <= date <= to,
// keyed by date. Date strings in "2006-01-02" order lexicographically.
func (r *mongoScheduleRepo) GetOverridesInRange(ctx context.Context, providerID, from, to string) (models.OverrideMap, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"providerId": providerID,
		"date":       bson.M{"$gte": from, "$lte": to},
	}
	cursor, err := r.overrides.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	overrides := make(models.OverrideMap)
	for cursor.Next(ctx) {
		var override models.DateOverride
		if err := cursor.Decode(&override); err != nil {
			return nil, err
		}
		overrides[override.Date] = override
	}
	return overrides, cursor.Err()
}

func (r *mongoScheduleRepo) UpsertOverride(ctx context.Context, override models.DateOverride) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if override.CreatedAt.IsZero() {
		override.CreatedAt = time.Now().UTC()
	}
	filter := bson.M{"providerId": override.ProviderID, "date": override.Date}
	opts := options.Replace().SetUpsert(true)
	_, err := r.overrides.ReplaceOne(ctx, filter, override, opts)
	return err
}

func (r *mongoScheduleRepo) DeleteOverride(ctx context.Context, providerID, date string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.overrides.DeleteOne(ctx, bson.M{"providerId": providerID, "date": date})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DeleteOverridesBefore removes overrides for dates older than the
// cutoff. Invoked by the retention worker; past-date overrides are
// never read again once the date has gone by.
func (r *mongoScheduleRepo) DeleteOverridesBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	filter := bson.M{"date": bson.M{"$lt": cutoff.Format(models.DateLayout)}}
	res, err := r.overrides.DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
