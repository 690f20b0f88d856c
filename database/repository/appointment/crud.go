// File: database/repository/appointment/crud.go
package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"slotwise/models"
)

func (r *mongoAppointmentRepo) GetByProviderAndDate(ctx context.Context, providerID, date string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"providerId": providerID,
		"date":       date,
		"status":     bson.M{"$ne": models.AppointmentCanceled},
	}
	opts := options.Find().SetSort(bson.D{{Key: "start", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}

func (r *mongoAppointmentRepo) GetByProviderInRange(ctx context.Context, providerID, from, to string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"providerId": providerID,
		"date":       bson.M{"$gte": from, "$lte": to},
		"status":     bson.M{"$ne": models.AppointmentCanceled},
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "start", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}

// TryInsert commits an appointment inside a transaction that re-checks
// for overlap. Two racing requests that both passed the validator's
// pre-check cannot both land: the loser either sees the winner's row in
// the overlap count or trips the unique (providerId, date, start) index.
func (r *mongoAppointmentRepo) TryInsert(ctx context.Context, appt models.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if appt.ID == "" {
		appt.ID = uuid.New().String()
	}
	if appt.CreatedAt.IsZero() {
		appt.CreatedAt = time.Now().UTC()
	}
	if appt.Status == "" {
		appt.Status = models.AppointmentScheduled
	}

	session, err := r.coll.Database().Client().StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		end := int(appt.End())
		overlapFilter := bson.M{
			"providerId": appt.ProviderID,
			"date":       appt.Date,
			"status":     bson.M{"$ne": models.AppointmentCanceled},
			"start":      bson.M{"$lt": end},
			"$expr": bson.M{
				"$gt": bson.A{
					bson.M{"$add": bson.A{"$start", "$durationMinutes"}},
					int(appt.Start),
				},
			},
		}
		count, err := r.coll.CountDocuments(sc, overlapFilter)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, fmt.Errorf("appointment %s %s overlaps an existing booking", appt.Date, appt.Start)
		}
		return r.coll.InsertOne(sc, appt)
	})
	return err
}
