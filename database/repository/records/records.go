package recordsRepo

import (
	"context"
	"time"

	"snapvroom/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new completed-booking record and returns its ID.
func (r *mongoRecordRepo) Create(ctx context.Context, record models.CompletedBookingRecord) (string, error) {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	record.CompletedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, record)
	if err != nil {
		return "", err
	}
	return record.ID, nil
}

// GetByID returns an archived record by its ID.
func (r *mongoRecordRepo) GetByID(ctx context.Context, id string) (*models.CompletedBookingRecord, error) {
	var record models.CompletedBookingRecord
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&record)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetByBookingID fetches all records archived for a given upstream booking id.
func (r *mongoRecordRepo) GetByBookingID(ctx context.Context, bookingID string) ([]models.CompletedBookingRecord, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"bookingId": bookingID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.CompletedBookingRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
