package recordsRepo

import (
	"context"

	"snapvroom/database"
	"snapvroom/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CompletedBookingRepository archives bookings that reached their terminal
// status. The archive is write-mostly; the live session never reads from it.
type CompletedBookingRepository interface {
	Create(ctx context.Context, record models.CompletedBookingRecord) (string, error)
	GetByID(ctx context.Context, id string) (*models.CompletedBookingRecord, error)
	GetByBookingID(ctx context.Context, bookingID string) ([]models.CompletedBookingRecord, error)
}

type mongoRecordRepo struct {
	coll *mongo.Collection
}

// NewMongoRecordRepo returns a new CompletedBookingRepository instance using MongoDB.
func NewMongoRecordRepo() CompletedBookingRepository {
	db := database.MongoClient.Database("snapvroom")
	return &mongoRecordRepo{
		coll: db.Collection("completed_bookings"),
	}
}
