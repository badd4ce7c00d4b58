package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"salonify/database"
	"salonify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const opTimeout = 5 * time.Second

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

// NewMongoBookingRepo creates a BookingRepository over the bookings collection.
func NewMongoBookingRepo(logger *zap.Logger) BookingRepository {
	repo := &MongoBookingRepo{
		coll:   database.Collection(database.BookingsCollection),
		logger: logger,
	}
	if err := repo.ensureIndexes(); err != nil {
		logger.Warn("bookingRepo: failed to create indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := database.NewContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "bookingId", Value: 1}}},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "date", Value: 1}, {Key: "status", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := database.NewContext(ctx, opTimeout)
	defer cancel()

	booking.DocID = primitive.NewObjectID().Hex()
	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		booking.DocID = ""
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (r *MongoBookingRepo) GetByDocID(ctx context.Context, docID string) (*models.Booking, error) {
	ctx, cancel := database.NewContext(ctx, opTimeout)
	defer cancel()

	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"_id": docID}).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", docID, err)
	}
	return &booking, nil
}

func (r *MongoBookingRepo) List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Date != "" {
		query["date"] = filter.Date
	}
	if filter.UserID != "" {
		query["userId"] = filter.UserID
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.find(ctx, query, opts)
}

func (r *MongoBookingRepo) ListByDate(ctx context.Context, date string) ([]models.Booking, error) {
	opts := options.Find().SetProjection(bson.M{"time": 1, "status": 1, "date": 1})
	return r.find(ctx, bson.M{"date": date}, opts)
}

func (r *MongoBookingRepo) find(ctx context.Context, query bson.M, opts *options.FindOptions) ([]models.Booking, error) {
	ctx, cancel := database.NewContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

func (r *MongoBookingRepo) UpdateStatus(ctx context.Context, docID string, from, to models.BookingStatus, at time.Time) error {
	ctx, cancel := database.NewContext(ctx, opTimeout)
	defer cancel()

	// Matching on the current status makes the transition a compare-and-set.
	filter := bson.M{"_id": docID, "status": from}
	update := bson.M{"$set": bson.M{"status": to, "updatedAt": at}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update booking %s status: %w", docID, err)
	}
	if result.MatchedCount == 0 {
		return r.missOrConflict(ctx, docID)
	}
	return nil
}

func (r *MongoBookingRepo) UpdateSchedule(ctx context.Context, docID, date, slot string, at time.Time) error {
	ctx, cancel := database.NewContext(ctx, opTimeout)
	defer cancel()

	// Canceled bookings keep their last schedule.
	filter := bson.M{"_id": docID, "status": bson.M{"$ne": models.StatusCanceled}}
	update := bson.M{"$set": bson.M{"date": date, "time": slot, "updatedAt": at}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to reschedule booking %s: %w", docID, err)
	}
	if result.MatchedCount == 0 {
		return r.missOrConflict(ctx, docID)
	}
	return nil
}

func (r *MongoBookingRepo) missOrConflict(ctx context.Context, docID string) error {
	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": docID})
	if err != nil {
		return fmt.Errorf("failed to check booking %s: %w", docID, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return ErrStatusConflict
}

func (r *MongoBookingRepo) Delete(ctx context.Context, docID string) error {
	ctx, cancel := database.NewContext(ctx, opTimeout)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": docID})
	if err != nil {
		return fmt.Errorf("failed to delete booking %s: %w", docID, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
