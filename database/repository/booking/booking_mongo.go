package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"saathi/database"
	"saathi/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	client  *mongo.Client
	coll    *mongo.Collection
	workers *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using
// MongoDB. The workers collection is held for the completion transaction.
func NewMongoBookingRepo() BookingRepository {
	db := database.DB()
	repo := &MongoBookingRepo{
		client:  database.MongoClient,
		coll:    db.Collection("bookings"),
		workers: db.Collection("workers"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create booking indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "customerId", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "workerId", Value: 1}, {Key: "status", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new booking document.
func (r *MongoBookingRepo) Create(booking *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// GetByID retrieves a booking by its unique ID.
func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &booking, nil
}

// HasActiveBooking reports whether the customer holds an in-flight booking.
func (r *MongoBookingRepo) HasActiveBooking(customerID string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"customerId": customerID,
		"status":     bson.M{"$in": models.ActiveBookingStatuses()},
	}
	count, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check active bookings: %w", err)
	}
	return count > 0, nil
}

func (r *MongoBookingRepo) list(filter bson.M) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

// ListByCustomer returns all bookings made by the customer.
func (r *MongoBookingRepo) ListByCustomer(customerID string) ([]models.Booking, error) {
	return r.list(bson.M{"customerId": customerID})
}

// ListByWorker returns all bookings assigned to the worker profile.
func (r *MongoBookingRepo) ListByWorker(workerID string) ([]models.Booking, error) {
	return r.list(bson.M{"workerId": workerID})
}

// ListCompletedByWorker returns the worker's COMPLETED bookings.
func (r *MongoBookingRepo) ListCompletedByWorker(workerID string) ([]models.Booking, error) {
	return r.list(bson.M{"workerId": workerID, "status": models.BookingCompleted})
}

// UpdateStatus writes the booking status.
func (r *MongoBookingRepo) UpdateStatus(id string, status models.BookingStatus) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("failed to update booking %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("booking with id %s not found", id)
	}
	return nil
}

// Complete marks the booking COMPLETED and increments the worker's job
// counter in a single transaction. The status filter guarantees the
// increment fires at most once even under concurrent completion
// attempts; an already-COMPLETED booking reports false with no writes.
func (r *MongoBookingRepo) Complete(id, workerID string, completedAt time.Time) (bool, error) {
	ctx, cancel := newContext(15 * time.Second)
	defer cancel()

	session, err := r.client.StartSession()
	if err != nil {
		return false, fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	completed, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		filter := bson.M{"id": id, "status": bson.M{"$ne": models.BookingCompleted}}
		update := bson.M{"$set": bson.M{
			"status":      models.BookingCompleted,
			"completedAt": completedAt,
		}}
		result, err := r.coll.UpdateOne(sc, filter, update)
		if err != nil {
			return false, fmt.Errorf("failed to complete booking %s: %w", id, err)
		}
		if result.ModifiedCount == 0 {
			return false, nil
		}

		inc := bson.M{"$inc": bson.M{"jobsCompleted": 1}}
		if _, err := r.workers.UpdateOne(sc, bson.M{"id": workerID}, inc); err != nil {
			return false, fmt.Errorf("failed to increment jobs for worker %s: %w", workerID, err)
		}
		return true, nil
	})
	if err != nil {
		return false, err
	}
	return completed.(bool), nil
}
