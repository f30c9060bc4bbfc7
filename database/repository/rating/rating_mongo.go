package ratingRepo

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

// MongoRatingRepo implements RatingRepository using MongoDB.
type MongoRatingRepo struct {
	coll *mongo.Collection
}

// NewMongoRatingRepo creates a new instance of RatingRepository using MongoDB.
func NewMongoRatingRepo() RatingRepository {
	coll := database.DB().Collection("ratings")
	repo := &MongoRatingRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create rating indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes enforces at most one rating per booking.
func (r *MongoRatingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "bookingId", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new rating document. A duplicate bookingId trips the
// unique index and surfaces as ErrAlreadyRated.
func (r *MongoRatingRepo) Create(rating *models.Rating) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, rating); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrAlreadyRated
		}
		return fmt.Errorf("failed to create rating: %w", err)
	}
	return nil
}

// GetByBookingID retrieves the rating for a booking.
func (r *MongoRatingRepo) GetByBookingID(bookingID string) (*models.Rating, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var rating models.Rating
	if err := r.coll.FindOne(ctx, bson.M{"bookingId": bookingID}).Decode(&rating); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch rating for booking %s: %w", bookingID, err)
	}
	return &rating, nil
}
