package workerRepo

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

// MongoWorkerRepo implements WorkerRepository using MongoDB.
type MongoWorkerRepo struct {
	coll *mongo.Collection
}

// NewMongoWorkerRepo creates a new instance of WorkerRepository using MongoDB.
func NewMongoWorkerRepo() WorkerRepository {
	coll := database.DB().Collection("workers")
	repo := &MongoWorkerRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create worker indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoWorkerRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "skills", Value: 1}, {Key: "city", Value: 1}}},
		{Keys: bson.D{{Key: "rating", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new worker profile document.
func (r *MongoWorkerRepo) Create(worker *models.WorkerProfile) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	worker.CreatedAt = now
	worker.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, worker); err != nil {
		return fmt.Errorf("failed to create worker profile: %w", err)
	}
	return nil
}

func (r *MongoWorkerRepo) findOne(filter bson.M) (*models.WorkerProfile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var worker models.WorkerProfile
	if err := r.coll.FindOne(ctx, filter).Decode(&worker); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch worker profile: %w", err)
	}
	return &worker, nil
}

// GetByID retrieves a worker profile by its unique ID.
func (r *MongoWorkerRepo) GetByID(id string) (*models.WorkerProfile, error) {
	return r.findOne(bson.M{"id": id})
}

// GetByUserID retrieves the worker profile belonging to a user.
func (r *MongoWorkerRepo) GetByUserID(userID string) (*models.WorkerProfile, error) {
	return r.findOne(bson.M{"userId": userID})
}

// Search returns worker profiles matching the criteria, sorted by
// rating descending.
func (r *MongoWorkerRepo) Search(criteria SearchCriteria) ([]models.WorkerProfile, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if criteria.Skill != "" {
		filter["skills"] = criteria.Skill
	}
	if criteria.City != "" {
		filter["city"] = criteria.City
	}
	if criteria.AvailableOnly {
		filter["available"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search workers: %w", err)
	}
	defer cursor.Close(ctx)

	var workers []models.WorkerProfile
	for cursor.Next(ctx) {
		var w models.WorkerProfile
		if err := cursor.Decode(&w); err != nil {
			return nil, fmt.Errorf("failed to decode worker profile: %w", err)
		}
		workers = append(workers, w)
	}
	return workers, nil
}

func (r *MongoWorkerRepo) updateSet(id string, fields bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	fields["updatedAt"] = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update worker with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("worker with id %s not found", id)
	}
	return nil
}

// SetAvailability writes the availability flag.
func (r *MongoWorkerRepo) SetAvailability(id string, available bool) error {
	return r.updateSet(id, bson.M{"available": available})
}

// SetSkills replaces the skill set.
func (r *MongoWorkerRepo) SetSkills(id string, skills []string) error {
	return r.updateSet(id, bson.M{"skills": skills})
}

// SetRating writes the rolling rating.
func (r *MongoWorkerRepo) SetRating(id string, rating float64) error {
	return r.updateSet(id, bson.M{"rating": rating})
}

// SetVerification writes the verification workflow fields.
func (r *MongoWorkerRepo) SetVerification(id string, status models.VerificationStatus, verified bool, lastFour string) error {
	return r.updateSet(id, bson.M{
		"verificationStatus": status,
		"verified":           verified,
		"aadhaarLastFour":    lastFour,
	})
}
