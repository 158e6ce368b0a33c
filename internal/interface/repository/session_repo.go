package repository

import (
	"context"
	"time"

	"flightcal-service/internal/domain/entity"
	"flightcal-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSessionRepository stores candidate sets in MongoDB with a TTL
// index, so abandoned interactions expire without a janitor.
type MongoSessionRepository struct {
	collection *mongo.Collection
	ttl        time.Duration
}

// NewMongoSessionRepository creates a new session repository
func NewMongoSessionRepository(db *mongo.Database, ttl time.Duration) repository.SessionRepository {
	collection := db.Collection("candidate_sets")

	// TTL index on expiresAt
	ctx := context.Background()
	indexModel := mongo.IndexModel{
		Keys:    bson.M{"expiresAt": 1},
		Options: options.Index().SetExpireAfterSeconds(0),
	}
	collection.Indexes().CreateOne(ctx, indexModel)

	return &MongoSessionRepository{
		collection: collection,
		ttl:        ttl,
	}
}

// Save upserts a candidate set under its token
func (r *MongoSessionRepository) Save(ctx context.Context, set *entity.CandidateSet) error {
	now := time.Now()
	set.CreatedAt = now
	set.ExpiresAt = now.Add(r.ttl)

	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": set.Token}, set, opts)
	return err
}

// Get fetches a candidate set by token
func (r *MongoSessionRepository) Get(ctx context.Context, token string) (*entity.CandidateSet, error) {
	var set entity.CandidateSet
	err := r.collection.FindOne(ctx, bson.M{"_id": token}).Decode(&set)
	if err != nil {
		return nil, err
	}
	return &set, nil
}

// Delete removes a candidate set once the interaction is finished
func (r *MongoSessionRepository) Delete(ctx context.Context, token string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": token})
	return err
}
