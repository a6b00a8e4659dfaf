package eventstore

import (
	"context"
	"fmt"
	"time"

	"webhookrepo/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore stores records in a MongoDB collection.
type MongoStore struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func NewMongoStore(coll *mongo.Collection) *MongoStore {
	return &MongoStore{
		coll:    coll,
		timeout: 5 * time.Second,
	}
}

// EnsureIndexes creates the created_at descending index used by ListRecent.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "created_at", Value: -1}},
		Options: options.Index().SetName("created_at_desc"),
	})
	if err != nil {
		return fmt.Errorf("creating created_at index: %w", err)
	}

	return nil
}

func (s *MongoStore) Insert(ctx context.Context, record models.EventRecord) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.coll.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}

	return nil
}

func (s *MongoStore) ListRecent(ctx context.Context, limit int) ([]models.EventRecord, error) {
	// Mongo reads a zero or negative limit as unbounded.
	if limit <= 0 {
		return []models.EventRecord{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	opts := options.Find().
		SetProjection(bson.M{"_id": 0}).
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}

	records := []models.EventRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decoding events: %w", err)
	}

	for i := range records {
		records[i].CreatedAt = records[i].CreatedAt.UTC()
	}

	return records, nil
}
