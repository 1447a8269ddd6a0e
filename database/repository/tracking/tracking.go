package trackingRepo

import (
	"context"
	"fmt"
	"time"

	"profast/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// TrackingRepository appends delivery-tracking log entries. Entries are never
// updated or deleted.
type TrackingRepository interface {
	// Append stores a new log entry and returns its hex id.
	Append(entry *models.TrackingEntry) (string, error)
}

// MongoTrackingRepo implements TrackingRepository using MongoDB.
type MongoTrackingRepo struct {
	coll *mongo.Collection
}

// NewMongoTrackingRepo creates a TrackingRepository backed by the "tracking"
// collection of the given database.
func NewMongoTrackingRepo(db *mongo.Database) TrackingRepository {
	return &MongoTrackingRepo{coll: db.Collection("tracking")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoTrackingRepo) Append(entry *models.TrackingEntry) (string, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, entry)
	if err != nil {
		return "", fmt.Errorf("failed to append tracking entry: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}
