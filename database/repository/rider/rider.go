package riderRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"profast/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrInvalidID is returned when an identifier is not a valid ObjectID hex
// string.
var ErrInvalidID = errors.New("invalid rider id")

// RiderRepository defines data access methods for rider applicants.
type RiderRepository interface {
	// Insert stores a new rider application and returns its hex id.
	Insert(doc bson.M) (string, error)
	// ListPending returns all riders with status "pending".
	ListPending() ([]bson.M, error)
	// Approve sets status to "active" and returns the modified count. A zero
	// count means the rider does not exist or is already active; the two are
	// indistinguishable here.
	Approve(id string) (int64, error)
	// Delete removes the rider and returns the deleted count.
	Delete(id string) (int64, error)
}

// MongoRiderRepo implements RiderRepository using MongoDB.
type MongoRiderRepo struct {
	coll *mongo.Collection
}

// NewMongoRiderRepo creates a RiderRepository backed by the "riders"
// collection of the given database.
func NewMongoRiderRepo(db *mongo.Database) RiderRepository {
	return &MongoRiderRepo{coll: db.Collection("riders")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoRiderRepo) Insert(doc bson.M) (string, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to insert rider: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (r *MongoRiderRepo) ListPending() ([]bson.M, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"status": models.RiderStatusPending})
	if err != nil {
		return nil, fmt.Errorf("failed to list pending riders: %w", err)
	}
	defer cur.Close(ctx)

	riders := []bson.M{}
	if err := cur.All(ctx, &riders); err != nil {
		return nil, fmt.Errorf("failed to decode pending riders: %w", err)
	}
	return riders, nil
}

func (r *MongoRiderRepo) Approve(id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrInvalidID
	}

	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": models.RiderStatusActive}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return 0, fmt.Errorf("failed to approve rider %s: %w", id, err)
	}
	return res.ModifiedCount, nil
}

func (r *MongoRiderRepo) Delete(id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrInvalidID
	}

	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("failed to delete rider %s: %w", id, err)
	}
	return res.DeletedCount, nil
}
