package parcelRepo

import (
	"context"
	"fmt"
	"time"

	"profast/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoParcelRepo implements ParcelRepository using MongoDB.
type MongoParcelRepo struct {
	coll *mongo.Collection
}

// NewMongoParcelRepo creates a ParcelRepository backed by the "parcels"
// collection of the given database.
func NewMongoParcelRepo(db *mongo.Database) ParcelRepository {
	return &MongoParcelRepo{coll: db.Collection("parcels")}
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoParcelRepo) ListByOwner(email string) ([]bson.M, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{models.ParcelFieldCreatedBy: email}
	opts := options.Find().SetSort(bson.D{{Key: models.ParcelFieldCreationDate, Value: -1}})

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list parcels for %s: %w", email, err)
	}
	defer cur.Close(ctx)

	parcels := []bson.M{}
	if err := cur.All(ctx, &parcels); err != nil {
		return nil, fmt.Errorf("failed to decode parcels for %s: %w", email, err)
	}
	return parcels, nil
}

func (r *MongoParcelRepo) GetByID(id string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var parcel bson.M
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&parcel); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch parcel %s: %w", id, err)
	}
	return parcel, nil
}

func (r *MongoParcelRepo) Insert(doc bson.M) (string, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to insert parcel: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (r *MongoParcelRepo) Delete(id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrInvalidID
	}

	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("failed to delete parcel %s: %w", id, err)
	}
	return res.DeletedCount, nil
}

func (r *MongoParcelRepo) MarkPaid(id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrInvalidID
	}

	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{models.ParcelFieldPaymentStatus: models.PaymentStatusPaid}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return 0, fmt.Errorf("failed to mark parcel %s paid: %w", id, err)
	}
	return res.ModifiedCount, nil
}
