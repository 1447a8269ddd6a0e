package parcelRepo

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrInvalidID is returned when an identifier is not a valid ObjectID hex
// string. Handlers map it to a client error instead of a 500.
var ErrInvalidID = errors.New("invalid parcel id")

// ParcelRepository defines data access methods for parcel documents.
// Parcel bodies are caller-supplied and schemaless, so documents are
// exchanged as bson.M.
type ParcelRepository interface {
	// ListByOwner returns all parcels created by the given email, newest
	// creation_date first. An empty result is not an error.
	ListByOwner(email string) ([]bson.M, error)
	// GetByID returns the parcel with the given id, or nil when no document
	// matches.
	GetByID(id string) (bson.M, error)
	// Insert stores a new parcel document and returns its hex id.
	Insert(doc bson.M) (string, error)
	// Delete removes at most one parcel and returns the deleted count.
	Delete(id string) (int64, error)
	// MarkPaid sets payment_status to "paid" on the parcel and returns the
	// modified count. A zero count means no document matched; callers decide
	// what that means.
	MarkPaid(id string) (int64, error)
}
