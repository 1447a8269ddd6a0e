package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TrackingEntry is an append-only status update for a parcel. ParcelID is
// optional; when the client sends none it is stored as an explicit BSON null.
type TrackingEntry struct {
	ID         primitive.ObjectID  `bson:"_id,omitempty" json:"_id,omitempty"`
	TrackingID string              `bson:"tracking_id" json:"tracking_id"`
	ParcelID   *primitive.ObjectID `bson:"parcel_id" json:"parcel_id"`
	Status     string              `bson:"status" json:"status"`
	Message    string              `bson:"message" json:"message"`
	Time       time.Time           `bson:"time" json:"time"`
	UpdatedBy  string              `bson:"updated_by" json:"updated_by"`
}

// AppendTrackingRequest is the payload for POST /tracking.
type AppendTrackingRequest struct {
	TrackingID string `json:"tracking_id" binding:"required"`
	ParcelID   string `json:"parcel_id"`
	Status     string `json:"status"`
	Message    string `json:"message"`
	UpdatedBy  string `json:"updated_by"`
}
