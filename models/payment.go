package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is the immutable record inserted when a payment is confirmed.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string             `bson:"email" json:"email"`
	ParcelID      string             `bson:"parcelId" json:"parcelId"`
	Amount        float64            `bson:"amount" json:"amount"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	PaymentMethod string             `bson:"paymentMethod" json:"paymentMethod"`
	PaidAt        time.Time          `bson:"paid_at" json:"paid_at"`
	PaidAtString  string             `bson:"paid_at_string" json:"paid_at_string"`
}

// RecordPaymentRequest is the payload for POST /payments.
type RecordPaymentRequest struct {
	ParcelID      string  `json:"parcelId" binding:"required"`
	Email         string  `json:"email" binding:"required"`
	Amount        float64 `json:"amount"`
	TransactionID string  `json:"transactionId"`
	PaymentMethod string  `json:"paymentMethod"`
}

// PaymentIntentRequest is the payload for POST /create-payment-intent.
// The amount is in minor currency units (cents); the currency is USD.
type PaymentIntentRequest struct {
	AmountInCents int64 `json:"amountInCents" binding:"required"`
}
