package models

// Parcel documents are stored as-is from the client payload, so they are
// handled as bson.M rather than a fixed struct. The fields the server itself
// reads or writes are listed here.
const (
	// ParcelFieldCreatedBy is the owner email stamped by the client.
	ParcelFieldCreatedBy = "created_by"
	// ParcelFieldCreationDate orders owner listings (newest first).
	ParcelFieldCreationDate = "creation_date"
	// ParcelFieldWeight is coerced to a float before storage.
	ParcelFieldWeight = "weight"
	// ParcelFieldPaymentStatus is mutated when a payment is recorded.
	ParcelFieldPaymentStatus = "payment_status"
)

// Payment status values for a parcel. A parcel without the field is unpaid.
const (
	PaymentStatusUnpaid = "unpaid"
	PaymentStatusPaid   = "paid"
)
