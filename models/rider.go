package models

// Rider status values. Applicants are created pending by client convention;
// approval moves them to active, rejection deletes the document.
const (
	RiderStatusPending = "pending"
	RiderStatusActive  = "active"
)
