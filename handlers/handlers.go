package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups the per-entity handlers and the authorization gate for
// route registration.
type HandlerBundle struct {
	// Auth is the bearer-token gate applied to owner-scoped endpoints.
	Auth gin.HandlerFunc

	Parcel   *ParcelHandler
	Payment  *PaymentHandler
	Tracking *TrackingHandler
	User     *UserHandler
	Rider    *RiderHandler
}
