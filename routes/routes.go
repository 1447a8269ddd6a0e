package routes

import (
	"net/http"
	"time"

	"profast/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterParcelRoutes registers parcel endpoints. Only the owner listing is
// behind the authorization gate; the rest match the original contract.
func RegisterParcelRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/parcels/:email", hb.Auth, hb.Parcel.ListByOwnerHandler)
	r.GET("/parcel/:id", hb.Parcel.GetParcelHandler)
	r.POST("/add-parcel", hb.Parcel.AddParcelHandler)
	r.DELETE("/remove/:id", hb.Parcel.RemoveParcelHandler)
}

// RegisterPaymentRoutes registers payment endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/create-payment-intent", hb.Payment.CreatePaymentIntentHandler)
	r.POST("/payments", hb.Payment.RecordPaymentHandler)
	r.GET("/payments", hb.Auth, hb.Payment.ListPaymentsHandler)
}

// RegisterTrackingRoutes registers the tracking-log endpoint.
func RegisterTrackingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/tracking", hb.Tracking.AppendTrackingHandler)
}

// RegisterUserRoutes registers the user registration endpoint.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/users", hb.User.RegisterUserHandler)
}

// RegisterRiderRoutes registers rider application and approval endpoints.
func RegisterRiderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/riders", hb.Rider.ApplyHandler)
	r.GET("/pending-rider", hb.Rider.ListPendingHandler)
	r.PATCH("/riders/approve/:id", hb.Rider.ApproveHandler)
	r.DELETE("/riders/reject/:id", hb.Rider.RejectHandler)
}

// RegisterLivenessRoute registers the plaintext liveness endpoint.
func RegisterLivenessRoute(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Profast Server Running")
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterParcelRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterTrackingRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterRiderRoutes(r, hb)
	RegisterLivenessRoute(r)
}
