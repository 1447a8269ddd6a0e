package handlers

import (
	"errors"
	"net/http"
	"time"

	parcelRepo "profast/database/repository/parcel"
	paymentRepo "profast/database/repository/payment"
	"profast/middleware"
	"profast/models"
	"profast/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentHandler serves the payment endpoints.
type PaymentHandler struct {
	Parcels  parcelRepo.ParcelRepository
	Payments paymentRepo.PaymentRepository
}

func NewPaymentHandler(parcels parcelRepo.ParcelRepository, payments paymentRepo.PaymentRepository) *PaymentHandler {
	return &PaymentHandler{Parcels: parcels, Payments: payments}
}

// CreatePaymentIntentHandler handles POST /create-payment-intent. The amount
// is in cents and the currency is USD. The gateway's error message is
// surfaced on failure, as the original server did.
func (h *PaymentHandler) CreatePaymentIntentHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amountInCents is required"})
		return
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(req.AmountInCents),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	pi, err := paymentintent.New(params)
	if err != nil {
		logger.Error("Failed to create payment intent", zap.Int64("amount", req.AmountInCents), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": pi.ClientSecret})
}

// RecordPaymentHandler handles POST /payments. It performs two independent
// writes with no transaction between them: the parcel's payment_status is
// updated best-effort, then the payment record is inserted. A parcel id that
// matches nothing does not stop the insert or the 201; the inconsistency
// window between the two writes is accepted.
func (h *PaymentHandler) RecordPaymentHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	modified, err := h.Parcels.MarkPaid(req.ParcelID)
	if err != nil {
		if errors.Is(err, parcelRepo.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid parcel id"})
			return
		}
		logger.Error("Failed to update parcel payment status", zap.String("parcelId", req.ParcelID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to record payment", "error": err.Error()})
		return
	}
	if modified == 0 {
		logger.Warn("Payment recorded for parcel with no matching document",
			zap.String("parcelId", req.ParcelID), zap.String("email", req.Email))
	}

	now := time.Now()
	payment := &models.Payment{
		Email:         req.Email,
		ParcelID:      req.ParcelID,
		Amount:        req.Amount,
		TransactionID: req.TransactionID,
		PaymentMethod: req.PaymentMethod,
		PaidAt:        now,
		PaidAtString:  now.Format(time.RFC3339),
	}
	id, err := h.Payments.Insert(payment)
	if err != nil {
		logger.Error("Failed to insert payment", zap.String("parcelId", req.ParcelID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to record payment", "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Payment recorded successfully", "insertedId": id})
}

// ListPaymentsHandler handles GET /payments?email=. The query email must
// match the verified identity; a mismatch is rejected before any store
// access.
func (h *PaymentHandler) ListPaymentsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	email := c.Query("email")

	if c.GetString(middleware.ContextEmailKey) != email {
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return
	}

	payments, err := h.Payments.ListByEmail(email)
	if err != nil {
		logger.Error("Failed to list payments", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
		return
	}
	c.JSON(http.StatusOK, payments)
}
