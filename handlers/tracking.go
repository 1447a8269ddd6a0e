package handlers

import (
	"net/http"
	"time"

	trackingRepo "profast/database/repository/tracking"
	"profast/models"
	"profast/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// TrackingHandler serves the tracking-log endpoint.
type TrackingHandler struct {
	Repo trackingRepo.TrackingRepository
}

func NewTrackingHandler(repo trackingRepo.TrackingRepository) *TrackingHandler {
	return &TrackingHandler{Repo: repo}
}

// AppendTrackingHandler handles POST /tracking. The entry is a pure append
// stamped with server time; the referenced parcel's existence is not checked.
// An absent parcel_id is stored as null, not an empty string.
func (h *TrackingHandler) AppendTrackingHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.AppendTrackingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var parcelID *primitive.ObjectID
	if req.ParcelID != "" {
		oid, err := primitive.ObjectIDFromHex(req.ParcelID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid parcel id"})
			return
		}
		parcelID = &oid
	}

	entry := &models.TrackingEntry{
		TrackingID: req.TrackingID,
		ParcelID:   parcelID,
		Status:     req.Status,
		Message:    req.Message,
		Time:       time.Now(),
		UpdatedBy:  req.UpdatedBy,
	}
	id, err := h.Repo.Append(entry)
	if err != nil {
		logger.Error("Failed to append tracking entry", zap.String("trackingId", req.TrackingID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add tracking entry"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"insertedId": id})
}
