package handlers

import (
	"errors"
	"net/http"

	riderRepo "profast/database/repository/rider"
	"profast/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// RiderHandler serves the rider application and approval endpoints.
type RiderHandler struct {
	Repo riderRepo.RiderRepository
}

func NewRiderHandler(repo riderRepo.RiderRepository) *RiderHandler {
	return &RiderHandler{Repo: repo}
}

// ApplyHandler handles POST /riders. The applicant document is stored as-is;
// clients send status "pending" by convention.
func (h *RiderHandler) ApplyHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var doc map[string]interface{}
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	id, err := h.Repo.Insert(bson.M(doc))
	if err != nil {
		logger.Error("Failed to insert rider", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit rider application"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"insertedId": id})
}

// ListPendingHandler handles GET /pending-rider.
func (h *RiderHandler) ListPendingHandler(c *gin.Context) {
	logger := utils.GetLogger()

	riders, err := h.Repo.ListPending()
	if err != nil {
		logger.Error("Failed to list pending riders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pending riders"})
		return
	}
	c.JSON(http.StatusOK, riders)
}

// ApproveHandler handles PATCH /riders/approve/:id. A zero modified count
// means the rider does not exist or was already active; both are a 404.
func (h *RiderHandler) ApproveHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	modified, err := h.Repo.Approve(id)
	if err != nil {
		if errors.Is(err, riderRepo.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rider id"})
			return
		}
		logger.Error("Failed to approve rider", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve rider"})
		return
	}
	if modified == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Rider not found or already active"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Rider approved"})
}

// RejectHandler handles DELETE /riders/reject/:id. Rejection removes the
// application entirely.
func (h *RiderHandler) RejectHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	deleted, err := h.Repo.Delete(id)
	if err != nil {
		if errors.Is(err, riderRepo.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rider id"})
			return
		}
		logger.Error("Failed to reject rider", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject rider"})
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Rider not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Rider rejected"})
}
