package handlers

import (
	"errors"
	"net/http"

	parcelRepo "profast/database/repository/parcel"
	"profast/middleware"
	"profast/models"
	"profast/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// ParcelHandler serves the parcel endpoints.
type ParcelHandler struct {
	Repo parcelRepo.ParcelRepository
}

func NewParcelHandler(repo parcelRepo.ParcelRepository) *ParcelHandler {
	return &ParcelHandler{Repo: repo}
}

// ListByOwnerHandler handles GET /parcels/:email. The path email must match
// the verified identity; a mismatch is rejected before any store access.
func (h *ParcelHandler) ListByOwnerHandler(c *gin.Context) {
	logger := utils.GetLogger()
	email := c.Param("email")

	if c.GetString(middleware.ContextEmailKey) != email {
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return
	}

	parcels, err := h.Repo.ListByOwner(email)
	if err != nil {
		logger.Error("Failed to list parcels", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch parcels"})
		return
	}
	c.JSON(http.StatusOK, parcels)
}

// GetParcelHandler handles GET /parcel/:id. A missing parcel is a 200 with a
// null body; the caller distinguishes found from not-found by payload.
func (h *ParcelHandler) GetParcelHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	parcel, err := h.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, parcelRepo.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid parcel id"})
			return
		}
		logger.Error("Failed to fetch parcel", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch parcel"})
		return
	}
	c.JSON(http.StatusOK, parcel)
}

// AddParcelHandler handles POST /add-parcel. The body is stored as-is except
// for weight, which is coerced to a float before insertion.
func (h *ParcelHandler) AddParcelHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var doc map[string]interface{}
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	doc[models.ParcelFieldWeight] = utils.ParseWeight(doc[models.ParcelFieldWeight])

	id, err := h.Repo.Insert(bson.M(doc))
	if err != nil {
		logger.Error("Failed to add parcel", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add parcel"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"insertedId": id})
}

// RemoveParcelHandler handles DELETE /remove/:id. The deleted count is
// returned either way; a zero count means nothing matched.
func (h *ParcelHandler) RemoveParcelHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	deleted, err := h.Repo.Delete(id)
	if err != nil {
		if errors.Is(err, parcelRepo.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid parcel id"})
			return
		}
		logger.Error("Failed to delete parcel", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete parcel"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}
