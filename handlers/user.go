package handlers

import (
	"net/http"

	userRepo "profast/database/repository/user"
	"profast/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// UserHandler serves the user registration endpoint.
type UserHandler struct {
	Repo userRepo.UserRepository
}

func NewUserHandler(repo userRepo.UserRepository) *UserHandler {
	return &UserHandler{Repo: repo}
}

// RegisterUserHandler handles POST /users. Registration is idempotent per
// email: an existing user yields a 200 "already exists" and no second insert.
func (h *UserHandler) RegisterUserHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var doc map[string]interface{}
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	email, _ := doc["email"].(string)
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}

	existing, err := h.Repo.FindByEmail(email)
	if err != nil {
		logger.Error("Failed to look up user", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusOK, gin.H{"message": "User already exists", "inserted": false})
		return
	}

	id, err := h.Repo.Insert(bson.M(doc))
	if err != nil {
		logger.Error("Failed to insert user", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"insertedId": id})
}
