package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	riderRepo "profast/database/repository/rider"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func newRiderRouter(repo *fakeRiderRepo) *gin.Engine {
	h := NewRiderHandler(repo)
	r := gin.New()
	r.POST("/riders", h.ApplyHandler)
	r.GET("/pending-rider", h.ListPendingHandler)
	r.PATCH("/riders/approve/:id", h.ApproveHandler)
	r.DELETE("/riders/reject/:id", h.RejectHandler)
	return r
}

func TestApplyRider(t *testing.T) {
	var inserted bson.M
	repo := &fakeRiderRepo{
		insertFn: func(doc bson.M) (string, error) {
			inserted = doc
			return "65f00000000000000000000b", nil
		},
	}
	r := newRiderRouter(repo)

	w := doRequest(t, r, http.MethodPost, "/riders", map[string]interface{}{
		"name":   "Applicant",
		"email":  "rider@example.com",
		"status": "pending",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, "65f00000000000000000000b", decodeBody(t, w)["insertedId"])
	require.Equal(t, "pending", inserted["status"])
}

func TestListPendingRiders(t *testing.T) {
	repo := &fakeRiderRepo{
		listPendingFn: func() ([]bson.M, error) {
			return []bson.M{
				{"email": "a@example.com", "status": "pending"},
				{"email": "b@example.com", "status": "pending"},
			}, nil
		},
	}
	r := newRiderRouter(repo)

	w := doRequest(t, r, http.MethodGet, "/pending-rider", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var riders []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &riders))
	require.Len(t, riders, 2)
}

func TestApproveRider_Pending(t *testing.T) {
	repo := &fakeRiderRepo{
		approveFn: func(id string) (int64, error) {
			require.Equal(t, "65f00000000000000000000c", id)
			return 1, nil
		},
	}
	r := newRiderRouter(repo)

	w := doRequest(t, r, http.MethodPatch, "/riders/approve/65f00000000000000000000c", nil)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Rider approved", decodeBody(t, w)["message"])
}

func TestApproveRider_NotFoundOrAlreadyActive(t *testing.T) {
	repo := &fakeRiderRepo{
		approveFn: func(string) (int64, error) {
			return 0, nil
		},
	}
	r := newRiderRouter(repo)

	w := doRequest(t, r, http.MethodPatch, "/riders/approve/65f00000000000000000000d", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestApproveRider_InvalidID(t *testing.T) {
	repo := &fakeRiderRepo{
		approveFn: func(string) (int64, error) {
			return 0, riderRepo.ErrInvalidID
		},
	}
	r := newRiderRouter(repo)

	w := doRequest(t, r, http.MethodPatch, "/riders/approve/short", nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRejectRider_Twice(t *testing.T) {
	exists := true
	repo := &fakeRiderRepo{
		deleteFn: func(string) (int64, error) {
			if exists {
				exists = false
				return 1, nil
			}
			return 0, nil
		},
	}
	r := newRiderRouter(repo)

	first := doRequest(t, r, http.MethodDelete, "/riders/reject/65f00000000000000000000e", nil)
	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, "Rider rejected", decodeBody(t, first)["message"])

	second := doRequest(t, r, http.MethodDelete, "/riders/reject/65f00000000000000000000e", nil)
	require.Equal(t, http.StatusNotFound, second.Code)
}
