package handlers

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"testing"

	parcelRepo "profast/database/repository/parcel"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func newParcelRouter(repo parcelRepo.ParcelRepository, identity string) *gin.Engine {
	h := NewParcelHandler(repo)
	r := gin.New()
	r.GET("/parcels/:email", withIdentity(identity), h.ListByOwnerHandler)
	r.GET("/parcel/:id", h.GetParcelHandler)
	r.POST("/add-parcel", h.AddParcelHandler)
	r.DELETE("/remove/:id", h.RemoveParcelHandler)
	return r
}

func TestAddParcel_CoercesWeightToFloat(t *testing.T) {
	var inserted bson.M
	repo := &fakeParcelRepo{
		insertFn: func(doc bson.M) (string, error) {
			inserted = doc
			return "65f000000000000000000001", nil
		},
	}
	r := newParcelRouter(repo, "")

	w := doRequest(t, r, http.MethodPost, "/add-parcel", map[string]interface{}{
		"created_by":    "sender@example.com",
		"weight":        "4.5",
		"creation_date": "2024-03-01T10:00:00Z",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, "65f000000000000000000001", decodeBody(t, w)["insertedId"])
	require.Equal(t, 4.5, inserted["weight"])
	require.Equal(t, "sender@example.com", inserted["created_by"])
}

func TestAddParcel_NonNumericWeightStoredAsNaN(t *testing.T) {
	var inserted bson.M
	repo := &fakeParcelRepo{
		insertFn: func(doc bson.M) (string, error) {
			inserted = doc
			return "65f000000000000000000002", nil
		},
	}
	r := newParcelRouter(repo, "")

	w := doRequest(t, r, http.MethodPost, "/add-parcel", map[string]interface{}{
		"weight": "heavy",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	weight, ok := inserted["weight"].(float64)
	require.True(t, ok)
	require.True(t, math.IsNaN(weight))
}

func TestAddParcel_StoreFailure(t *testing.T) {
	repo := &fakeParcelRepo{
		insertFn: func(bson.M) (string, error) {
			return "", errors.New("write concern failure")
		},
	}
	r := newParcelRouter(repo, "")

	w := doRequest(t, r, http.MethodPost, "/add-parcel", map[string]interface{}{"weight": 2})

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Equal(t, "Failed to add parcel", decodeBody(t, w)["error"])
}

func TestListParcels_OwnerMismatchForbidden(t *testing.T) {
	listCalls := 0
	repo := &fakeParcelRepo{
		listFn: func(string) ([]bson.M, error) {
			listCalls++
			return nil, nil
		},
	}
	r := newParcelRouter(repo, "intruder@example.com")

	w := doRequest(t, r, http.MethodGet, "/parcels/owner@example.com", nil)

	require.Equal(t, http.StatusForbidden, w.Code)
	require.Zero(t, listCalls, "forbidden requests must not reach the store")
}

func TestListParcels_ReturnsOwnerParcels(t *testing.T) {
	repo := &fakeParcelRepo{
		listFn: func(email string) ([]bson.M, error) {
			require.Equal(t, "owner@example.com", email)
			return []bson.M{
				{"created_by": email, "weight": 2.0},
				{"created_by": email, "weight": 1.5},
			}, nil
		},
	}
	r := newParcelRouter(repo, "owner@example.com")

	w := doRequest(t, r, http.MethodGet, "/parcels/owner@example.com", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var parcels []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parcels))
	require.Len(t, parcels, 2)
}

func TestListParcels_EmptyResultIsOK(t *testing.T) {
	repo := &fakeParcelRepo{
		listFn: func(string) ([]bson.M, error) {
			return []bson.M{}, nil
		},
	}
	r := newParcelRouter(repo, "owner@example.com")

	w := doRequest(t, r, http.MethodGet, "/parcels/owner@example.com", nil)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, "[]", w.Body.String())
}

func TestGetParcel_InvalidID(t *testing.T) {
	repo := &fakeParcelRepo{
		getFn: func(string) (bson.M, error) {
			return nil, parcelRepo.ErrInvalidID
		},
	}
	r := newParcelRouter(repo, "")

	w := doRequest(t, r, http.MethodGet, "/parcel/not-a-hex-id", nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetParcel_NotFoundReturnsNull(t *testing.T) {
	repo := &fakeParcelRepo{
		getFn: func(string) (bson.M, error) {
			return nil, nil
		},
	}
	r := newParcelRouter(repo, "")

	w := doRequest(t, r, http.MethodGet, "/parcel/65f000000000000000000009", nil)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, "null", w.Body.String())
}

func TestRemoveParcel_ReturnsDeletedCount(t *testing.T) {
	repo := &fakeParcelRepo{
		deleteFn: func(id string) (int64, error) {
			require.Equal(t, "65f000000000000000000003", id)
			return 1, nil
		},
	}
	r := newParcelRouter(repo, "")

	w := doRequest(t, r, http.MethodDelete, "/remove/65f000000000000000000003", nil)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"deletedCount":1}`, w.Body.String())
}

func TestRemoveParcel_ZeroCountIsStillOK(t *testing.T) {
	repo := &fakeParcelRepo{
		deleteFn: func(string) (int64, error) {
			return 0, nil
		},
	}
	r := newParcelRouter(repo, "")

	w := doRequest(t, r, http.MethodDelete, "/remove/65f000000000000000000004", nil)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"deletedCount":0}`, w.Body.String())
}
