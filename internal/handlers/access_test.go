package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/uparkdev/parking-backend/internal/models"
	"github.com/uparkdev/parking-backend/internal/service"
)

// MockAccessStore is a mock implementation of AccessStore
type MockAccessStore struct {
	mock.Mock
}

func (m *MockAccessStore) Create(ctx context.Context, in service.AccessInput) (*models.Access, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Access), args.Error(1)
}

func (m *MockAccessStore) Get(ctx context.Context, id string) (*models.Access, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Access), args.Error(1)
}

func (m *MockAccessStore) List(ctx context.Context) ([]models.Access, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Access), args.Error(1)
}

func (m *MockAccessStore) Update(ctx context.Context, id string, in service.AccessInput) (*models.Access, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Access), args.Error(1)
}

func (m *MockAccessStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newAccessRouter(store AccessStore) *httprouter.Router {
	router := httprouter.New()
	NewAccessHandler(store).Register(router)
	return router
}

func TestAccessHandler_Create(t *testing.T) {
	entry := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	t.Run("valid request", func(t *testing.T) {
		store := new(MockAccessStore)
		access := &models.Access{
			ID:     primitive.NewObjectID(),
			Ticket: "ticket-1",
			Plate:  "ABC1234",
			Entry:  entry,
			Mode:   models.ModeTime,
			Amount: models.ZeroMoney(),
		}
		store.On("Create", mock.Anything, mock.AnythingOfType("service.AccessInput")).Return(access, nil)

		body, _ := json.Marshal(map[string]interface{}{
			"lot_id":  primitive.NewObjectID().Hex(),
			"plate":   "ABC1234",
			"entry":   entry,
			"mode":    "TIME",
			"rate_id": primitive.NewObjectID().Hex(),
		})
		req := httptest.NewRequest(http.MethodPost, "/api/accesses", bytes.NewReader(body))
		w := httptest.NewRecorder()
		newAccessRouter(store).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var got models.Access
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "ticket-1", got.Ticket)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		store := new(MockAccessStore)

		req := httptest.NewRequest(http.MethodPost, "/api/accesses", bytes.NewReader([]byte("{not json")))
		w := httptest.NewRecorder()
		newAccessRouter(store).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("validation error maps to 400", func(t *testing.T) {
		store := new(MockAccessStore)
		store.On("Create", mock.Anything, mock.AnythingOfType("service.AccessInput")).
			Return(nil, fmt.Errorf("%w: plate", service.ErrMissingField))

		req := httptest.NewRequest(http.MethodPost, "/api/accesses", bytes.NewReader([]byte("{}")))
		w := httptest.NewRecorder()
		newAccessRouter(store).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "plate")
	})

	t.Run("unknown reference maps to 404", func(t *testing.T) {
		store := new(MockAccessStore)
		store.On("Create", mock.Anything, mock.AnythingOfType("service.AccessInput")).
			Return(nil, fmt.Errorf("%w: id abc", service.ErrNotFound))

		req := httptest.NewRequest(http.MethodPost, "/api/accesses", bytes.NewReader([]byte("{}")))
		w := httptest.NewRecorder()
		newAccessRouter(store).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unexpected error maps to 500", func(t *testing.T) {
		store := new(MockAccessStore)
		store.On("Create", mock.Anything, mock.AnythingOfType("service.AccessInput")).
			Return(nil, fmt.Errorf("connection reset"))

		req := httptest.NewRequest(http.MethodPost, "/api/accesses", bytes.NewReader([]byte("{}")))
		w := httptest.NewRecorder()
		newAccessRouter(store).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection reset")
	})
}

func TestAccessHandler_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		store := new(MockAccessStore)
		access := &models.Access{ID: primitive.NewObjectID(), Ticket: "ticket-1"}
		store.On("Get", mock.Anything, access.ID.Hex()).Return(access, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/accesses/"+access.ID.Hex(), nil)
		w := httptest.NewRecorder()
		newAccessRouter(store).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		store := new(MockAccessStore)
		store.On("Get", mock.Anything, "missing").Return(nil, fmt.Errorf("%w: id missing", service.ErrNotFound))

		req := httptest.NewRequest(http.MethodGet, "/api/accesses/missing", nil)
		w := httptest.NewRecorder()
		newAccessRouter(store).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAccessHandler_List(t *testing.T) {
	t.Run("returns empty array instead of null", func(t *testing.T) {
		store := new(MockAccessStore)
		store.On("List", mock.Anything).Return([]models.Access(nil), nil)

		req := httptest.NewRequest(http.MethodGet, "/api/accesses", nil)
		w := httptest.NewRecorder()
		newAccessRouter(store).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]\n", w.Body.String())
	})
}

func TestAccessHandler_Delete(t *testing.T) {
	store := new(MockAccessStore)
	id := primitive.NewObjectID().Hex()
	store.On("Delete", mock.Anything, id).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/accesses/"+id, nil)
	w := httptest.NewRecorder()
	newAccessRouter(store).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
