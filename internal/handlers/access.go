package handlers

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/uparkdev/parking-backend/internal/models"
	"github.com/uparkdev/parking-backend/internal/service"
)

// AccessStore is the subset of the access service the handler needs.
type AccessStore interface {
	Create(ctx context.Context, in service.AccessInput) (*models.Access, error)
	Get(ctx context.Context, id string) (*models.Access, error)
	List(ctx context.Context) ([]models.Access, error)
	Update(ctx context.Context, id string, in service.AccessInput) (*models.Access, error)
	Delete(ctx context.Context, id string) error
}

// AccessHandler handles access record requests
type AccessHandler struct {
	accesses AccessStore
}

// NewAccessHandler creates a new access handler
func NewAccessHandler(accesses AccessStore) *AccessHandler {
	return &AccessHandler{accesses: accesses}
}

// Register wires the handler into the router.
func (h *AccessHandler) Register(router *httprouter.Router) {
	router.POST("/api/accesses", h.Create)
	router.GET("/api/accesses", h.List)
	router.GET("/api/accesses/:id", h.Get)
	router.PUT("/api/accesses/:id", h.Update)
	router.DELETE("/api/accesses/:id", h.Delete)
}

func (h *AccessHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in service.AccessInput
	if err := decodeBody(r, &in); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	access, err := h.accesses.Create(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, access)
}

func (h *AccessHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	accesses, err := h.accesses.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if accesses == nil {
		accesses = []models.Access{}
	}
	writeJSON(w, http.StatusOK, accesses)
}

func (h *AccessHandler) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	access, err := h.accesses.Get(r.Context(), ps.ByName("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, access)
}

func (h *AccessHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var in service.AccessInput
	if err := decodeBody(r, &in); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	access, err := h.accesses.Update(r.Context(), ps.ByName("id"), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, access)
}

func (h *AccessHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.accesses.Delete(r.Context(), ps.ByName("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
