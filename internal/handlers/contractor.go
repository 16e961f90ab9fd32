package handlers

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/uparkdev/parking-backend/internal/models"
	"github.com/uparkdev/parking-backend/internal/service"
)

// ContractorStore is the subset of the contractor service the handler needs.
type ContractorStore interface {
	Create(ctx context.Context, in service.ContractorInput) (*models.Contractor, error)
	Get(ctx context.Context, id string) (*models.Contractor, error)
	List(ctx context.Context) ([]models.Contractor, error)
	ListByLot(ctx context.Context, lotID string) ([]models.Contractor, error)
	ListByEvent(ctx context.Context, eventID string) ([]models.Contractor, error)
	Update(ctx context.Context, id string, in service.ContractorInput) (*models.Contractor, error)
	Delete(ctx context.Context, id string) error
}

// ContractorHandler handles contractor requests
type ContractorHandler struct {
	contractors ContractorStore
}

// NewContractorHandler creates a new contractor handler
func NewContractorHandler(contractors ContractorStore) *ContractorHandler {
	return &ContractorHandler{contractors: contractors}
}

// Register wires the handler into the router.
func (h *ContractorHandler) Register(router *httprouter.Router) {
	router.POST("/api/contractors", h.Create)
	router.GET("/api/contractors", h.List)
	router.GET("/api/contractors/:id", h.Get)
	router.PUT("/api/contractors/:id", h.Update)
	router.DELETE("/api/contractors/:id", h.Delete)
}

func (h *ContractorHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in service.ContractorInput
	if err := decodeBody(r, &in); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	contractor, err := h.contractors.Create(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, contractor)
}

// List returns all contractors, optionally filtered by lot or event
// through the lot_id and event_id query parameters.
func (h *ContractorHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var (
		contractors []models.Contractor
		err         error
	)

	query := r.URL.Query()
	switch {
	case query.Get("lot_id") != "":
		contractors, err = h.contractors.ListByLot(r.Context(), query.Get("lot_id"))
	case query.Get("event_id") != "":
		contractors, err = h.contractors.ListByEvent(r.Context(), query.Get("event_id"))
	default:
		contractors, err = h.contractors.List(r.Context())
	}
	if err != nil {
		writeError(w, err)
		return
	}
	if contractors == nil {
		contractors = []models.Contractor{}
	}
	writeJSON(w, http.StatusOK, contractors)
}

func (h *ContractorHandler) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	contractor, err := h.contractors.Get(r.Context(), ps.ByName("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contractor)
}

func (h *ContractorHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var in service.ContractorInput
	if err := decodeBody(r, &in); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	contractor, err := h.contractors.Update(r.Context(), ps.ByName("id"), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contractor)
}

func (h *ContractorHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.contractors.Delete(r.Context(), ps.ByName("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
