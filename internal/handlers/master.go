package handlers

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/uparkdev/parking-backend/internal/models"
)

// LotStore is the subset of the lot service the handler needs.
type LotStore interface {
	Create(ctx context.Context, lot models.Lot) (*models.Lot, error)
	Get(ctx context.Context, id string) (*models.Lot, error)
	List(ctx context.Context) ([]models.Lot, error)
	Update(ctx context.Context, id string, lot models.Lot) (*models.Lot, error)
	Delete(ctx context.Context, id string) error
}

// VehicleStore is the subset of the vehicle service the handler needs.
type VehicleStore interface {
	Create(ctx context.Context, vehicle models.Vehicle) (*models.Vehicle, error)
	Get(ctx context.Context, id string) (*models.Vehicle, error)
	List(ctx context.Context) ([]models.Vehicle, error)
	Update(ctx context.Context, id string, vehicle models.Vehicle) (*models.Vehicle, error)
	Delete(ctx context.Context, id string) error
}

// EventStore is the subset of the event service the handler needs.
type EventStore interface {
	Create(ctx context.Context, event models.Event) (*models.Event, error)
	Get(ctx context.Context, id string) (*models.Event, error)
	List(ctx context.Context) ([]models.Event, error)
	Update(ctx context.Context, id string, event models.Event) (*models.Event, error)
	Delete(ctx context.Context, id string) error
}

// LotHandler handles parking lot requests
type LotHandler struct {
	lots LotStore
}

func NewLotHandler(lots LotStore) *LotHandler {
	return &LotHandler{lots: lots}
}

func (h *LotHandler) Register(router *httprouter.Router) {
	router.POST("/api/lots", h.Create)
	router.GET("/api/lots", h.List)
	router.GET("/api/lots/:id", h.Get)
	router.PUT("/api/lots/:id", h.Update)
	router.DELETE("/api/lots/:id", h.Delete)
}

func (h *LotHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var lot models.Lot
	if err := decodeBody(r, &lot); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	created, err := h.lots.Create(r.Context(), lot)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *LotHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	lots, err := h.lots.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if lots == nil {
		lots = []models.Lot{}
	}
	writeJSON(w, http.StatusOK, lots)
}

func (h *LotHandler) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	lot, err := h.lots.Get(r.Context(), ps.ByName("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lot)
}

func (h *LotHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var lot models.Lot
	if err := decodeBody(r, &lot); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	updated, err := h.lots.Update(r.Context(), ps.ByName("id"), lot)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *LotHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.lots.Delete(r.Context(), ps.ByName("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// VehicleHandler handles vehicle requests
type VehicleHandler struct {
	vehicles VehicleStore
}

func NewVehicleHandler(vehicles VehicleStore) *VehicleHandler {
	return &VehicleHandler{vehicles: vehicles}
}

func (h *VehicleHandler) Register(router *httprouter.Router) {
	router.POST("/api/vehicles", h.Create)
	router.GET("/api/vehicles", h.List)
	router.GET("/api/vehicles/:id", h.Get)
	router.PUT("/api/vehicles/:id", h.Update)
	router.DELETE("/api/vehicles/:id", h.Delete)
}

func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var vehicle models.Vehicle
	if err := decodeBody(r, &vehicle); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	created, err := h.vehicles.Create(r.Context(), vehicle)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	vehicles, err := h.vehicles.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if vehicles == nil {
		vehicles = []models.Vehicle{}
	}
	writeJSON(w, http.StatusOK, vehicles)
}

func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	vehicle, err := h.vehicles.Get(r.Context(), ps.ByName("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var vehicle models.Vehicle
	if err := decodeBody(r, &vehicle); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	updated, err := h.vehicles.Update(r.Context(), ps.ByName("id"), vehicle)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.vehicles.Delete(r.Context(), ps.ByName("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// EventHandler handles event requests
type EventHandler struct {
	events EventStore
}

func NewEventHandler(events EventStore) *EventHandler {
	return &EventHandler{events: events}
}

func (h *EventHandler) Register(router *httprouter.Router) {
	router.POST("/api/events", h.Create)
	router.GET("/api/events", h.List)
	router.GET("/api/events/:id", h.Get)
	router.PUT("/api/events/:id", h.Update)
	router.DELETE("/api/events/:id", h.Delete)
}

func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var event models.Event
	if err := decodeBody(r, &event); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	created, err := h.events.Create(r.Context(), event)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *EventHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	events, err := h.events.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if events == nil {
		events = []models.Event{}
	}
	writeJSON(w, http.StatusOK, events)
}

func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	event, err := h.events.Get(r.Context(), ps.ByName("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var event models.Event
	if err := decodeBody(r, &event); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	updated, err := h.events.Update(r.Context(), ps.ByName("id"), event)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.events.Delete(r.Context(), ps.ByName("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
