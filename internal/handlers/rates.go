package handlers

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/uparkdev/parking-backend/internal/models"
)

// TimeRateStore is the subset of the time rate service the handler needs.
type TimeRateStore interface {
	Create(ctx context.Context, rate models.TimeRate) (*models.TimeRate, error)
	Get(ctx context.Context, id string) (*models.TimeRate, error)
	List(ctx context.Context) ([]models.TimeRate, error)
	Update(ctx context.Context, id string, rate models.TimeRate) (*models.TimeRate, error)
	Delete(ctx context.Context, id string) error
}

// DailyRateStore is the subset of the daily rate service the handler needs.
type DailyRateStore interface {
	Create(ctx context.Context, rate models.DailyRate) (*models.DailyRate, error)
	Get(ctx context.Context, id string) (*models.DailyRate, error)
	List(ctx context.Context) ([]models.DailyRate, error)
	Update(ctx context.Context, id string, rate models.DailyRate) (*models.DailyRate, error)
	Delete(ctx context.Context, id string) error
	RemoveNightWindow(ctx context.Context, id string) (*models.DailyRate, error)
}

// MonthlyRateStore is the subset of the monthly rate service the handler needs.
type MonthlyRateStore interface {
	Create(ctx context.Context, rate models.MonthlyRate) (*models.MonthlyRate, error)
	Get(ctx context.Context, id string) (*models.MonthlyRate, error)
	List(ctx context.Context) ([]models.MonthlyRate, error)
	Update(ctx context.Context, id string, rate models.MonthlyRate) (*models.MonthlyRate, error)
	Delete(ctx context.Context, id string) error
}

// RateHandler handles pricing table requests for all three billing modes.
type RateHandler struct {
	timeRates    TimeRateStore
	dailyRates   DailyRateStore
	monthlyRates MonthlyRateStore
}

// NewRateHandler creates a new rate handler
func NewRateHandler(timeRates TimeRateStore, dailyRates DailyRateStore, monthlyRates MonthlyRateStore) *RateHandler {
	return &RateHandler{
		timeRates:    timeRates,
		dailyRates:   dailyRates,
		monthlyRates: monthlyRates,
	}
}

// Register wires the handler into the router.
func (h *RateHandler) Register(router *httprouter.Router) {
	router.POST("/api/time-rates", h.CreateTimeRate)
	router.GET("/api/time-rates", h.ListTimeRates)
	router.GET("/api/time-rates/:id", h.GetTimeRate)
	router.PUT("/api/time-rates/:id", h.UpdateTimeRate)
	router.DELETE("/api/time-rates/:id", h.DeleteTimeRate)

	router.POST("/api/daily-rates", h.CreateDailyRate)
	router.GET("/api/daily-rates", h.ListDailyRates)
	router.GET("/api/daily-rates/:id", h.GetDailyRate)
	router.PUT("/api/daily-rates/:id", h.UpdateDailyRate)
	router.DELETE("/api/daily-rates/:id", h.DeleteDailyRate)
	router.DELETE("/api/daily-rates/:id/night-window", h.RemoveNightWindow)

	router.POST("/api/monthly-rates", h.CreateMonthlyRate)
	router.GET("/api/monthly-rates", h.ListMonthlyRates)
	router.GET("/api/monthly-rates/:id", h.GetMonthlyRate)
	router.PUT("/api/monthly-rates/:id", h.UpdateMonthlyRate)
	router.DELETE("/api/monthly-rates/:id", h.DeleteMonthlyRate)
}

func (h *RateHandler) CreateTimeRate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var rate models.TimeRate
	if err := decodeBody(r, &rate); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	created, err := h.timeRates.Create(r.Context(), rate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *RateHandler) ListTimeRates(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	rates, err := h.timeRates.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if rates == nil {
		rates = []models.TimeRate{}
	}
	writeJSON(w, http.StatusOK, rates)
}

func (h *RateHandler) GetTimeRate(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	rate, err := h.timeRates.Get(r.Context(), ps.ByName("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rate)
}

func (h *RateHandler) UpdateTimeRate(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var rate models.TimeRate
	if err := decodeBody(r, &rate); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	updated, err := h.timeRates.Update(r.Context(), ps.ByName("id"), rate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *RateHandler) DeleteTimeRate(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.timeRates.Delete(r.Context(), ps.ByName("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *RateHandler) CreateDailyRate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var rate models.DailyRate
	if err := decodeBody(r, &rate); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	created, err := h.dailyRates.Create(r.Context(), rate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *RateHandler) ListDailyRates(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	rates, err := h.dailyRates.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if rates == nil {
		rates = []models.DailyRate{}
	}
	writeJSON(w, http.StatusOK, rates)
}

func (h *RateHandler) GetDailyRate(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	rate, err := h.dailyRates.Get(r.Context(), ps.ByName("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rate)
}

func (h *RateHandler) UpdateDailyRate(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var rate models.DailyRate
	if err := decodeBody(r, &rate); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	updated, err := h.dailyRates.Update(r.Context(), ps.ByName("id"), rate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *RateHandler) DeleteDailyRate(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.dailyRates.Delete(r.Context(), ps.ByName("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RemoveNightWindow drops the surcharge window from a daily rate
// without touching the rest of the rate.
func (h *RateHandler) RemoveNightWindow(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	rate, err := h.dailyRates.RemoveNightWindow(r.Context(), ps.ByName("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rate)
}

func (h *RateHandler) CreateMonthlyRate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var rate models.MonthlyRate
	if err := decodeBody(r, &rate); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	created, err := h.monthlyRates.Create(r.Context(), rate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *RateHandler) ListMonthlyRates(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	rates, err := h.monthlyRates.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if rates == nil {
		rates = []models.MonthlyRate{}
	}
	writeJSON(w, http.StatusOK, rates)
}

func (h *RateHandler) GetMonthlyRate(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	rate, err := h.monthlyRates.Get(r.Context(), ps.ByName("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rate)
}

func (h *RateHandler) UpdateMonthlyRate(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var rate models.MonthlyRate
	if err := decodeBody(r, &rate); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	updated, err := h.monthlyRates.Update(r.Context(), ps.ByName("id"), rate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *RateHandler) DeleteMonthlyRate(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.monthlyRates.Delete(r.Context(), ps.ByName("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
