package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/familygrill/backend/internal/models"
)

// ReservationService defines the interface for booking operations
// required by the HTTP handlers.
type ReservationService interface {
	// Create stores a new booking with the initial pending status.
	Create(ctx context.Context, res models.Reservation) (models.Reservation, error)
	// Get returns the reservation identified by the wire-form id.
	Get(ctx context.Context, rawID string) (models.Reservation, error)
	// UpdateStatus moves the reservation to a new status.
	UpdateStatus(ctx context.Context, rawID, status string) (models.Reservation, error)
}

// ReservationHandler handles HTTP requests for table and event bookings.
type ReservationHandler struct {
	Reservations ReservationService
}

// Create handles POST /api/reservations.
func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var res models.Reservation
	if err := json.NewDecoder(r.Body).Decode(&res); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
		return
	}
	if res.CustomerName == "" || res.Phone == "" || res.DateTime == "" {
		writeError(w, http.StatusBadRequest, codeMissingField, "customer_name, phone and date_time are required")
		return
	}

	created, err := h.Reservations.Create(r.Context(), res)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// Get handles GET /api/reservations/{id}.
func (h *ReservationHandler) Get(w http.ResponseWriter, r *http.Request) {
	reservation, err := h.Reservations.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, reservation)
}

// UpdateStatus handles PATCH /api/reservations/{id}/status with a JSON
// body of the form {"status": "confirmed"}.
func (h *ReservationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
		return
	}

	updated, err := h.Reservations.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}
