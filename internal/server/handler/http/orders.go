package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/familygrill/backend/internal/models"
)

// OrderService defines the interface for order operations required by
// the HTTP handlers.
type OrderService interface {
	// Create stores the submitted cart and returns the stored order.
	Create(ctx context.Context, o models.Order) (models.Order, error)
	// Get returns the order identified by the wire-form id.
	Get(ctx context.Context, rawID string) (models.Order, error)
	// Status returns the status of the order identified by the wire-form id.
	Status(ctx context.Context, rawID string) (string, error)
	// ListByEmail returns the orders placed under email, newest first.
	ListByEmail(ctx context.Context, email string) ([]models.Order, error)
}

// OrderHandler handles HTTP requests for order placement and tracking.
type OrderHandler struct {
	Orders OrderService
}

// Create handles POST /api/orders. The cart is stored as submitted;
// prices and totals are not recomputed against the catalog.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var o models.Order
	if err := json.NewDecoder(r.Body).Decode(&o); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
		return
	}

	created, err := h.Orders.Create(r.Context(), o)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// Get handles GET /api/orders/{id}.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// Status handles GET /api/orders/{id}/status for order tracking.
func (h *OrderHandler) Status(w http.ResponseWriter, r *http.Request) {
	rawID := chi.URLParam(r, "id")

	status, err := h.Orders.Status(r.Context(), rawID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"id":     rawID,
		"status": status,
	})
}

// List handles GET /api/orders?user_email=.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("user_email")
	if email == "" {
		writeError(w, http.StatusBadRequest, codeMissingField, "user_email is required")
		return
	}

	orders, err := h.Orders.ListByEmail(r.Context(), email)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, orders)
}
