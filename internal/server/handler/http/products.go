package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/familygrill/backend/internal/models"
)

// CatalogService defines the interface for catalog operations required
// by the HTTP handlers.
type CatalogService interface {
	// List returns products matching the optional category and search filters.
	List(ctx context.Context, category, search string) ([]models.Product, error)
	// Get returns the product identified by the wire-form id.
	Get(ctx context.Context, rawID string) (models.Product, error)
	// Create stores a new catalog item.
	Create(ctx context.Context, p models.Product) (models.Product, error)
	// Update overwrites the product identified by the wire-form id.
	Update(ctx context.Context, rawID string, p models.Product) (models.Product, error)
}

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	Catalog CatalogService
}

// List handles GET /api/products?category=&search=.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	search := r.URL.Query().Get("search")

	products, err := h.Catalog.List(r.Context(), category, search)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// Get handles GET /api/products/{id}. A malformed id is a 400, a
// well-formed id with no match is a 404.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	product, err := h.Catalog.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Create handles POST /api/products.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p models.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
		return
	}
	if p.Name == "" {
		writeError(w, http.StatusBadRequest, codeMissingField, "name is required")
		return
	}

	created, err := h.Catalog.Create(r.Context(), p)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// Update handles PUT /api/products/{id}.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var p models.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
		return
	}
	if p.Name == "" {
		writeError(w, http.StatusBadRequest, codeMissingField, "name is required")
		return
	}

	updated, err := h.Catalog.Update(r.Context(), chi.URLParam(r, "id"), p)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}
