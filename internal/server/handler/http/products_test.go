package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/familygrill/backend/internal/ids"
	"github.com/familygrill/backend/internal/models"
)

// fakeCatalogService implements CatalogService for testing.
type fakeCatalogService struct {
	listProducts []models.Product
	listErr      error
	getProduct   models.Product
	getErr       error
	created      models.Product
	createErr    error
	updated      models.Product
	updateErr    error

	gotCategory string
	gotSearch   string
	gotID       string
}

func (f *fakeCatalogService) List(ctx context.Context, category, search string) ([]models.Product, error) {
	f.gotCategory, f.gotSearch = category, search
	return f.listProducts, f.listErr
}
func (f *fakeCatalogService) Get(ctx context.Context, rawID string) (models.Product, error) {
	f.gotID = rawID
	return f.getProduct, f.getErr
}
func (f *fakeCatalogService) Create(ctx context.Context, p models.Product) (models.Product, error) {
	return f.created, f.createErr
}
func (f *fakeCatalogService) Update(ctx context.Context, rawID string, p models.Product) (models.Product, error) {
	f.gotID = rawID
	return f.updated, f.updateErr
}

// newRouterFor builds a chi router around a single ProductHandler so URL
// parameters are populated the same way as in production.
func newRouterFor(h *ProductHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/products", h.List)
	r.Post("/api/products", h.Create)
	r.Get("/api/products/{id}", h.Get)
	r.Put("/api/products/{id}", h.Update)
	return r
}

func TestProductHandler_List(t *testing.T) {
	service := &fakeCatalogService{
		listProducts: []models.Product{{Name: "Family Ribs"}, {Name: "Grilled Corn"}},
	}
	router := newRouterFor(&ProductHandler{Catalog: service})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/products?category=grill&search=ribs", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if service.gotCategory != "grill" || service.gotSearch != "ribs" {
		t.Errorf("service received (%q, %q); want (%q, %q)",
			service.gotCategory, service.gotSearch, "grill", "ribs")
	}

	var got []models.Product
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 products, got %d", len(got))
	}
}

func TestProductHandler_Get(t *testing.T) {
	tests := []struct {
		name         string
		id           string
		service      *fakeCatalogService
		expectedCode int
		expectedErr  string
	}{
		{
			name:         "malformed id",
			id:           "not-an-id",
			service:      &fakeCatalogService{getErr: fmt.Errorf("%w: %q", ids.ErrInvalidID, "not-an-id")},
			expectedCode: http.StatusBadRequest,
			expectedErr:  codeInvalidID,
		},
		{
			name:         "absent id",
			id:           "507f1f77bcf86cd799439011",
			service:      &fakeCatalogService{getErr: models.ErrNotFound},
			expectedCode: http.StatusNotFound,
			expectedErr:  codeNotFound,
		},
		{
			name:         "found",
			id:           "507f1f77bcf86cd799439011",
			service:      &fakeCatalogService{getProduct: models.Product{Name: "Family Ribs"}},
			expectedCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouterFor(&ProductHandler{Catalog: tt.service})

			rec := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/api/products/"+tt.id, nil)
			router.ServeHTTP(rec, req)

			if rec.Code != tt.expectedCode {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedCode, rec.Code, rec.Body.String())
			}
			if tt.service.gotID != tt.id {
				t.Errorf("service received id %q; want %q", tt.service.gotID, tt.id)
			}
			if tt.expectedErr != "" {
				var errRes errorResponse
				if err := json.NewDecoder(rec.Body).Decode(&errRes); err != nil {
					t.Fatalf("failed to decode error body: %v", err)
				}
				if errRes.Code != tt.expectedErr {
					t.Errorf("expected error code %q, got %q", tt.expectedErr, errRes.Code)
				}
			}
		})
	}
}

func TestProductHandler_Create(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		service      *fakeCatalogService
		expectedCode int
	}{
		{
			name:         "invalid JSON",
			body:         `{`,
			service:      &fakeCatalogService{},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "missing name",
			body:         `{"price":9.90,"category":"sides"}`,
			service:      &fakeCatalogService{},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "success",
			body:         `{"name":"Grilled Corn","price":9.90,"category":"sides"}`,
			service:      &fakeCatalogService{created: models.Product{Name: "Grilled Corn"}},
			expectedCode: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouterFor(&ProductHandler{Catalog: tt.service})

			rec := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/api/products", bytes.NewBufferString(tt.body))
			router.ServeHTTP(rec, req)

			if rec.Code != tt.expectedCode {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedCode, rec.Code, rec.Body.String())
			}
		})
	}
}
