package service

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/familygrill/backend/internal/ids"
	"github.com/familygrill/backend/internal/models"
)

// ProductRepository defines the persistence operations required by the
// catalog service.
type ProductRepository interface {
	// List returns products matching the optional category and search filters.
	List(ctx context.Context, category, search string) ([]models.Product, error)
	// FindByID returns the product with the given store id.
	FindByID(ctx context.Context, id bson.ObjectID) (models.Product, error)
	// Insert creates a new product record and returns the assigned id.
	Insert(ctx context.Context, p models.Product) (bson.ObjectID, error)
	// Update overwrites the mutable fields of the product with the given id.
	Update(ctx context.Context, id bson.ObjectID, p models.Product) error
}

// CatalogService implements product listing and administration.
type CatalogService struct {
	repo ProductRepository
}

// NewCatalogService constructs a CatalogService using the provided repository.
func NewCatalogService(repo ProductRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// List returns catalog items filtered by the optional category and
// case-insensitive search term. The result is never nil.
func (s *CatalogService) List(ctx context.Context, category, search string) ([]models.Product, error) {
	products, err := s.repo.List(ctx, category, search)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// Get returns the product identified by the wire-form id. A malformed id
// yields ids.ErrInvalidID before any lookup; a well-formed id with no
// match yields models.ErrNotFound.
func (s *CatalogService) Get(ctx context.Context, rawID string) (models.Product, error) {
	id, err := ids.Parse(rawID)
	if err != nil {
		return models.Product{}, err
	}
	return s.repo.FindByID(ctx, id)
}

// Create stores a new catalog item. The store assigns the id; any id on p
// is discarded. Returns the stored record as the store re-read it.
func (s *CatalogService) Create(ctx context.Context, p models.Product) (models.Product, error) {
	p.ID = bson.NilObjectID
	id, err := s.repo.Insert(ctx, p)
	if err != nil {
		return models.Product{}, err
	}
	return s.repo.FindByID(ctx, id)
}

// Update overwrites the product identified by the wire-form id and returns
// the updated record.
func (s *CatalogService) Update(ctx context.Context, rawID string, p models.Product) (models.Product, error) {
	id, err := ids.Parse(rawID)
	if err != nil {
		return models.Product{}, err
	}
	if err := s.repo.Update(ctx, id, p); err != nil {
		return models.Product{}, err
	}
	return s.repo.FindByID(ctx, id)
}
