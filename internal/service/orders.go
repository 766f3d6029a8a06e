package service

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/familygrill/backend/internal/ids"
	"github.com/familygrill/backend/internal/models"
)

// OrderRepository defines the persistence operations required by the
// order service.
type OrderRepository interface {
	// Insert creates a new order record and returns the assigned id.
	Insert(ctx context.Context, o models.Order) (bson.ObjectID, error)
	// FindByID returns the order with the given store id.
	FindByID(ctx context.Context, id bson.ObjectID) (models.Order, error)
	// ListByEmail returns the orders placed under email, newest first.
	ListByEmail(ctx context.Context, email string) ([]models.Order, error)
}

// OrderService implements order placement and tracking.
type OrderService struct {
	repo OrderRepository
}

// NewOrderService constructs an OrderService using the provided repository.
func NewOrderService(repo OrderRepository) *OrderService {
	return &OrderService{repo: repo}
}

// Create stores the submitted cart with the initial status. Item prices
// and totals are stored exactly as the client sent them; the catalog is
// not consulted. Returns the stored record as the store re-read it.
func (s *OrderService) Create(ctx context.Context, o models.Order) (models.Order, error) {
	o.ID = bson.NilObjectID
	o.Status = models.OrderConfirmed

	id, err := s.repo.Insert(ctx, o)
	if err != nil {
		return models.Order{}, err
	}
	return s.repo.FindByID(ctx, id)
}

// Get returns the order identified by the wire-form id, with the usual
// ids.ErrInvalidID / models.ErrNotFound split.
func (s *OrderService) Get(ctx context.Context, rawID string) (models.Order, error) {
	id, err := ids.Parse(rawID)
	if err != nil {
		return models.Order{}, err
	}
	return s.repo.FindByID(ctx, id)
}

// Status returns only the status of the order identified by the wire-form id.
func (s *OrderService) Status(ctx context.Context, rawID string) (string, error) {
	o, err := s.Get(ctx, rawID)
	if err != nil {
		return "", err
	}
	return o.Status, nil
}

// ListByEmail returns the orders placed under email, newest first. The
// result is never nil.
func (s *OrderService) ListByEmail(ctx context.Context, email string) ([]models.Order, error) {
	orders, err := s.repo.ListByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}
