package service

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/familygrill/backend/internal/ids"
	"github.com/familygrill/backend/internal/models"
)

// ReservationRepository defines the persistence operations required by
// the reservation service.
type ReservationRepository interface {
	// Insert creates a new reservation record and returns the assigned id.
	Insert(ctx context.Context, res models.Reservation) (bson.ObjectID, error)
	// FindByID returns the reservation with the given store id.
	FindByID(ctx context.Context, id bson.ObjectID) (models.Reservation, error)
	// UpdateStatus sets the status of the reservation with the given id.
	UpdateStatus(ctx context.Context, id bson.ObjectID, status string) error
}

// validReservationStatus is the set of statuses a reservation may move to.
var validReservationStatus = map[string]bool{
	models.ReservationPending:   true,
	models.ReservationConfirmed: true,
	models.ReservationCancelled: true,
}

// ReservationService implements table and event bookings.
type ReservationService struct {
	repo ReservationRepository
}

// NewReservationService constructs a ReservationService using the
// provided repository.
func NewReservationService(repo ReservationRepository) *ReservationService {
	return &ReservationService{repo: repo}
}

// Create stores a new booking with the initial pending status. Bookings
// for zero or negative guests are rejected.
func (s *ReservationService) Create(ctx context.Context, res models.Reservation) (models.Reservation, error) {
	if res.Guests <= 0 {
		return models.Reservation{}, models.ErrInvalidGuests
	}

	res.ID = bson.NilObjectID
	res.Status = models.ReservationPending

	id, err := s.repo.Insert(ctx, res)
	if err != nil {
		return models.Reservation{}, err
	}
	return s.repo.FindByID(ctx, id)
}

// Get returns the reservation identified by the wire-form id, with the
// usual ids.ErrInvalidID / models.ErrNotFound split.
func (s *ReservationService) Get(ctx context.Context, rawID string) (models.Reservation, error) {
	id, err := ids.Parse(rawID)
	if err != nil {
		return models.Reservation{}, err
	}
	return s.repo.FindByID(ctx, id)
}

// UpdateStatus moves the reservation identified by the wire-form id to
// status. Unknown status values yield models.ErrInvalidStatus.
func (s *ReservationService) UpdateStatus(ctx context.Context, rawID, status string) (models.Reservation, error) {
	if !validReservationStatus[status] {
		return models.Reservation{}, models.ErrInvalidStatus
	}
	id, err := ids.Parse(rawID)
	if err != nil {
		return models.Reservation{}, err
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return models.Reservation{}, err
	}
	return s.repo.FindByID(ctx, id)
}
