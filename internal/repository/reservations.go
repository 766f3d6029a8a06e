package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/familygrill/backend/internal/models"
)

// ReservationRepository implements booking persistence against the
// "reservations" collection.
type ReservationRepository struct {
	coll *mongo.Collection
}

// NewReservationRepository creates a ReservationRepository bound to db.
func NewReservationRepository(db *mongo.Database) *ReservationRepository {
	return &ReservationRepository{coll: db.Collection(reservationsCollection)}
}

// Insert stores a new reservation and returns the id the store assigned.
func (r *ReservationRepository) Insert(ctx context.Context, res models.Reservation) (bson.ObjectID, error) {
	out, err := r.coll.InsertOne(ctx, res)
	if err != nil {
		return bson.NilObjectID, fmt.Errorf("Insert reservation: %w", err)
	}
	id, ok := out.InsertedID.(bson.ObjectID)
	if !ok {
		return bson.NilObjectID, fmt.Errorf("Insert reservation: unexpected inserted id type %T", out.InsertedID)
	}
	return id, nil
}

// FindByID returns the reservation with the given store id, or
// models.ErrNotFound.
func (r *ReservationRepository) FindByID(ctx context.Context, id bson.ObjectID) (models.Reservation, error) {
	var res models.Reservation
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&res); err != nil {
		return models.Reservation{}, fmt.Errorf("FindByID: %w", mapFindErr(err))
	}
	return res, nil
}

// UpdateStatus sets the status of the reservation with the given id.
// Returns models.ErrNotFound when the id matches no reservation.
func (r *ReservationRepository) UpdateStatus(ctx context.Context, id bson.ObjectID, status string) error {
	out, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return fmt.Errorf("UpdateStatus: %w", err)
	}
	if out.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}
