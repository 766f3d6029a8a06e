package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/familygrill/backend/internal/models"
)

// OrderRepository implements order persistence against the "orders"
// collection.
type OrderRepository struct {
	coll *mongo.Collection
}

// NewOrderRepository creates an OrderRepository bound to db.
func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{coll: db.Collection(ordersCollection)}
}

// Insert stores a new order and returns the id the store assigned.
func (r *OrderRepository) Insert(ctx context.Context, o models.Order) (bson.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, o)
	if err != nil {
		return bson.NilObjectID, fmt.Errorf("Insert order: %w", err)
	}
	id, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return bson.NilObjectID, fmt.Errorf("Insert order: unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

// FindByID returns the order with the given store id, or models.ErrNotFound.
func (r *OrderRepository) FindByID(ctx context.Context, id bson.ObjectID) (models.Order, error) {
	var o models.Order
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&o); err != nil {
		return models.Order{}, fmt.Errorf("FindByID: %w", mapFindErr(err))
	}
	return o, nil
}

// ListByEmail returns the orders placed under email, newest first, capped
// at listLimit. Insertion order follows the store-assigned id.
func (r *OrderRepository) ListByEmail(ctx context.Context, email string) ([]models.Order, error) {
	cur, err := r.coll.Find(ctx, bson.M{"user_email": email},
		options.Find().SetSort(bson.D{{Key: "_id", Value: -1}}).SetLimit(listLimit))
	if err != nil {
		return nil, fmt.Errorf("ListByEmail: %w", err)
	}
	defer cur.Close(ctx)

	var orders []models.Order
	if err := cur.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("ListByEmail: %w", err)
	}
	return orders, nil
}
