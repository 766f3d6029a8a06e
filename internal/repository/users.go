package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/familygrill/backend/internal/models"
)

// UserRepository implements user persistence against the "users" collection.
type UserRepository struct {
	coll *mongo.Collection
}

// NewUserRepository creates a UserRepository bound to db.
func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

// EmailExists reports whether a user with the given email is registered.
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		return true, nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	return false, fmt.Errorf("EmailExists: %w", err)
}

// FindByEmail returns the user registered under email, or models.ErrNotFound.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		return models.User{}, fmt.Errorf("FindByEmail: %w", mapFindErr(err))
	}
	return u, nil
}

// FindByID returns the user with the given store id, or models.ErrNotFound.
func (r *UserRepository) FindByID(ctx context.Context, id bson.ObjectID) (models.User, error) {
	var u models.User
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return models.User{}, fmt.Errorf("FindByID: %w", mapFindErr(err))
	}
	return u, nil
}

// Insert stores a new user and returns the id the store assigned. The
// zero ID on u is omitted from the document via its bson tag.
func (r *UserRepository) Insert(ctx context.Context, u models.User) (bson.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, u)
	if err != nil {
		return bson.NilObjectID, fmt.Errorf("Insert user: %w", err)
	}
	id, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return bson.NilObjectID, fmt.Errorf("Insert user: unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

// UpdateProfile sets name and phone on the user registered under email.
// Returns models.ErrNotFound when the email matches no user.
func (r *UserRepository) UpdateProfile(ctx context.Context, email, name, phone string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"name": name, "phone": phone}},
	)
	if err != nil {
		return fmt.Errorf("UpdateProfile: %w", err)
	}
	if res.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

// UpdatePasswordHash replaces the stored credential hash for email.
// Returns models.ErrNotFound when the email matches no user.
func (r *UserRepository) UpdatePasswordHash(ctx context.Context, email, hash string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"password_hash": hash}},
	)
	if err != nil {
		return fmt.Errorf("UpdatePasswordHash: %w", err)
	}
	if res.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}
