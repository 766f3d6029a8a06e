// Package repository provides persistence implementations against the
// document store. Each repository owns one collection; all of them map the
// driver's "no documents" result to models.ErrNotFound so callers never
// depend on driver error values.
package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/familygrill/backend/internal/models"
)

// Collection names.
const (
	usersCollection        = "users"
	productsCollection     = "products"
	ordersCollection       = "orders"
	reservationsCollection = "reservations"
)

// listLimit caps every list query. There is no pagination beyond this.
const listLimit = 100

// mapFindErr translates the driver's miss sentinel into the domain one.
func mapFindErr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.ErrNotFound
	}
	return err
}
