// Package models defines the core data structures for users, products,
// orders and reservations, plus the request payloads accepted by the API.
package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Role values assigned to users. New registrations default to RoleCustomer.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// User represents an application user as stored in the "users" collection.
// The store key is exposed as "id" on the wire and omitted on insert so the
// store assigns it. The password hash never leaves the server.
type User struct {
	ID            bson.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email         string        `bson:"email" json:"email"`
	PasswordHash  string        `bson:"password_hash" json:"-"`
	Name          string        `bson:"name,omitempty" json:"name,omitempty"`
	Phone         string        `bson:"phone,omitempty" json:"phone,omitempty"`
	AcceptedTerms bool          `bson:"accepted_terms" json:"accepted_terms"`
	Active        bool          `bson:"active" json:"active"`
	Role          string        `bson:"role" json:"role"`
}

// RegisterRequest is the JSON payload for user registration.
type RegisterRequest struct {
	Email         string `json:"email"`
	Password      string `json:"password"`
	Confirm       string `json:"confirm"`
	AcceptedTerms bool   `json:"accepted_terms"`
}

// LoginRequest is the JSON payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileUpdate is the JSON payload for updating contact details.
type ProfileUpdate struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// PasswordChange is the JSON payload for changing a password.
type PasswordChange struct {
	Email           string `json:"email"`
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// Spec is a single name/value specification entry on a product
// (e.g. "serves" / "4 people").
type Spec struct {
	Name  string `bson:"name" json:"name"`
	Value string `bson:"value" json:"value"`
}

// Product represents a catalog item in the "products" collection.
type Product struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string        `bson:"name" json:"name"`
	Description string        `bson:"description" json:"description"`
	Price       float64       `bson:"price" json:"price"`
	Category    string        `bson:"category" json:"category"`
	Image       string        `bson:"image" json:"image"`
	Specs       []Spec        `bson:"specs,omitempty" json:"specs,omitempty"`
	OnSale      bool          `bson:"on_sale" json:"on_sale"`
	// RegularPrice is the pre-discount price, set only when OnSale is true.
	RegularPrice float64 `bson:"regular_price,omitempty" json:"regular_price,omitempty"`
}

// OrderItem is one line of a submitted cart. ProductID is stored as the
// client sent it and is not checked against the catalog; the order keeps
// its own snapshot of name and price.
type OrderItem struct {
	ProductID string  `bson:"product_id" json:"product_id"`
	Quantity  int     `bson:"quantity" json:"quantity"`
	Name      string  `bson:"name" json:"name"`
	Price     float64 `bson:"price" json:"price"`
}

// Order statuses.
const (
	OrderConfirmed = "confirmed"
	OrderPreparing = "preparing"
	OrderDelivered = "delivered"
)

// Order represents a placed order in the "orders" collection.
type Order struct {
	ID             bson.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Items          []OrderItem   `bson:"items" json:"items"`
	Subtotal       float64       `bson:"subtotal" json:"subtotal"`
	Shipping       float64       `bson:"shipping" json:"shipping"`
	Discount       float64       `bson:"discount" json:"discount"`
	Total          float64       `bson:"total" json:"total"`
	DeliveryMethod string        `bson:"delivery_method" json:"delivery_method"`
	PaymentMethod  string        `bson:"payment_method" json:"payment_method"`
	UserEmail      string        `bson:"user_email,omitempty" json:"user_email,omitempty"`
	Branch         string        `bson:"branch,omitempty" json:"branch,omitempty"`
	Address        string        `bson:"address,omitempty" json:"address,omitempty"`
	Status         string        `bson:"status" json:"status"`
}

// Reservation statuses.
const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
)

// Reservation represents a table or event booking in the
// "reservations" collection.
type Reservation struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CustomerName string        `bson:"customer_name" json:"customer_name"`
	Phone        string        `bson:"phone" json:"phone"`
	DateTime     string        `bson:"date_time" json:"date_time"`
	Guests       int           `bson:"guests" json:"guests"`
	Branch       string        `bson:"branch" json:"branch"`
	Menu         string        `bson:"menu,omitempty" json:"menu,omitempty"`
	Status       string        `bson:"status" json:"status"`
}
