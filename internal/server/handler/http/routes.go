package http

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/familygrill/backend/internal/middleware"
)

// NewRouter constructs and returns the HTTP handler serving the API.
// It applies request-id tagging, request logging, CORS and JSON
// content-type enforcement, and mounts all routes under /api.
//
// Routes:
//
//	POST  /api/register                  → authHandler.Register
//	POST  /api/login                     → authHandler.Login
//	PUT   /api/users/profile             → authHandler.UpdateProfile
//	POST  /api/users/password            → authHandler.ChangePassword
//	GET   /api/products                  → productHandler.List
//	POST  /api/products                  → productHandler.Create
//	GET   /api/products/{id}             → productHandler.Get
//	PUT   /api/products/{id}             → productHandler.Update
//	POST  /api/orders                    → orderHandler.Create
//	GET   /api/orders                    → orderHandler.List
//	GET   /api/orders/{id}               → orderHandler.Get
//	GET   /api/orders/{id}/status        → orderHandler.Status
//	POST  /api/reservations              → reservationHandler.Create
//	GET   /api/reservations/{id}         → reservationHandler.Get
//	PATCH /api/reservations/{id}/status  → reservationHandler.UpdateStatus
func NewRouter(
	authHandler *AuthHandler,
	productHandler *ProductHandler,
	orderHandler *OrderHandler,
	reservationHandler *ReservationHandler,
	logger *zap.Logger,
	corsOrigins []string,
) http.Handler {
	r := chi.NewRouter()

	// Tag every request with an id and log it
	r.Use(middleware.WithRequestID)
	r.Use(middleware.WithRequestLogging(logger))
	// Browser clients talk to the API directly
	r.Use(middleware.CORS(corsOrigins))
	// Only allow requests with Content-Type: application/json
	r.Use(chiMiddleware.AllowContentType("application/json"))

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Put("/users/profile", authHandler.UpdateProfile)
		r.Post("/users/password", authHandler.ChangePassword)

		r.Get("/products", productHandler.List)
		r.Post("/products", productHandler.Create)
		r.Get("/products/{id}", productHandler.Get)
		r.Put("/products/{id}", productHandler.Update)

		r.Post("/orders", orderHandler.Create)
		r.Get("/orders", orderHandler.List)
		r.Get("/orders/{id}", orderHandler.Get)
		r.Get("/orders/{id}/status", orderHandler.Status)

		r.Post("/reservations", reservationHandler.Create)
		r.Get("/reservations/{id}", reservationHandler.Get)
		r.Patch("/reservations/{id}/status", reservationHandler.UpdateStatus)
	})

	return r
}
