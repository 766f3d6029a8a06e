// Package main initializes and starts the food-ordering API server,
// setting up configuration, logging, the document store client,
// repositories, services, handlers and graceful shutdown.
package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	nethttp "net/http"

	"go.uber.org/zap"

	"github.com/familygrill/backend/internal/config"
	"github.com/familygrill/backend/internal/db"
	"github.com/familygrill/backend/internal/logger"
	"github.com/familygrill/backend/internal/repository"
	"github.com/familygrill/backend/internal/security"
	"github.com/familygrill/backend/internal/server/handler/http"
	"github.com/familygrill/backend/internal/service"
)

const (
	startupTimeout  = 5 * time.Second
	shutdownTimeout = 10 * time.Second
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init("info"); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	// Connect to the document store. The client is owned here and passed
	// down; it is released on shutdown.
	startupCtx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	client, err := db.InitMongo(startupCtx, options.MongoURI)
	cancel()
	if err != nil {
		zapLogger.Fatal("cannot init document store", zap.Error(err))
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			zapLogger.Error("document store disconnect", zap.Error(err))
		}
	}()

	database := client.Database(options.DatabaseName)

	// Initialize repositories, one per collection.
	userRepo := repository.NewUserRepository(database)
	productRepo := repository.NewProductRepository(database)
	orderRepo := repository.NewOrderRepository(database)
	reservationRepo := repository.NewReservationRepository(database)

	// Initialize business-logic services.
	hasher := security.NewHasher(options.BcryptCost)
	authService := service.NewAuthService(userRepo, hasher)
	catalogService := service.NewCatalogService(productRepo)
	orderService := service.NewOrderService(orderRepo)
	reservationService := service.NewReservationService(reservationRepo)

	// Create HTTP handlers.
	authHandler := &http.AuthHandler{AuthService: authService}
	productHandler := &http.ProductHandler{Catalog: catalogService}
	orderHandler := &http.OrderHandler{Orders: orderService}
	reservationHandler := &http.ReservationHandler{Reservations: reservationService}

	// Build the router with middleware and routes.
	router := http.NewRouter(
		authHandler,
		productHandler,
		orderHandler,
		reservationHandler,
		zapLogger,
		strings.Split(options.CORSOrigins, ","),
	)

	server := &nethttp.Server{
		Addr:    options.Addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		zapLogger.Info("starting HTTP server", zap.String("addr", options.Addr))
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			zapLogger.Fatal("server failed", zap.Error(err))
		}
	case sig := <-stop:
		zapLogger.Info("shutting down", zap.String("signal", sig.String()))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			zapLogger.Error("graceful shutdown failed", zap.Error(err))
		}
	}
}
