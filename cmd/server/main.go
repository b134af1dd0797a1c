package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	httpapi "partyrent-backend/internal/api/http"
	"partyrent-backend/internal/config"
	"partyrent-backend/internal/logger"
	"partyrent-backend/internal/repository/postgres"
	"partyrent-backend/internal/security"
	"partyrent-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// .env is optional; real deployments set env vars directly
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Partyrent Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize Services
	notifier := service.NewSendgridNotifier(cfg.Email.APIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	availabilitySvc := service.NewAvailabilityService(store.VariationRepository, store.BookingRepository)
	variationSvc := service.NewVariationService(store.VariationRepository, store.RentalItemRepository)
	itemSvc := service.NewItemService(store.RentalItemRepository)
	bookingSvc := service.NewBookingService(
		store.BookingRepository,
		store.VariationRepository,
		store.RentalItemRepository,
		availabilitySvc,
		notifier,
	)

	// Initialize HTTP handlers
	bookingHandler := httpapi.NewBookingHandler(bookingSvc)
	variationHandler := httpapi.NewVariationHandler(variationSvc, availabilitySvc, bookingSvc)
	itemHandler := httpapi.NewItemHandler(itemSvc)
	auth := httpapi.NewAuthMiddleware(store.APIKeyRepository, tokenManager)

	router := httpapi.NewRouter(bookingHandler, variationHandler, itemHandler, auth)

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down HTTP server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}
