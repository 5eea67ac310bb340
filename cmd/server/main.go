package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"time"

	httpapi "tweederent-backend/internal/api/http"
	"tweederent-backend/internal/config"
	"tweederent-backend/internal/identity"
	"tweederent-backend/internal/logger"
	"tweederent-backend/internal/repository"
	"tweederent-backend/internal/repository/firestore"
	"tweederent-backend/internal/repository/memory"
	"tweederent-backend/internal/service"
	"tweederent-backend/internal/storage"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Tweederent Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Store configuration", "backend", cfg.Store.Backend)
	logger.Info("Auth configuration", "mode", cfg.Auth.Mode)

	ctx := context.Background()

	// Initialize the document store
	var (
		userRepo   repository.UserRepository
		deviceRepo repository.DeviceRepository
		rentalRepo repository.RentalRepository
		reviewRepo repository.ReviewRepository
	)
	switch cfg.Store.Backend {
	case "firestore":
		store, err := firestore.NewStore(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
		if err != nil {
			logger.Error("Failed to connect to Firestore", "error", err)
			log.Fatalf("Failed to connect to Firestore: %v", err)
		}
		defer store.Close()
		userRepo = store.UserRepository
		deviceRepo = store.DeviceRepository
		rentalRepo = store.RentalRepository
		reviewRepo = store.ReviewRepository
		logger.Info("Firestore connection established", "project_id", cfg.Firebase.ProjectID)
	default:
		store := memory.NewStore()
		userRepo = store.Users()
		deviceRepo = store.Devices()
		rentalRepo = store.Rentals()
		reviewRepo = store.Reviews()
		logger.Info("Using in-memory store")
	}

	// Initialize the identity provider
	var provider identity.Provider
	if cfg.Auth.Mode == "firebase" {
		fb, err := identity.NewFirebaseProvider(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
		if err != nil {
			logger.Error("Failed to initialize Firebase auth", "error", err)
			log.Fatalf("Failed to initialize Firebase auth: %v", err)
		}
		provider = fb
	} else {
		provider = identity.NewLocalProvider(userRepo, cfg.Auth.JWTSecret,
			time.Duration(cfg.Auth.TokenExpiryMinutes)*time.Minute)
	}

	// Initialize object storage
	var objectStorage storage.ObjectStorage
	var mockStorage *storage.MockStorageService
	if cfg.Storage.Type == "firebase" {
		fbStorage, err := storage.NewFirebaseStorageService(ctx, cfg.Firebase.ProjectID, cfg.Firebase.StorageBucket, cfg.Firebase.CredentialsFile)
		if err != nil {
			logger.Error("Failed to initialize Firebase storage", "error", err)
			log.Fatalf("Failed to initialize Firebase storage: %v", err)
		}
		objectStorage = fbStorage
	} else {
		logger.Info("Using mock storage (local filesystem)", "upload_dir", cfg.Storage.UploadDir)
		mockStorage, err = storage.NewMockStorageService(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
		if err != nil {
			logger.Error("Failed to initialize mock storage", "error", err)
			log.Fatalf("Failed to initialize mock storage: %v", err)
		}
		objectStorage = mockStorage
	}

	// Initialize Email Service
	var emailSvc service.EmailService
	if cfg.Email.SendGridAPIKey != "" {
		emailSvc = service.NewSendGridEmailService(cfg.Email.SendGridAPIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	} else {
		emailSvc = service.NewNoopEmailService()
	}

	// Initialize Services
	bookingSvc := service.NewBookingService(rentalRepo, deviceRepo, userRepo, emailSvc)
	rentalSvc := service.NewRentalService(rentalRepo, deviceRepo, userRepo, emailSvc)
	reviewSvc := service.NewReviewService(reviewRepo, rentalRepo, userRepo)
	deviceSvc := service.NewDeviceService(deviceRepo, objectStorage)
	userSvc := service.NewUserService(userRepo)

	// Initialize HTTP handlers and routes
	router := httpapi.NewRouter(httpapi.Handlers{
		Auth:   httpapi.NewAuthHandler(provider, userRepo),
		Device: httpapi.NewDeviceHandler(deviceSvc),
		Rental: httpapi.NewRentalHandler(bookingSvc, rentalSvc),
		Review: httpapi.NewReviewHandler(reviewSvc),
		User:   httpapi.NewUserHandler(userSvc),
	}, provider, mockStorage)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
