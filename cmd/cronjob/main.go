package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"tweederent-backend/internal/config"
	"tweederent-backend/internal/jobs"
	"tweederent-backend/internal/logger"
	"tweederent-backend/internal/repository"
	"tweederent-backend/internal/repository/firestore"
	"tweederent-backend/internal/repository/memory"
	"tweederent-backend/internal/scheduler"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'expire-stale-requests', 'reconcile-ratings', 'all-nightly')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Tweederent Cronjob Runner...", "log_level", cfg.Log.Level)

	ctx := context.Background()

	// Initialize the document store
	var (
		userRepo   repository.UserRepository
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
		rentalRepo = store.RentalRepository
		reviewRepo = store.ReviewRepository
		logger.Info("Firestore connection established", "project_id", cfg.Firebase.ProjectID)
	default:
		store := memory.NewStore()
		userRepo = store.Users()
		rentalRepo = store.Rentals()
		reviewRepo = store.Reviews()
		logger.Info("Using in-memory store")
	}

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(userRepo, rentalRepo, reviewRepo, cfg)

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	// Initialize Scheduler
	cronScheduler := scheduler.NewScheduler(jobRunner)

	// Start scheduler
	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down cronjob scheduler...")
	cronScheduler.Stop()
	logger.Info("Cronjob scheduler stopped. Goodbye!")
}

// runJobOnce runs a specific job once and exits
func runJobOnce(jobRunner *jobs.JobRunner, jobName string) {
	switch jobName {
	case "expire-stale-requests":
		jobRunner.ExpireStalePendingRequests()
	case "reconcile-ratings":
		jobRunner.ReconcileUserRatings()
	case "all-nightly":
		jobRunner.RunAllNightlyJobs()
	default:
		logger.Error("Unknown job name", "job", jobName)
		fmt.Printf("Available jobs:\n")
		fmt.Printf("  - expire-stale-requests\n")
		fmt.Printf("  - reconcile-ratings\n")
		fmt.Printf("  - all-nightly\n")
		os.Exit(1)
	}
}
