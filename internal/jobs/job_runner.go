package jobs

import (
	"tweederent-backend/internal/config"
	"tweederent-backend/internal/logger"
	"tweederent-backend/internal/repository"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	users   repository.UserRepository
	rentals repository.RentalRepository
	reviews repository.ReviewRepository
	config  *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(users repository.UserRepository, rentals repository.RentalRepository, reviews repository.ReviewRepository, cfg *config.Config) *JobRunner {
	return &JobRunner{
		users:   users,
		rentals: rentals,
		reviews: reviews,
		config:  cfg,
	}
}

// Config exposes the configuration to the scheduler
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllNightlyJobs runs all nightly jobs (for manual execution)
func (jr *JobRunner) RunAllNightlyJobs() {
	jr.ExpireStalePendingRequests()
	jr.ReconcileUserRatings()
}
