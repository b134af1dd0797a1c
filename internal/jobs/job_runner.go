package jobs

import (
	"database/sql"
	"log/slog"

	"partyrent-backend/internal/config"
	"partyrent-backend/internal/logger"
	"partyrent-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs.
type JobRunner struct {
	db       *sql.DB
	notifier service.NotifierService
	config   *config.Config
	log      *slog.Logger
}

func NewJobRunner(db *sql.DB, notifier service.NotifierService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		db:       db,
		notifier: notifier,
		config:   cfg,
		log:      logger.WithService("jobs"),
	}
}

// Config exposes the loaded configuration to the scheduler.
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery.
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			jr.log.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	jr.log.Info("Starting job", "job", jobName)
	jobFunc()
	jr.log.Info("Job completed", "job", jobName)
}

// RunAllNightlyJobs runs all nightly jobs (for manual execution).
func (jr *JobRunner) RunAllNightlyJobs() {
	jr.MarkOverdueBookings()
	jr.SendBookingReminders()
}
