// Package jobs provides scheduled background tasks for the shipment
// lifecycle service, implemented with github.com/robfig/cron/v3.
//
// The only job today is the tracking watchdog: it scans for in-flight
// loads that have stopped reporting positions and raises
// load.tracking.stale events so dispatchers can chase the carrier.
package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"tms/internal/core/application/usecases/queries"
	"tms/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleTrackingJob *StaleTrackingJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	staleTrackingHandler queries.GetStaleTrackingLoadsQueryHandler,
	publisher ports.EventPublisher,
	schedule string,
	window time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staleTrackingJob: NewStaleTrackingJob(staleTrackingHandler, publisher, schedule, window, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.staleTrackingJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale tracking job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleTrackingJob.Stop()
}
