package jobs

import (
	"context"
	"log/slog"
	"time"

	"tms/internal/core/application/usecases/queries"
	"tms/internal/core/domain/events"
	"tms/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// StaleTrackingJob is the tracking watchdog. It periodically scans for
// in-flight loads whose last position report is older than the staleness
// window and raises a load.tracking.stale event for each one.
type StaleTrackingJob struct {
	handler   queries.GetStaleTrackingLoadsQueryHandler
	publisher ports.EventPublisher
	window    time.Duration
	schedule  string
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewStaleTrackingJob creates the watchdog. The schedule is a cron
// expression with seconds; the window is how long a load may go without a
// position report before being flagged.
func NewStaleTrackingJob(
	handler queries.GetStaleTrackingLoadsQueryHandler,
	publisher ports.EventPublisher,
	schedule string,
	window time.Duration,
	logger *slog.Logger,
) *StaleTrackingJob {
	return &StaleTrackingJob{
		handler:   handler,
		publisher: publisher,
		window:    window,
		schedule:  schedule,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "stale_tracking_job"),
	}
}

// Start begins the periodic stale-tracking scan.
func (j *StaleTrackingJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale tracking job started",
		"schedule", j.schedule, "window", j.window.String())
	return nil
}

// Stop stops the stale-tracking job.
func (j *StaleTrackingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale tracking job stopped")
}

func (j *StaleTrackingJob) run() {
	ctx := context.Background()
	cutoff := time.Now().UTC().Add(-j.window)

	query, err := queries.NewGetStaleTrackingLoadsQuery(cutoff)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale tracking query construction failed", "error", err)
		return
	}

	staleLoads, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale tracking scan failed", "error", err)
		return
	}
	if len(staleLoads) == 0 {
		return
	}

	evts := make([]events.DomainEvent, 0, len(staleLoads))
	for _, staleLoad := range staleLoads {
		evts = append(evts, events.LoadTrackingStale{
			LoadID:             staleLoad.LoadID.String(),
			TenantID:           staleLoad.TenantID.String(),
			LastTrackingUpdate: staleLoad.LastTrackingUpdate,
		})
	}
	j.publisher.Publish(ctx, evts...)

	j.logger.InfoContext(ctx, "Flagged loads with stale tracking", "count", len(staleLoads))
}
