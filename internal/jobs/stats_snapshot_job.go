package jobs

import (
	"context"
	"log/slog"
	"time"

	"loadboard/internal/core/application/usecases/queries"
	"loadboard/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// StatsSnapshotJob periodically takes a census of the board and publishes it
// for dashboards and alerting pipelines.
type StatsSnapshotJob struct {
	handler   queries.GetMarketplaceStatsQueryHandler
	publisher ports.SnapshotPublisher
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewStatsSnapshotJob creates a new job for publishing marketplace snapshots.
// Uses GetMarketplaceStatsQueryHandler to collect the totals every minute.
func NewStatsSnapshotJob(
	handler queries.GetMarketplaceStatsQueryHandler,
	publisher ports.SnapshotPublisher,
	logger *slog.Logger,
) *StatsSnapshotJob {
	return &StatsSnapshotJob{
		handler:   handler,
		publisher: publisher,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "stats_snapshot_job"),
	}
}

// Start begins the snapshot job, firing at the top of every minute.
func (j *StatsSnapshotJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", j.runOnce)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stats snapshot job started (running every minute)")
	return nil
}

// Stop stops the snapshot job.
func (j *StatsSnapshotJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stats snapshot job stopped")
}

// runOnce collects the marketplace totals and publishes them. A failed tick
// is logged and skipped; the next tick queries from scratch.
func (j *StatsSnapshotJob) runOnce() {
	ctx := context.Background()

	stats, err := j.handler.Handle(ctx, queries.NewGetMarketplaceStatsQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Stats snapshot query failed", "error", err)
		return
	}

	snapshot := ports.MarketplaceSnapshot{
		OpenLoads:       stats.OpenLoads,
		AssignedLoads:   stats.AssignedLoads,
		InProgressLoads: stats.InProgressLoads,
		CompletedLoads:  stats.CompletedLoads,
		TotalShippers:   stats.TotalShippers,
		TotalDrivers:    stats.TotalDrivers,
		CompletedValue:  stats.CompletedValue,
		TakenAt:         time.Now().UTC(),
	}

	if err := j.publisher.PublishMarketplaceSnapshot(ctx, snapshot); err != nil {
		j.logger.ErrorContext(ctx, "Stats snapshot publish failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Stats snapshot published",
		"open_loads", stats.OpenLoads,
		"assigned_loads", stats.AssignedLoads,
		"in_progress_loads", stats.InProgressLoads,
		"completed_loads", stats.CompletedLoads)
}
