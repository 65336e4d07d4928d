package jobs

import (
	"fmt"
	"log/slog"

	"loadboard/internal/core/application/usecases/queries"
	"loadboard/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	statsSnapshotJob *StatsSnapshotJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the stats query handler and the snapshot publisher as dependencies.
func NewJobManager(
	statsHandler queries.GetMarketplaceStatsQueryHandler,
	publisher ports.SnapshotPublisher,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		statsSnapshotJob: NewStatsSnapshotJob(statsHandler, publisher, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.statsSnapshotJob.Start(); err != nil {
		return fmt.Errorf("failed to start stats snapshot job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.statsSnapshotJob.Stop()
}
