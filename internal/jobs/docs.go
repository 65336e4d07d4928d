// Package jobs provides scheduled background tasks for the load marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the load board.
//
// # Available Jobs
//
// 1. StatsSnapshotJob - Runs every minute to take a marketplace census and publish it downstream
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(statsHandler, publisher, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The snapshot job uses the cron expression "0 * * * * *", firing at the top
// of every minute. Board turnover is human-paced, so a minute of staleness is
// acceptable for dashboards.
//
// # Error Handling
//
// Snapshot failures are logged and the tick is skipped; the next tick starts
// from a clean query, so no state carries over a failure.
package jobs
