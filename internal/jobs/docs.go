// Package jobs provides scheduled background tasks for the delivery platform.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the delivery service.
//
// # Available Jobs
//
// 1. ScheduledDispatchJob - Runs every minute to promote pending deliveries
// whose scheduled dispatch time has arrived into the driver search pool
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(dispatchScheduledHandler, logger)
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
// The dispatch job uses the cron expression "0 * * * * *", running at the
// top of every minute. Scheduled deliveries carry minute-level precision,
// so a tighter cadence buys nothing.
//
// # Error Handling
//
// - Per-delivery dispatch failures are handled inside the command; the job
// only logs when the sweep itself fails
// - Failed job starts will stop any already running jobs
package jobs
