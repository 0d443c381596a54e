// Package jobs provides scheduled background tasks for the order lifecycle engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the laundry service.
//
// # Available Jobs
//
// 1. ReadyOrderExpiryJob - Runs hourly to cancel orders left in "ready" past the retention window
// 2. ToggleCacheRefreshJob - Runs every minute to keep the Redis settings cache warm
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(expireReadyOrdersHandler, settingsCache, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Expiry sweep errors are logged; each candidate order is processed independently
// - Cache refresh failures only delay freshness, reads fall back to the database
// - Failed job starts will stop any already running jobs
package jobs
