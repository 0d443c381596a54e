package jobs

import (
	"fmt"
	"log/slog"

	"laundry/internal/adapters/out/rediscache"
	"laundry/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	readyOrderExpiryJob   *ReadyOrderExpiryJob
	toggleCacheRefreshJob *ToggleCacheRefreshJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the expiry handler and the settings cache as dependencies to wire up
// the job execution.
func NewJobManager(
	expireReadyOrdersHandler commands.ExpireReadyOrdersCommandHandler,
	settingsCache *rediscache.SettingsCache,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		readyOrderExpiryJob:   NewReadyOrderExpiryJob(expireReadyOrdersHandler, logger),
		toggleCacheRefreshJob: NewToggleCacheRefreshJob(settingsCache, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.toggleCacheRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start toggle cache refresh job: %w", err)
	}

	if err := jm.readyOrderExpiryJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.toggleCacheRefreshJob.Stop()
		return fmt.Errorf("failed to start ready order expiry job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.readyOrderExpiryJob.Stop()
	jm.toggleCacheRefreshJob.Stop()
}
