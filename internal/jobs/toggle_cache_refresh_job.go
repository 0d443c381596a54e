package jobs

import (
	"context"
	"log/slog"

	"laundry/internal/adapters/out/rediscache"

	"github.com/robfig/cron/v3"
)

// ToggleCacheRefreshJob keeps the Redis settings cache warm so the workflow
// context query rarely pays a database round trip. Runs every minute; a
// failed refresh only delays freshness until the next cycle because reads
// fall back to the repository on a miss.
type ToggleCacheRefreshJob struct {
	cache  *rediscache.SettingsCache
	cron   *cron.Cron
	logger *slog.Logger
}

// NewToggleCacheRefreshJob creates a new job for refreshing cached tenant settings.
func NewToggleCacheRefreshJob(cache *rediscache.SettingsCache, logger *slog.Logger) *ToggleCacheRefreshJob {
	return &ToggleCacheRefreshJob{
		cache:  cache,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "toggle_cache_refresh_job"),
	}
}

// Start begins the cache refresh to run every minute.
func (j *ToggleCacheRefreshJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		if err := j.cache.RefreshAll(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Toggle cache refresh job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Toggle cache refresh job started (running every minute)")
	return nil
}

// Stop stops the cache refresh.
func (j *ToggleCacheRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Toggle cache refresh job stopped")
}
