package jobs

import (
	"context"
	"log/slog"

	"laundry/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ReadyOrderExpiryJob runs the periodic sweep that cancels orders left in
// "ready" past the retention window. Runs hourly; each run processes every
// candidate independently through the transition executor.
type ReadyOrderExpiryJob struct {
	handler commands.ExpireReadyOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewReadyOrderExpiryJob creates a new job for expiring stale ready orders.
func NewReadyOrderExpiryJob(handler commands.ExpireReadyOrdersCommandHandler, logger *slog.Logger) *ReadyOrderExpiryJob {
	return &ReadyOrderExpiryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "ready_order_expiry_job"),
	}
}

// Start begins the expiry sweep to run at the top of every hour.
func (j *ReadyOrderExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewExpireReadyOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Ready order expiry job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Ready order expiry job started (running hourly)")
	return nil
}

// Stop stops the expiry sweep.
func (j *ReadyOrderExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Ready order expiry job stopped")
}
