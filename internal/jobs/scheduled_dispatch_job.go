package jobs

import (
	"context"
	"log/slog"

	"tradlogistics/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ScheduledDispatchJob promotes pending deliveries whose scheduled dispatch
// time has arrived into the driver search pool. Runs at the top of every
// minute.
type ScheduledDispatchJob struct {
	handler commands.DispatchScheduledCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewScheduledDispatchJob creates a new job for dispatching scheduled deliveries.
// Uses DispatchScheduledCommandHandler to sweep due deliveries every minute.
func NewScheduledDispatchJob(
	handler commands.DispatchScheduledCommandHandler,
	logger *slog.Logger,
) *ScheduledDispatchJob {
	return &ScheduledDispatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "scheduled_dispatch_job"),
	}
}

// Start begins the scheduled dispatch job to run every minute.
func (j *ScheduledDispatchJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewDispatchScheduledCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Scheduled dispatch job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Scheduled dispatch job started (running every minute)")
	return nil
}

// Stop stops the scheduled dispatch job.
func (j *ScheduledDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Scheduled dispatch job stopped")
}
