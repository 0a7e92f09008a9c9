package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// defaultSyncSchedule runs the reconciliation every fifteen minutes. The
// carrier updates parcel states a few times per hour at most, so polling
// faster only burns API quota.
const defaultSyncSchedule = "0 */15 * * * *"

// StatusSyncJob periodically reconciles in-flight orders with the carrier.
// It is just another caller of SyncStatusesCommandHandler; the sync semantics
// live entirely in the command.
type StatusSyncJob struct {
	handler  commands.SyncStatusesCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStatusSyncJob creates the reconciliation job. An empty schedule falls
// back to the default fifteen-minute cadence.
func NewStatusSyncJob(handler commands.SyncStatusesCommandHandler, schedule string, logger *slog.Logger) *StatusSyncJob {
	if schedule == "" {
		schedule = defaultSyncSchedule
	}
	return &StatusSyncJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "status_sync_job"),
	}
}

// Start begins the scheduled reconciliation runs.
func (j *StatusSyncJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewSyncStatusesCommand(nil)
		if err != nil {
			j.logger.ErrorContext(ctx, "Status sync job could not build command", "error", err)
			return
		}

		result, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Status sync job failed", "error", err)
			return
		}

		if len(result.Failed) > 0 {
			j.logger.WarnContext(ctx, "Status sync run finished with failures",
				"synced", len(result.Synced), "failed", len(result.Failed))
			return
		}
		j.logger.InfoContext(ctx, "Status sync run finished", "synced", len(result.Synced))
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Status sync job started", "schedule", j.schedule)
	return nil
}

// Stop stops the reconciliation job.
func (j *StatusSyncJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Status sync job stopped")
}
