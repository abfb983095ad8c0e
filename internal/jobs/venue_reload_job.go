package jobs

import (
	"context"
	"log/slog"

	"planner/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultVenueReloadSchedule reloads the catalogue once a minute.
const DefaultVenueReloadSchedule = "@every 1m"

type venueImporter interface {
	Handle(ctx context.Context, command commands.ImportVenuesCommand) (int, error)
}

// VenueReloadJob re-imports the venue file on a cron schedule.
// A failed import keeps the previous catalogue and the board untouched.
type VenueReloadJob struct {
	handler  venueImporter
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewVenueReloadJob creates a job running handler on schedule, a cron expression with
// a seconds field or a descriptor such as "@every 5m". An empty schedule falls back to
// DefaultVenueReloadSchedule.
func NewVenueReloadJob(handler venueImporter, schedule string, logger *slog.Logger) *VenueReloadJob {
	if schedule == "" {
		schedule = DefaultVenueReloadSchedule
	}

	return &VenueReloadJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "venue_reload_job"),
	}
}

// Start schedules the reload and starts the cron runner.
func (j *VenueReloadJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Venue reload job started", "schedule", j.schedule)
	return nil
}

// Run performs one reload.
func (j *VenueReloadJob) Run() {
	ctx := context.Background()

	imported, err := j.handler.Handle(ctx, commands.NewImportVenuesCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Venue reload job failed", "error", err)
		return
	}

	j.logger.DebugContext(ctx, "Venue catalogue reloaded", "venues", imported)
}

// Stop stops the venue reload job and waits for a running reload to finish.
func (j *VenueReloadJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Venue reload job stopped")
}
