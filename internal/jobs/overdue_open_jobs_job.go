package jobs

import (
	"context"
	"errors"
	"log/slog"

	"cleaning/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultOverdueSweepSpec runs at second zero of every minute.
const DefaultOverdueSweepSpec = "0 * * * * *"

// OverdueJobsHandler runs one overdue sweep.
type OverdueJobsHandler interface {
	Handle(ctx context.Context, cmd commands.NotifyOverdueJobsCommand) (int, error)
}

// OverdueOpenJobsJob periodically reports open jobs nobody claimed in time.
type OverdueOpenJobsJob struct {
	handler OverdueJobsHandler
	spec    string
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueOpenJobsJob takes a six-field cron spec (with seconds). An empty
// spec means DefaultOverdueSweepSpec.
func NewOverdueOpenJobsJob(handler OverdueJobsHandler, spec string, logger *slog.Logger) *OverdueOpenJobsJob {
	if spec == "" {
		spec = DefaultOverdueSweepSpec
	}

	return &OverdueOpenJobsJob{
		handler: handler,
		spec:    spec,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "overdue_open_jobs_job"),
	}
}

// Start registers the sweep and starts the cron runner.
func (j *OverdueOpenJobsJob) Start() error {
	if _, err := j.cron.AddFunc(j.spec, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue open jobs sweep started", "spec", j.spec)
	return nil
}

// Run performs a single sweep.
func (j *OverdueOpenJobsJob) Run() {
	ctx := context.Background()

	n, err := j.handler.Handle(ctx, commands.NewNotifyOverdueJobsCommand())
	if err != nil {
		if !errors.Is(err, commands.ErrNoOverdueJobs) {
			j.logger.ErrorContext(ctx, "Overdue open jobs sweep failed", "error", err, "notified", n)
		}
		return
	}

	j.logger.DebugContext(ctx, "Overdue open jobs sweep finished", "notified", n)
}

// Stop stops scheduling and waits for a running sweep to return.
func (j *OverdueOpenJobsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Overdue open jobs sweep stopped")
}
