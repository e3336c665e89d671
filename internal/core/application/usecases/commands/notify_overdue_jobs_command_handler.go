package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"cleaning/internal/core/domain/model/kernel"
	"cleaning/internal/core/ports"
)

// ErrNoOverdueJobs means the sweep found nothing to report.
var ErrNoOverdueJobs = errors.New("no overdue open jobs")

// NotifyOverdueJobsCommandHandler reports open jobs whose booking has already
// ended. Nothing is written; a job stays overdue until someone claims it.
type NotifyOverdueJobsCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
	clock      kernel.Clock
	logger     *slog.Logger
}

func NewNotifyOverdueJobsCommandHandler(
	uowFactory UoWFactory,
	notifier ports.Notifier,
	clock kernel.Clock,
	logger *slog.Logger,
) NotifyOverdueJobsCommandHandler {
	return NotifyOverdueJobsCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		clock:      clock,
		logger:     logger.With("component", "NotifyOverdueJobsCommandHandler"),
	}
}

// Handle returns the number of jobs notified. A failed notification does not
// stop the sweep; failures are joined into the returned error.
func (h NotifyOverdueJobsCommandHandler) Handle(ctx context.Context, cmd NotifyOverdueJobsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()

	overdue, err := uow.JobRepository().GetAllOpenEndedBefore(ctx, h.clock.Now())
	if err != nil {
		return 0, err
	}
	if len(overdue) == 0 {
		return 0, ErrNoOverdueJobs
	}

	var (
		notified int
		failures []error
	)
	for _, j := range overdue {
		if notifyErr := h.notifier.NotifyJob(ctx, ports.JobOverdue, j.ID()); notifyErr != nil {
			failures = append(failures, fmt.Errorf("job %s: %w", j.ID(), notifyErr))
			continue
		}
		notified++
	}

	h.logger.InfoContext(ctx, "overdue open jobs notified", "found", len(overdue), "notified", notified)
	return notified, errors.Join(failures...)
}
