package commands

import (
	"context"
	"log/slog"

	"cleaning/internal/core/domain/model/job"
	"cleaning/internal/core/ports"
)

// SendJobReminderCommandHandler notifies about a job whose booking is about to end.
// Completed jobs are skipped.
type SendJobReminderCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

func NewSendJobReminderCommandHandler(
	uowFactory UoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) SendJobReminderCommandHandler {
	return SendJobReminderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "SendJobReminderCommandHandler"),
	}
}

func (h SendJobReminderCommandHandler) Handle(ctx context.Context, cmd SendJobReminderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()

	j, err := loadJob(ctx, uow, cmd.JobID())
	if err != nil {
		return err
	}

	if j.Status() == job.Completed {
		h.logger.DebugContext(ctx, "skipping reminder for completed job", "job_id", j.ID().String())
		return nil
	}

	return h.notifier.NotifyJob(ctx, ports.JobReminder, j.ID())
}
