package commands

import (
	"context"
	"errors"
	"time"

	"cleaning/internal/core/domain/model/identity"
	"cleaning/internal/core/domain/model/job"
	"cleaning/internal/core/domain/model/kernel"
	"cleaning/internal/core/domain/services"
	"cleaning/internal/core/ports"
	"cleaning/internal/pkg/errs"
)

// JobReminderHandler runs the reminder for a job once its delay has elapsed.
type JobReminderHandler interface {
	Handle(ctx context.Context, cmd SendJobReminderCommand) error
}

// CreateJobCommandHandler persists a new open job and, after commit, schedules
// its reminder for reminderLead before the booking ends.
type CreateJobCommandHandler struct {
	uowFactory   UoWFactory
	scheduler    ports.ReminderScheduler
	reminder     JobReminderHandler
	clock        kernel.Clock
	reminderLead time.Duration
}

func NewCreateJobCommandHandler(
	uowFactory UoWFactory,
	scheduler ports.ReminderScheduler,
	reminder JobReminderHandler,
	clock kernel.Clock,
	reminderLead time.Duration,
) CreateJobCommandHandler {
	return CreateJobCommandHandler{
		uowFactory:   uowFactory,
		scheduler:    scheduler,
		reminder:     reminder,
		clock:        clock,
		reminderLead: reminderLead,
	}
}

// Handle returns ErrForbidden for non-hosts and ErrInvalidProperty when the
// property is missing or belongs to another host.
func (h CreateJobCommandHandler) Handle(ctx context.Context, cmd CreateJobCommand) (*job.Job, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := services.Authorize(cmd.Principal(), services.HasRole(identity.RoleHost)); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	host, err := uow.HostRepository().GetByUserID(ctx, cmd.Principal().UserID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrInvalidProperty
	}
	if err != nil {
		return nil, err
	}

	p, err := uow.PropertyRepository().Get(ctx, cmd.PropertyID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrInvalidProperty
	}
	if err != nil {
		return nil, err
	}
	if !p.IsOwnedBy(host.ID()) {
		return nil, ErrInvalidProperty
	}

	now := h.clock.Now()
	j, err := job.NewJob(cmd.JobID(), p.ID(), cmd.Window(), cmd.Checklist(), now)
	if err != nil {
		return nil, err
	}

	if err = uow.JobRepository().Add(ctx, j); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.scheduleReminder(j.ID(), j.Window().ReminderDelay(now, h.reminderLead))

	return j, nil
}

func (h CreateJobCommandHandler) scheduleReminder(jobID kernel.UUID, delay time.Duration) {
	h.scheduler.Schedule(delay, func(ctx context.Context) error {
		cmd, err := NewSendJobReminderCommand(jobID)
		if err != nil {
			return err
		}
		return h.reminder.Handle(ctx, cmd)
	})
}
