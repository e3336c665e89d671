package commands

import (
	"context"

	"cleaning/internal/core/domain/model/job"
	"cleaning/internal/core/domain/model/kernel"
)

// TickChecklistCommandHandler checks items and returns the job's full checklist.
type TickChecklistCommandHandler struct {
	uowFactory UoWFactory
	clock      kernel.Clock
}

func NewTickChecklistCommandHandler(uowFactory UoWFactory, clock kernel.Clock) TickChecklistCommandHandler {
	return TickChecklistCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h TickChecklistCommandHandler) Handle(ctx context.Context, cmd TickChecklistCommand) ([]*job.ChecklistItem, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	j, err := lockJob(ctx, uow, cmd.JobID())
	if err != nil {
		return nil, err
	}

	if err = authorizeJobWorker(ctx, uow, cmd.Principal(), j); err != nil {
		return nil, err
	}

	if ticked := j.TickItems(cmd.ItemIDs(), h.clock.Now()); len(ticked) == 0 {
		return j.Checklist(), nil
	}

	if err = updateJob(ctx, uow, j, j.Status(), ErrConcurrentModification); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return j.Checklist(), nil
}
