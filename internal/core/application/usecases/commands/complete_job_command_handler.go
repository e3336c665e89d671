package commands

import (
	"context"
	"errors"

	"cleaning/internal/core/domain/model/job"
	"cleaning/internal/core/domain/model/kernel"
)

// CompleteJobCommandHandler is the only way a job reaches completed.
//
// Business rules:
//   - Only the assigned cleaner or an admin may complete
//   - The job must be claimed or in progress, so a second completion fails
//     with ErrNotCompletable
//   - Every checklist item must be checked, otherwise ErrChecklistIncomplete
type CompleteJobCommandHandler struct {
	uowFactory UoWFactory
	clock      kernel.Clock
}

func NewCompleteJobCommandHandler(uowFactory UoWFactory, clock kernel.Clock) CompleteJobCommandHandler {
	return CompleteJobCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h CompleteJobCommandHandler) Handle(ctx context.Context, cmd CompleteJobCommand) (*job.Job, error) {
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

	from := j.Status()
	err = j.Complete(h.clock.Now())
	if errors.Is(err, job.ErrChecklistIncomplete) {
		return nil, ErrChecklistIncomplete
	}
	if err != nil {
		return nil, errors.Join(ErrNotCompletable, err)
	}

	if err = updateJob(ctx, uow, j, from, ErrNotCompletable); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return j, nil
}
