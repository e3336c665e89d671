package commands

import (
	"context"
	"errors"

	"cleaning/internal/core/domain/model/job"
)

// StartJobCommandHandler moves a claimed job to in progress. Only the assigned
// cleaner or an admin may start it.
type StartJobCommandHandler struct {
	uowFactory UoWFactory
}

func NewStartJobCommandHandler(uowFactory UoWFactory) StartJobCommandHandler {
	return StartJobCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h StartJobCommandHandler) Handle(ctx context.Context, cmd StartJobCommand) (*job.Job, error) {
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

	if err = j.Start(); err != nil {
		return nil, errors.Join(ErrNotStartable, err)
	}

	if err = updateJob(ctx, uow, j, job.Claimed, ErrNotStartable); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return j, nil
}
