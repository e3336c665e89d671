package commands

import (
	"context"
	"errors"

	"cleaning/internal/core/domain/model/identity"
	"cleaning/internal/core/domain/model/job"
	"cleaning/internal/core/domain/services"
)

// ClaimJobCommandHandler assigns an open job to the calling cleaner.
//
// Concurrent claims on the same job are settled by a conditional update on
// status = open: exactly one caller wins, the others get ErrNotClaimable.
type ClaimJobCommandHandler struct {
	uowFactory UoWFactory
}

func NewClaimJobCommandHandler(uowFactory UoWFactory) ClaimJobCommandHandler {
	return ClaimJobCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h ClaimJobCommandHandler) Handle(ctx context.Context, cmd ClaimJobCommand) (*job.Job, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := services.Authorize(cmd.Principal(), services.HasRole(identity.RoleCleaner)); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cleaner, err := cleanerOf(ctx, uow, cmd.Principal())
	if err != nil {
		return nil, err
	}

	j, err := lockJob(ctx, uow, cmd.JobID())
	if errors.Is(err, ErrJobNotFound) {
		return nil, ErrNotClaimable
	}
	if err != nil {
		return nil, err
	}

	if err = j.Claim(cleaner.ID()); err != nil {
		return nil, errors.Join(ErrNotClaimable, err)
	}

	if err = updateJob(ctx, uow, j, job.Open, ErrNotClaimable); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return j, nil
}
