package commands

import (
	"context"
	"errors"

	"cleaning/internal/core/domain/model/identity"
	"cleaning/internal/core/domain/model/job"
	"cleaning/internal/core/domain/model/kernel"
	"cleaning/internal/core/domain/model/rating"
	"cleaning/internal/core/domain/services"
	"cleaning/internal/pkg/errs"
)

// RateJobCommandHandler stores the rating and folds it into the cleaner's
// aggregate in one transaction. The cleaner row is locked while the new mean is
// computed, and a unique key on the job backs the one-rating rule.
type RateJobCommandHandler struct {
	uowFactory UoWFactory
	rater      services.JobRater
	clock      kernel.Clock
}

func NewRateJobCommandHandler(uowFactory UoWFactory, clock kernel.Clock) RateJobCommandHandler {
	return RateJobCommandHandler{
		uowFactory: uowFactory,
		rater:      services.NewJobRater(),
		clock:      clock,
	}
}

// Handle checks, in order: role (host or admin), job existence, ownership,
// completion, cleaner presence and an existing rating.
func (h RateJobCommandHandler) Handle(ctx context.Context, cmd RateJobCommand) (*rating.Rating, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	principal := cmd.Principal()
	if err := services.Authorize(principal, services.HasRole(identity.RoleHost, identity.RoleAdmin)); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	j, err := loadJob(ctx, uow, cmd.JobID())
	if err != nil {
		return nil, err
	}

	p, err := uow.PropertyRepository().Get(ctx, j.PropertyID())
	if err != nil {
		return nil, err
	}

	owner := false
	if principal.Role() == identity.RoleHost {
		host, hostErr := hostOf(ctx, uow, principal)
		if hostErr != nil {
			return nil, hostErr
		}
		owner = p.IsOwnedBy(host.ID())
	}

	if err = services.Authorize(principal, services.AnyOf(
		services.HasRole(identity.RoleAdmin),
		services.Is(owner),
	)); err != nil {
		return nil, err
	}

	if j.Status() != job.Completed {
		return nil, ErrNotCompleted
	}
	cleanerID := j.Cleaner()
	if cleanerID == nil {
		return nil, ErrNoCleaner
	}

	exists, err := uow.RatingRepository().ExistsForJob(ctx, j.ID())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyRated
	}

	cleaner, err := uow.CleanerRepository().GetForUpdate(ctx, *cleanerID)
	if err != nil {
		return nil, err
	}

	r, err := h.rater.Rate(j, p, cleaner, cmd.Stars(), cmd.Feedback(), h.clock.Now())
	switch {
	case errors.Is(err, services.ErrJobNotCompleted):
		return nil, ErrNotCompleted
	case errors.Is(err, services.ErrJobHasNoCleaner):
		return nil, ErrNoCleaner
	case err != nil:
		return nil, err
	}

	err = uow.RatingRepository().Add(ctx, r)
	if errors.Is(err, errs.ErrObjectExists) {
		return nil, ErrAlreadyRated
	}
	if err != nil {
		return nil, err
	}

	if err = uow.CleanerRepository().Update(ctx, cleaner); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return r, nil
}
