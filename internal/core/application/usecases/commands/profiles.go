package commands

import (
	"context"
	"errors"

	"cleaning/internal/core/domain/model/identity"
	"cleaning/internal/core/domain/model/job"
	"cleaning/internal/core/domain/model/kernel"
	"cleaning/internal/core/domain/services"
	"cleaning/internal/pkg/errs"
)

// hostOf returns the caller's host profile. A host user without a profile is forbidden.
func hostOf(ctx context.Context, uow IdentityRepoFactory, p identity.Principal) (*identity.Host, error) {
	host, err := uow.HostRepository().GetByUserID(ctx, p.UserID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrForbidden
	}
	return host, err
}

// cleanerOf returns the caller's cleaner profile. A cleaner user without a profile is forbidden.
func cleanerOf(ctx context.Context, uow IdentityRepoFactory, p identity.Principal) (*identity.Cleaner, error) {
	cleaner, err := uow.CleanerRepository().GetByUserID(ctx, p.UserID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrForbidden
	}
	return cleaner, err
}

// loadJob maps a missing job to ErrJobNotFound.
func loadJob(ctx context.Context, uow JobRepoFactory, id kernel.UUID) (*job.Job, error) {
	j, err := uow.JobRepository().Get(ctx, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrJobNotFound
	}
	return j, err
}

// lockJob is loadJob with the job row locked for the rest of the transaction.
func lockJob(ctx context.Context, uow JobRepoFactory, id kernel.UUID) (*job.Job, error) {
	j, err := uow.JobRepository().GetForUpdate(ctx, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrJobNotFound
	}
	return j, err
}

// authorizeJobWorker allows admins and the cleaner the job is assigned to.
func authorizeJobWorker(ctx context.Context, uow IdentityRepoFactory, p identity.Principal, j *job.Job) error {
	assigned := false
	if p.Role() == identity.RoleCleaner && j.Cleaner() != nil {
		cleaner, err := uow.CleanerRepository().GetByUserID(ctx, p.UserID())
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
		case err != nil:
			return err
		default:
			assigned = j.IsAssignedTo(cleaner.ID())
		}
	}

	return services.Authorize(p, services.AnyOf(
		services.HasRole(identity.RoleAdmin),
		services.Is(assigned),
	))
}

// updateJob writes j back if its stored status is still from. A lost race is
// reported as conflict.
func updateJob(ctx context.Context, uow JobRepoFactory, j *job.Job, from job.Status, conflict error) error {
	err := uow.JobRepository().Update(ctx, j, from)
	if errors.Is(err, errs.ErrVersionIsInvalid) {
		return conflict
	}
	return err
}
