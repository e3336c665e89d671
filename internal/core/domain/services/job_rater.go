package services

import (
	"errors"
	"time"

	"cleaning/internal/core/domain/model/identity"
	"cleaning/internal/core/domain/model/job"
	"cleaning/internal/core/domain/model/kernel"
	"cleaning/internal/core/domain/model/property"
	"cleaning/internal/core/domain/model/rating"
)

var (
	// ErrJobNotCompleted is returned when rating a job that is not completed.
	ErrJobNotCompleted = errors.New("job is not completed")

	// ErrJobHasNoCleaner is returned when rating a job without an assigned cleaner.
	ErrJobHasNoCleaner = errors.New("job has no cleaner")

	// ErrCleanerMismatch is returned when the supplied cleaner did not do the job.
	ErrCleanerMismatch = errors.New("cleaner is not assigned to the job")
)

// JobRater is a domain service that creates the rating for a completed job and
// updates the cleaner's aggregate.
//
// Business rules:
//   - The job must be completed
//   - The job must have a cleaner, and it must be the supplied one
//   - Stars must be within 1..5
//   - The rating references the property's host and the job's cleaner
//
// The caller persists the returned rating and the mutated cleaner in the same
// transaction. Uniqueness of the rating per job is enforced by storage.
type JobRater struct{}

func NewJobRater() JobRater {
	return JobRater{}
}

// Rate validates the job, builds the Rating and folds stars into cleaner.
// cleaner is left unchanged on error.
func (JobRater) Rate(
	j *job.Job,
	p *property.Property,
	cleaner *identity.Cleaner,
	stars int,
	feedback string,
	at time.Time,
) (*rating.Rating, error) {
	if err := errors.Join(j.Validate(), p.Validate()); err != nil {
		return nil, err
	}

	if j.Status() != job.Completed {
		return nil, ErrJobNotCompleted
	}

	cleanerID := j.Cleaner()
	if cleanerID == nil {
		return nil, ErrJobHasNoCleaner
	}

	if err := cleaner.Validate(); err != nil {
		return nil, err
	}
	if !cleaner.ID().IsEqual(*cleanerID) {
		return nil, ErrCleanerMismatch
	}

	r, err := rating.NewRating(kernel.NewUUID(), j.ID(), p.HostID(), *cleanerID, stars, feedback, at)
	if err != nil {
		return nil, err
	}

	if err := cleaner.AddRating(stars); err != nil {
		return nil, err
	}

	return r, nil
}
