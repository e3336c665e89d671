package ports

import (
	"context"
	"time"

	"cleaning/internal/core/domain/model/job"
	"cleaning/internal/core/domain/model/kernel"
	"cleaning/internal/core/domain/model/property"
	"cleaning/internal/core/domain/model/rating"
)

// PropertyRepository stores properties.
type PropertyRepository interface {
	Add(ctx context.Context, aggregate *property.Property) error
	Get(ctx context.Context, id kernel.UUID) (*property.Property, error)
}

// JobRepository stores jobs together with their checklist.
type JobRepository interface {
	// Add persists a new job and its checklist items.
	Add(ctx context.Context, aggregate *job.Job) error

	// Update writes the job back only if its stored status still equals from.
	// A lost race is reported as errs.ErrVersionIsInvalid and nothing is written.
	//
	// Example:
	//   prev := j.Status()
	//   if err := j.Claim(cleanerID); err != nil { ... }
	//   err := repo.Update(ctx, j, prev)
	Update(ctx context.Context, aggregate *job.Job, from job.Status) error

	// Get returns errs.ErrObjectNotFound when the job does not exist.
	Get(ctx context.Context, id kernel.UUID) (*job.Job, error)

	// GetForUpdate is Get plus a row lock on the job held until the surrounding
	// transaction ends. Handlers that write the job back load it this way, so
	// two writers on one job run one after the other and the second sees the
	// first one's checklist.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*job.Job, error)

	// GetAllOpenEndedBefore returns open jobs whose booking ended before t.
	GetAllOpenEndedBefore(ctx context.Context, t time.Time) ([]*job.Job, error)
}

// RatingRepository stores ratings. At most one rating exists per job.
type RatingRepository interface {
	// Add returns errs.ErrObjectExists when the job already has a rating.
	Add(ctx context.Context, aggregate *rating.Rating) error
	ExistsForJob(ctx context.Context, jobID kernel.UUID) (bool, error)
}
