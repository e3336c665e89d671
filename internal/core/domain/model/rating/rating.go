// Package rating models the single review a host leaves for a completed job.
package rating

import (
	"errors"
	"strings"
	"time"

	"cleaning/internal/core/domain/model/identity"
	"cleaning/internal/core/domain/model/kernel"
	"cleaning/internal/pkg/errs"
	"cleaning/internal/pkg/guard"
)

var ErrRatingIsNotConstructed = errors.New("Rating must be created via NewRating or RestoreRating constructor")

// Rating references the job's host and cleaner as they were when it was given.
// There is at most one rating per job.
type Rating struct {
	id        kernel.UUID
	jobID     kernel.UUID
	hostID    kernel.UUID
	cleanerID kernel.UUID
	stars     int
	feedback  string
	createdAt time.Time
	guard     guard.ConstructorGuard
}

func NewRating(
	id, jobID, hostID, cleanerID kernel.UUID,
	stars int,
	feedback string,
	createdAt time.Time,
) (*Rating, error) {
	return RestoreRating(id, jobID, hostID, cleanerID, stars, feedback, createdAt)
}

func RestoreRating(
	id, jobID, hostID, cleanerID kernel.UUID,
	stars int,
	feedback string,
	createdAt time.Time,
) (*Rating, error) {
	r := &Rating{
		id:        id,
		jobID:     jobID,
		hostID:    hostID,
		cleanerID: cleanerID,
		stars:     stars,
		feedback:  strings.TrimSpace(feedback),
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		id.Validate(),
		jobID.Validate(),
		hostID.Validate(),
		cleanerID.Validate(),
		ValidateStars(stars),
		validateCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// ValidateStars accepts 1..5.
func ValidateStars(stars int) error {
	if stars < identity.MinStars || stars > identity.MaxStars {
		return errs.NewValueIsOutOfRangeError("stars", stars, identity.MinStars, identity.MaxStars)
	}
	return nil
}

func validateCreatedAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	return nil
}

func (r *Rating) Validate() error {
	if r == nil {
		return ErrRatingIsNotConstructed
	}
	return r.guard.Validate(ErrRatingIsNotConstructed)
}

func (r *Rating) ID() kernel.UUID {
	return r.id
}

func (r *Rating) JobID() kernel.UUID {
	return r.jobID
}

func (r *Rating) HostID() kernel.UUID {
	return r.hostID
}

func (r *Rating) CleanerID() kernel.UUID {
	return r.cleanerID
}

func (r *Rating) Stars() int {
	return r.stars
}

func (r *Rating) Feedback() string {
	return r.feedback
}

func (r *Rating) CreatedAt() time.Time {
	return r.createdAt
}
