package commands

import (
	"errors"
	"strings"

	"cleaning/internal/core/domain/model/identity"
	"cleaning/internal/core/domain/model/kernel"
	"cleaning/internal/core/domain/model/rating"
	"cleaning/internal/pkg/guard"
)

var ErrRateJobCommandIsNotConstructed = errors.New(
	"RateJobCommand must be created via NewRateJobCommand constructor",
)

// RateJobCommand leaves the single review for a completed job.
type RateJobCommand struct {
	principal identity.Principal
	jobID     kernel.UUID
	stars     int
	feedback  string

	guard guard.ConstructorGuard
}

func NewRateJobCommand(
	principal identity.Principal,
	jobID kernel.UUID,
	stars int,
	feedback string,
) (RateJobCommand, error) {
	if err := errors.Join(
		principal.Validate(),
		jobID.Validate(),
		rating.ValidateStars(stars),
	); err != nil {
		return RateJobCommand{}, err
	}

	return RateJobCommand{
		principal: principal,
		jobID:     jobID,
		stars:     stars,
		feedback:  strings.TrimSpace(feedback),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RateJobCommand) Validate() error {
	return c.guard.Validate(ErrRateJobCommandIsNotConstructed)
}

func (c RateJobCommand) Principal() identity.Principal {
	return c.principal
}

func (c RateJobCommand) JobID() kernel.UUID {
	return c.jobID
}

func (c RateJobCommand) Stars() int {
	return c.stars
}

func (c RateJobCommand) Feedback() string {
	return c.feedback
}
