package commands

import (
	"errors"

	"cleaning/internal/core/domain/model/identity"
	"cleaning/internal/core/domain/model/kernel"
	"cleaning/internal/pkg/guard"
)

var ErrCompleteJobCommandIsNotConstructed = errors.New(
	"CompleteJobCommand must be created via NewCompleteJobCommand constructor",
)

// CompleteJobCommand finishes a job whose checklist is fully checked.
type CompleteJobCommand struct {
	principal identity.Principal
	jobID     kernel.UUID

	guard guard.ConstructorGuard
}

func NewCompleteJobCommand(principal identity.Principal, jobID kernel.UUID) (CompleteJobCommand, error) {
	if err := errors.Join(principal.Validate(), jobID.Validate()); err != nil {
		return CompleteJobCommand{}, err
	}

	return CompleteJobCommand{
		principal: principal,
		jobID:     jobID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CompleteJobCommand) Validate() error {
	return c.guard.Validate(ErrCompleteJobCommandIsNotConstructed)
}

func (c CompleteJobCommand) Principal() identity.Principal {
	return c.principal
}

func (c CompleteJobCommand) JobID() kernel.UUID {
	return c.jobID
}
