package commands

import (
	"errors"

	"cleaning/internal/core/domain/model/identity"
	"cleaning/internal/core/domain/model/kernel"
	"cleaning/internal/pkg/guard"
)

var ErrStartJobCommandIsNotConstructed = errors.New(
	"StartJobCommand must be created via NewStartJobCommand constructor",
)

// StartJobCommand moves a claimed job to in progress.
type StartJobCommand struct {
	principal identity.Principal
	jobID     kernel.UUID

	guard guard.ConstructorGuard
}

func NewStartJobCommand(principal identity.Principal, jobID kernel.UUID) (StartJobCommand, error) {
	if err := errors.Join(principal.Validate(), jobID.Validate()); err != nil {
		return StartJobCommand{}, err
	}

	return StartJobCommand{
		principal: principal,
		jobID:     jobID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c StartJobCommand) Validate() error {
	return c.guard.Validate(ErrStartJobCommandIsNotConstructed)
}

func (c StartJobCommand) Principal() identity.Principal {
	return c.principal
}

func (c StartJobCommand) JobID() kernel.UUID {
	return c.jobID
}
