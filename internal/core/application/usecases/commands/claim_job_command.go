package commands

import (
	"errors"

	"cleaning/internal/core/domain/model/identity"
	"cleaning/internal/core/domain/model/kernel"
	"cleaning/internal/pkg/guard"
)

var ErrClaimJobCommandIsNotConstructed = errors.New(
	"ClaimJobCommand must be created via NewClaimJobCommand constructor",
)

// ClaimJobCommand takes an open job for the calling cleaner.
type ClaimJobCommand struct {
	principal identity.Principal
	jobID     kernel.UUID

	guard guard.ConstructorGuard
}

func NewClaimJobCommand(principal identity.Principal, jobID kernel.UUID) (ClaimJobCommand, error) {
	if err := errors.Join(principal.Validate(), jobID.Validate()); err != nil {
		return ClaimJobCommand{}, err
	}

	return ClaimJobCommand{
		principal: principal,
		jobID:     jobID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ClaimJobCommand) Validate() error {
	return c.guard.Validate(ErrClaimJobCommandIsNotConstructed)
}

func (c ClaimJobCommand) Principal() identity.Principal {
	return c.principal
}

func (c ClaimJobCommand) JobID() kernel.UUID {
	return c.jobID
}
