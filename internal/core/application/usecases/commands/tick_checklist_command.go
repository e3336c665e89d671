package commands

import (
	"errors"

	"cleaning/internal/core/domain/model/identity"
	"cleaning/internal/core/domain/model/kernel"
	"cleaning/internal/pkg/guard"
)

var ErrTickChecklistCommandIsNotConstructed = errors.New(
	"TickChecklistCommand must be created via NewTickChecklistCommand constructor",
)

// TickChecklistCommand marks checklist items of one job as done.
// Item ids that do not belong to the job are ignored by the handler.
type TickChecklistCommand struct {
	principal identity.Principal
	jobID     kernel.UUID
	itemIDs   []kernel.UUID

	guard guard.ConstructorGuard
}

func NewTickChecklistCommand(
	principal identity.Principal,
	jobID kernel.UUID,
	itemIDs []kernel.UUID,
) (TickChecklistCommand, error) {
	validationErrs := []error{principal.Validate(), jobID.Validate()}
	for _, id := range itemIDs {
		validationErrs = append(validationErrs, id.Validate())
	}
	if err := errors.Join(validationErrs...); err != nil {
		return TickChecklistCommand{}, err
	}

	ids := make([]kernel.UUID, len(itemIDs))
	copy(ids, itemIDs)

	return TickChecklistCommand{
		principal: principal,
		jobID:     jobID,
		itemIDs:   ids,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c TickChecklistCommand) Validate() error {
	return c.guard.Validate(ErrTickChecklistCommandIsNotConstructed)
}

func (c TickChecklistCommand) Principal() identity.Principal {
	return c.principal
}

func (c TickChecklistCommand) JobID() kernel.UUID {
	return c.jobID
}

func (c TickChecklistCommand) ItemIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.itemIDs))
	copy(ids, c.itemIDs)
	return ids
}
