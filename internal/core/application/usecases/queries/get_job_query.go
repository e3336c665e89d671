package queries

import (
	"errors"

	"cleaning/internal/core/domain/model/identity"
	"cleaning/internal/core/domain/model/kernel"
	"cleaning/internal/pkg/guard"
)

var ErrGetJobQueryIsNotConstructed = errors.New(
	"GetJobQuery must be created via NewGetJobQuery constructor",
)

// GetJobQuery fetches one job with its checklist. Any authenticated caller may run it.
type GetJobQuery struct {
	principal identity.Principal
	jobID     kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetJobQuery(principal identity.Principal, jobID kernel.UUID) (GetJobQuery, error) {
	if err := errors.Join(principal.Validate(), jobID.Validate()); err != nil {
		return GetJobQuery{}, err
	}
	return GetJobQuery{principal: principal, jobID: jobID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetJobQuery) Validate() error {
	return q.guard.Validate(ErrGetJobQueryIsNotConstructed)
}

func (q GetJobQuery) JobID() kernel.UUID {
	return q.jobID
}
