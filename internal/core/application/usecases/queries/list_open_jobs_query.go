package queries

import (
	"errors"

	"cleaning/internal/core/domain/model/identity"
	"cleaning/internal/pkg/guard"
)

var ErrListOpenJobsQueryIsNotConstructed = errors.New(
	"ListOpenJobsQuery must be created via NewListOpenJobsQuery constructor",
)

// ListOpenJobsQuery lists jobs waiting for a cleaner, soonest booking first.
// Any authenticated caller may run it.
type ListOpenJobsQuery struct {
	principal identity.Principal

	guard guard.ConstructorGuard
}

func NewListOpenJobsQuery(principal identity.Principal) (ListOpenJobsQuery, error) {
	if err := principal.Validate(); err != nil {
		return ListOpenJobsQuery{}, err
	}
	return ListOpenJobsQuery{principal: principal, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOpenJobsQuery) Validate() error {
	return q.guard.Validate(ErrListOpenJobsQueryIsNotConstructed)
}
