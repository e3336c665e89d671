package queries

import (
	"errors"

	"cleaning/internal/core/domain/model/identity"
	"cleaning/internal/core/domain/model/kernel"
	"cleaning/internal/pkg/guard"
)

var ErrGetPropertyQueryIsNotConstructed = errors.New(
	"GetPropertyQuery must be created via NewGetPropertyQuery constructor",
)

// GetPropertyQuery is allowed for the owning host and admins.
type GetPropertyQuery struct {
	principal  identity.Principal
	propertyID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetPropertyQuery(principal identity.Principal, propertyID kernel.UUID) (GetPropertyQuery, error) {
	if err := errors.Join(principal.Validate(), propertyID.Validate()); err != nil {
		return GetPropertyQuery{}, err
	}
	return GetPropertyQuery{principal: principal, propertyID: propertyID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPropertyQuery) Validate() error {
	return q.guard.Validate(ErrGetPropertyQueryIsNotConstructed)
}

func (q GetPropertyQuery) Principal() identity.Principal {
	return q.principal
}

func (q GetPropertyQuery) PropertyID() kernel.UUID {
	return q.propertyID
}
