package queries

import (
	"errors"

	"cleaning/internal/core/domain/model/identity"
	"cleaning/internal/pkg/guard"
)

const (
	DefaultPageLimit = 50
	MaxPageLimit     = 100
)

var ErrListMyPropertiesQueryIsNotConstructed = errors.New(
	"ListMyPropertiesQuery must be created via NewListMyPropertiesQuery constructor",
)

// ListMyPropertiesQuery pages through the caller's properties. Admins see all
// properties. Out-of-range paging values are clamped, not rejected.
type ListMyPropertiesQuery struct {
	principal identity.Principal
	limit     int
	offset    int

	guard guard.ConstructorGuard
}

// NewListMyPropertiesQuery clamps limit to 1..100 and offset to >= 0.
// A zero limit means DefaultPageLimit.
func NewListMyPropertiesQuery(principal identity.Principal, limit int, offset int) (ListMyPropertiesQuery, error) {
	if err := principal.Validate(); err != nil {
		return ListMyPropertiesQuery{}, err
	}

	if limit == 0 {
		limit = DefaultPageLimit
	}

	return ListMyPropertiesQuery{
		principal: principal,
		limit:     max(1, min(limit, MaxPageLimit)),
		offset:    max(0, offset),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q ListMyPropertiesQuery) Validate() error {
	return q.guard.Validate(ErrListMyPropertiesQueryIsNotConstructed)
}

func (q ListMyPropertiesQuery) Principal() identity.Principal {
	return q.principal
}

func (q ListMyPropertiesQuery) Limit() int {
	return q.limit
}

func (q ListMyPropertiesQuery) Offset() int {
	return q.offset
}
