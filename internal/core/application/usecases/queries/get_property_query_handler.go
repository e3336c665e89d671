package queries

import (
	"context"

	"cleaning/internal/core/domain/model/identity"
	"cleaning/internal/core/domain/services"

	"gorm.io/gorm"
)

type GetPropertyQueryHandler struct {
	db *gorm.DB
}

func NewGetPropertyQueryHandler(db *gorm.DB) GetPropertyQueryHandler {
	return GetPropertyQueryHandler{db: db}
}

// Handle returns ErrPropertyNotFound before checking ownership, so existence
// is visible to any caller.
func (h GetPropertyQueryHandler) Handle(ctx context.Context, query GetPropertyQuery) (PropertyResponse, error) {
	if err := query.Validate(); err != nil {
		return PropertyResponse{}, err
	}

	props, err := scanProperties(ctx, h.db, `
		SELECT id, host_id, name, address
		FROM properties
		WHERE id = ?
	`, query.PropertyID().Bytes())
	if err != nil {
		return PropertyResponse{}, err
	}
	if len(props) == 0 {
		return PropertyResponse{}, ErrPropertyNotFound
	}
	prop := props[0]

	owner := false
	if query.Principal().Role() == identity.RoleHost {
		hostID, hostErr := hostIDOf(ctx, h.db, query.Principal())
		if hostErr != nil {
			return PropertyResponse{}, hostErr
		}
		owner = hostID != nil && hostID.IsEqual(prop.HostID)
	}

	if err = services.Authorize(query.Principal(), services.AnyOf(
		services.HasRole(identity.RoleAdmin),
		services.Is(owner),
	)); err != nil {
		return PropertyResponse{}, err
	}

	return prop, nil
}
