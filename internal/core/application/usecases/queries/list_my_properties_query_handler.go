package queries

import (
	"context"

	"cleaning/internal/core/domain/model/identity"
	"cleaning/internal/core/domain/services"

	"gorm.io/gorm"
)

type ListMyPropertiesQueryHandler struct {
	db *gorm.DB
}

func NewListMyPropertiesQueryHandler(db *gorm.DB) ListMyPropertiesQueryHandler {
	return ListMyPropertiesQueryHandler{db: db}
}

// Handle lists newest first. Hosts see their own properties, admins see all,
// cleaners are forbidden.
func (h ListMyPropertiesQueryHandler) Handle(
	ctx context.Context,
	query ListMyPropertiesQuery,
) ([]PropertyResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	p := query.Principal()
	if err := services.Authorize(p, services.HasRole(identity.RoleHost, identity.RoleAdmin)); err != nil {
		return nil, err
	}

	if p.Role() == identity.RoleAdmin {
		return scanProperties(ctx, h.db, `
			SELECT id, host_id, name, address
			FROM properties
			ORDER BY created_at DESC, id
			LIMIT ? OFFSET ?
		`, query.Limit(), query.Offset())
	}

	hostID, err := hostIDOf(ctx, h.db, p)
	if err != nil {
		return nil, err
	}
	if hostID == nil {
		return make([]PropertyResponse, 0), nil
	}

	return scanProperties(ctx, h.db, `
		SELECT id, host_id, name, address
		FROM properties
		WHERE host_id = ?
		ORDER BY created_at DESC, id
		LIMIT ? OFFSET ?
	`, hostID.Bytes(), query.Limit(), query.Offset())
}
