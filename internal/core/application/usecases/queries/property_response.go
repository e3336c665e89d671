package queries

import (
	"context"
	"database/sql"
	"errors"

	"cleaning/internal/core/domain/model/identity"
	"cleaning/internal/core/domain/model/kernel"
	"cleaning/internal/core/domain/model/property"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PropertyResponse is the read model of a property.
type PropertyResponse struct {
	ID      kernel.UUID
	HostID  kernel.UUID
	Name    string
	Address string
}

func PropertyResponseFromDomain(p *property.Property) PropertyResponse {
	return PropertyResponse{
		ID:      p.ID(),
		HostID:  p.HostID(),
		Name:    p.Name(),
		Address: p.Address(),
	}
}

func scanProperties(ctx context.Context, db *gorm.DB, query string, args ...any) ([]PropertyResponse, error) {
	rows, err := db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	props := make([]PropertyResponse, 0)
	for rows.Next() {
		var (
			resp       PropertyResponse
			id, hostID uuid.UUID
		)

		if err = rows.Scan(&id, &hostID, &resp.Name, &resp.Address); err != nil {
			return nil, err
		}
		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.HostID, err = kernel.UUIDFromBytes(hostID[:]); err != nil {
			return nil, err
		}

		props = append(props, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return props, nil
}

// hostIDOf returns the host profile id of the principal, or nil when it has none.
func hostIDOf(ctx context.Context, db *gorm.DB, p identity.Principal) (*kernel.UUID, error) {
	var id uuid.UUID
	err := db.WithContext(ctx).Raw(`SELECT id FROM hosts WHERE user_id = ?`, p.UserID().Bytes()).Row().Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	hostID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	return &hostID, nil
}
