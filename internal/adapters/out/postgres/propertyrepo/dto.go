// Package propertyrepo persists the property catalog.
package propertyrepo

import (
	"time"

	"cleaning/internal/core/domain/model/kernel"
	"cleaning/internal/core/domain/model/property"

	"github.com/google/uuid"
)

// PropertyDTO keeps an insertion timestamp used to list newest first.
type PropertyDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	HostID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Address   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime"`
}

func (PropertyDTO) TableName() string {
	return "properties"
}

func fromDomain(p *property.Property) PropertyDTO {
	return PropertyDTO{
		ID:      p.ID().Bytes(),
		HostID:  p.HostID().Bytes(),
		Name:    p.Name(),
		Address: p.Address(),
	}
}

func toDomain(dto PropertyDTO) (*property.Property, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	hostID, err := kernel.UUIDFromBytes(dto.HostID[:])
	if err != nil {
		return nil, err
	}
	return property.RestoreProperty(id, hostID, dto.Name, dto.Address)
}
