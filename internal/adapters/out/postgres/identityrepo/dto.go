// Package identityrepo persists users and their host and cleaner profiles.
package identityrepo

import (
	"time"

	"cleaning/internal/core/domain/model/identity"
	"cleaning/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// UserDTO is the login identity row. Email is stored normalised.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(320);not null;uniqueIndex"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         int       `gorm:"type:smallint;not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (UserDTO) TableName() string {
	return "users"
}

type HostDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Name   string    `gorm:"type:varchar(255);not null"`
	Phone  string    `gorm:"type:varchar(64);not null;default:''"`
}

func (HostDTO) TableName() string {
	return "hosts"
}

// CleanerDTO carries the denormalised rating aggregate.
type CleanerDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Phone        string    `gorm:"type:varchar(64);not null;default:''"`
	AvgRating    float64   `gorm:"type:double precision;not null;default:0"`
	RatingsCount int       `gorm:"type:int;not null;default:0"`
}

func (CleanerDTO) TableName() string {
	return "cleaners"
}

func userFromDomain(u *identity.User) UserDTO {
	return UserDTO{
		ID:           u.ID().Bytes(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Role:         int(u.Role()),
		CreatedAt:    u.CreatedAt(),
	}
}

func userToDomain(dto UserDTO) (*identity.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return identity.RestoreUser(id, dto.Email, dto.PasswordHash, identity.Role(dto.Role), dto.CreatedAt)
}

func hostFromDomain(h *identity.Host) HostDTO {
	return HostDTO{
		ID:     h.ID().Bytes(),
		UserID: h.UserID().Bytes(),
		Name:   h.Name(),
		Phone:  h.Phone(),
	}
}

func hostToDomain(dto HostDTO) (*identity.Host, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	return identity.RestoreHost(id, userID, dto.Name, dto.Phone)
}

func cleanerFromDomain(c *identity.Cleaner) CleanerDTO {
	return CleanerDTO{
		ID:           c.ID().Bytes(),
		UserID:       c.UserID().Bytes(),
		Name:         c.Name(),
		Phone:        c.Phone(),
		AvgRating:    c.AvgRating(),
		RatingsCount: c.RatingsCount(),
	}
}

func cleanerToDomain(dto CleanerDTO) (*identity.Cleaner, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	return identity.RestoreCleaner(id, userID, dto.Name, dto.Phone, dto.AvgRating, dto.RatingsCount)
}
