// Package ratingrepo persists host ratings of completed jobs.
package ratingrepo

import (
	"time"

	"cleaning/internal/core/domain/model/kernel"
	"cleaning/internal/core/domain/model/rating"

	"github.com/google/uuid"
)

// RatingDTO has a unique job_id so a job can be rated once.
type RatingDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	JobID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	HostID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CleanerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Stars     int       `gorm:"type:smallint;not null"`
	Feedback  string    `gorm:"type:text;not null;default:''"`
	CreatedAt time.Time `gorm:"not null"`
}

func (RatingDTO) TableName() string {
	return "ratings"
}

func fromDomain(r *rating.Rating) RatingDTO {
	return RatingDTO{
		ID:        r.ID().Bytes(),
		JobID:     r.JobID().Bytes(),
		HostID:    r.HostID().Bytes(),
		CleanerID: r.CleanerID().Bytes(),
		Stars:     r.Stars(),
		Feedback:  r.Feedback(),
		CreatedAt: r.CreatedAt(),
	}
}

func toDomain(dto RatingDTO) (*rating.Rating, error) {
	ids := make([]kernel.UUID, 0, 4)
	for _, raw := range []uuid.UUID{dto.ID, dto.JobID, dto.HostID, dto.CleanerID} {
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return rating.RestoreRating(ids[0], ids[1], ids[2], ids[3], dto.Stars, dto.Feedback, dto.CreatedAt)
}
