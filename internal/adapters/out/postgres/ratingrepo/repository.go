package ratingrepo

import (
	"context"
	"errors"

	"cleaning/internal/adapters/out/postgres/pgerr"
	"cleaning/internal/core/domain/model/kernel"
	"cleaning/internal/core/domain/model/rating"
	"cleaning/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRatingRepository implements RatingRepository using GORM.
type GormRatingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormRatingRepository(db *gorm.DB, tracker aggregateTracker) *GormRatingRepository {
	return &GormRatingRepository{db: db, tracker: tracker}
}

// Add saves a rating. A second rating for the same job yields errs.ErrObjectExists.
func (r *GormRatingRepository) Add(ctx context.Context, aggregate *rating.Rating) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return errs.NewObjectExistsErrorWithCause("rating for job", aggregate.JobID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormRatingRepository) ExistsForJob(ctx context.Context, jobID kernel.UUID) (bool, error) {
	if err := jobID.Validate(); err != nil {
		return false, err
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&RatingDTO{}).Where("job_id = ?", jobID.Bytes()).Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// GetByJobID returns errs.ErrObjectNotFound when the job has not been rated.
func (r *GormRatingRepository) GetByJobID(ctx context.Context, jobID kernel.UUID) (*rating.Rating, error) {
	if err := jobID.Validate(); err != nil {
		return nil, err
	}

	var dto RatingDTO
	if err := r.db.WithContext(ctx).First(&dto, "job_id = ?", jobID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rating", jobID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
