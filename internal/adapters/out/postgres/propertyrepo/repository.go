package propertyrepo

import (
	"context"
	"errors"

	"cleaning/internal/core/domain/model/kernel"
	"cleaning/internal/core/domain/model/property"
	"cleaning/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPropertyRepository implements PropertyRepository using GORM.
type GormPropertyRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormPropertyRepository(db *gorm.DB, tracker aggregateTracker) *GormPropertyRepository {
	return &GormPropertyRepository{db: db, tracker: tracker}
}

// Add saves a new property to the database.
func (r *GormPropertyRepository) Add(ctx context.Context, aggregate *property.Property) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a property by ID.
func (r *GormPropertyRepository) Get(ctx context.Context, id kernel.UUID) (*property.Property, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PropertyDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("property", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
