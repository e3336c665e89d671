package identityrepo

import (
	"context"
	"errors"

	"cleaning/internal/adapters/out/postgres/pgerr"
	"cleaning/internal/core/domain/model/identity"
	"cleaning/internal/core/domain/model/kernel"
	"cleaning/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormUserRepository(db *gorm.DB, tracker aggregateTracker) *GormUserRepository {
	return &GormUserRepository{db: db, tracker: tracker}
}

// Add saves a new user. A taken email is reported as errs.ErrObjectExists.
func (r *GormUserRepository) Add(ctx context.Context, aggregate *identity.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := userFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return errs.NewObjectExistsErrorWithCause("email", dto.Email, err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*identity.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id.String())
		}
		return nil, err
	}

	return userToDomain(dto)
}

func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*identity.User, error) {
	email = identity.NormalizeEmail(email)

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", email)
		}
		return nil, err
	}

	return userToDomain(dto)
}

// GormHostRepository implements HostRepository using GORM.
type GormHostRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormHostRepository(db *gorm.DB, tracker aggregateTracker) *GormHostRepository {
	return &GormHostRepository{db: db, tracker: tracker}
}

func (r *GormHostRepository) Add(ctx context.Context, aggregate *identity.Host) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := hostFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return errs.NewObjectExistsErrorWithCause("host profile", aggregate.UserID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormHostRepository) GetByUserID(ctx context.Context, userID kernel.UUID) (*identity.Host, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto HostDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("host", userID.String())
		}
		return nil, err
	}

	return hostToDomain(dto)
}

// GormCleanerRepository implements CleanerRepository using GORM.
type GormCleanerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormCleanerRepository(db *gorm.DB, tracker aggregateTracker) *GormCleanerRepository {
	return &GormCleanerRepository{db: db, tracker: tracker}
}

func (r *GormCleanerRepository) Add(ctx context.Context, aggregate *identity.Cleaner) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := cleanerFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return errs.NewObjectExistsErrorWithCause("cleaner profile", aggregate.UserID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the profile and rating aggregate back.
func (r *GormCleanerRepository) Update(ctx context.Context, aggregate *identity.Cleaner) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := cleanerFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CleanerDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"name":          dto.Name,
		"phone":         dto.Phone,
		"avg_rating":    dto.AvgRating,
		"ratings_count": dto.RatingsCount,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormCleanerRepository) Get(ctx context.Context, id kernel.UUID) (*identity.Cleaner, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate takes a row lock held until the surrounding transaction ends.
func (r *GormCleanerRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*identity.Cleaner, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormCleanerRepository) get(db *gorm.DB, id kernel.UUID) (*identity.Cleaner, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CleanerDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cleaner", id.String())
		}
		return nil, err
	}

	return cleanerToDomain(dto)
}

func (r *GormCleanerRepository) GetByUserID(ctx context.Context, userID kernel.UUID) (*identity.Cleaner, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto CleanerDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cleaner", userID.String())
		}
		return nil, err
	}

	return cleanerToDomain(dto)
}
