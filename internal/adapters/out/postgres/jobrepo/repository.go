package jobrepo

import (
	"context"
	"errors"
	"time"

	"cleaning/internal/core/domain/model/job"
	"cleaning/internal/core/domain/model/kernel"
	"cleaning/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormJobRepository implements JobRepository using GORM.
type GormJobRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormJobRepository(db *gorm.DB, tracker aggregateTracker) *GormJobRepository {
	return &GormJobRepository{db: db, tracker: tracker}
}

// Add saves a new job and its checklist items.
func (r *GormJobRepository) Add(ctx context.Context, aggregate *job.Job) error {
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

// Update is a compare-and-set on status: the row is written only while its
// stored status still equals from. Checklist items are upserted afterwards.
func (r *GormJobRepository) Update(ctx context.Context, aggregate *job.Job, from job.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&JobDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(from)).
		Updates(map[string]any{
			"status":       dto.Status,
			"cleaner_id":   dto.CleanerID,
			"completed_at": dto.CompletedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := db.Model(&JobDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
		return errs.NewVersionIsInvalidError("job status")
	}

	if len(dto.ChecklistItems) > 0 {
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"checked", "checked_at", "photo_ref"}),
		}).Create(&dto.ChecklistItems).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a job by ID with its checklist in position order.
func (r *GormJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	return r.get(r.withChecklist(ctx), id)
}

// GetForUpdate locks the job row until the surrounding transaction ends. The
// checklist is preloaded after the lock is granted, so it reflects every
// writer that committed before.
func (r *GormJobRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	return r.get(r.withChecklist(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormJobRepository) get(db *gorm.DB, id kernel.UUID) (*job.Job, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto JobDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("job", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllOpenEndedBefore returns open jobs whose booking window closed before t,
// oldest booking first.
func (r *GormJobRepository) GetAllOpenEndedBefore(ctx context.Context, t time.Time) ([]*job.Job, error) {
	var dtos []JobDTO
	if err := r.withChecklist(ctx).
		Where("status = ? AND booking_end < ?", int(job.Open), t.UTC()).
		Order("booking_end ASC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	jobs := make([]*job.Job, 0, len(dtos))
	for _, dto := range dtos {
		j, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}

	return jobs, nil
}

func (r *GormJobRepository) withChecklist(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("ChecklistItems", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	})
}
