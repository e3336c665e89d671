// Package jobrepo persists cleaning jobs together with their checklist items.
package jobrepo

import (
	"time"

	"cleaning/internal/core/domain/model/job"
	"cleaning/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// JobDTO maps a job aggregate to the cleaning_jobs table.
type JobDTO struct {
	ID             uuid.UUID          `gorm:"type:uuid;primaryKey"`
	PropertyID     uuid.UUID          `gorm:"type:uuid;not null;index"`
	BookingStart   time.Time          `gorm:"not null;index"`
	BookingEnd     time.Time          `gorm:"not null"`
	Status         int                `gorm:"type:smallint;not null;index"`
	CleanerID      *uuid.UUID         `gorm:"type:uuid;index"`
	CreatedAt      time.Time          `gorm:"not null"`
	CompletedAt    *time.Time
	ChecklistItems []ChecklistItemDTO `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE"`
}

func (JobDTO) TableName() string {
	return "cleaning_jobs"
}

// ChecklistItemDTO stores one checklist entry. Position keeps creation order.
type ChecklistItemDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	JobID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	Position  int        `gorm:"type:int;not null"`
	Text      string     `gorm:"type:text;not null"`
	Checked   bool       `gorm:"not null;default:false"`
	CheckedAt *time.Time
	PhotoRef  *string `gorm:"type:text"`
}

func (ChecklistItemDTO) TableName() string {
	return "checklist_items"
}

func fromDomain(j *job.Job) JobDTO {
	jobID := j.ID().Bytes()

	var cleanerID *uuid.UUID
	if c := j.Cleaner(); c != nil {
		raw := c.Bytes()
		cleanerID = &raw
	}

	items := make([]ChecklistItemDTO, 0, len(j.Checklist()))
	for pos, item := range j.Checklist() {
		items = append(items, itemFromDomain(jobID, pos, item))
	}

	return JobDTO{
		ID:             jobID,
		PropertyID:     j.PropertyID().Bytes(),
		BookingStart:   j.Window().Start(),
		BookingEnd:     j.Window().End(),
		Status:         int(j.Status()),
		CleanerID:      cleanerID,
		CreatedAt:      j.CreatedAt(),
		CompletedAt:    j.CompletedAt(),
		ChecklistItems: items,
	}
}

func itemFromDomain(jobID uuid.UUID, pos int, item *job.ChecklistItem) ChecklistItemDTO {
	var photoRef *string
	if ref := item.PhotoRef(); ref != "" {
		photoRef = &ref
	}

	return ChecklistItemDTO{
		ID:        item.ID().Bytes(),
		JobID:     jobID,
		Position:  pos,
		Text:      item.Text(),
		Checked:   item.IsChecked(),
		CheckedAt: item.CheckedAt(),
		PhotoRef:  photoRef,
	}
}

// toDomain expects ChecklistItems preloaded in position order.
func toDomain(dto JobDTO) (*job.Job, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	propertyID, err := kernel.UUIDFromBytes(dto.PropertyID[:])
	if err != nil {
		return nil, err
	}

	window, err := job.NewBookingWindow(dto.BookingStart, dto.BookingEnd)
	if err != nil {
		return nil, err
	}

	var cleanerID *kernel.UUID
	if dto.CleanerID != nil {
		cID, cErr := kernel.UUIDFromBytes((*dto.CleanerID)[:])
		if cErr != nil {
			return nil, cErr
		}
		cleanerID = &cID
	}

	items := make([]*job.ChecklistItem, 0, len(dto.ChecklistItems))
	for _, itemDto := range dto.ChecklistItems {
		item, itemErr := itemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return job.RestoreJob(
		id,
		propertyID,
		window,
		job.Status(dto.Status),
		cleanerID,
		dto.CreatedAt,
		dto.CompletedAt,
		items,
	)
}

func itemToDomain(dto ChecklistItemDTO) (*job.ChecklistItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	photoRef := ""
	if dto.PhotoRef != nil {
		photoRef = *dto.PhotoRef
	}

	return job.RestoreChecklistItem(id, dto.Text, dto.Checked, dto.CheckedAt, photoRef)
}
