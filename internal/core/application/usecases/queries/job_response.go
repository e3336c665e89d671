package queries

import (
	"context"
	"time"

	"cleaning/internal/core/domain/model/job"
	"cleaning/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JobResponse is the read model of a cleaning job with its checklist.
type JobResponse struct {
	ID           kernel.UUID
	PropertyID   kernel.UUID
	BookingStart time.Time
	BookingEnd   time.Time
	Status       job.Status
	CleanerID    *kernel.UUID
	CreatedAt    time.Time
	CompletedAt  *time.Time
	Checklist    []ChecklistItemResponse
}

// ChecklistItemResponse is one checklist entry in display order.
type ChecklistItemResponse struct {
	ID        kernel.UUID
	Text      string
	Checked   bool
	CheckedAt *time.Time
	PhotoRef  string
}

// JobResponseFromDomain builds the read model from an aggregate, for command results.
func JobResponseFromDomain(j *job.Job) JobResponse {
	resp := JobResponse{
		ID:           j.ID(),
		PropertyID:   j.PropertyID(),
		BookingStart: j.Window().Start(),
		BookingEnd:   j.Window().End(),
		Status:       j.Status(),
		CleanerID:    j.Cleaner(),
		CreatedAt:    j.CreatedAt(),
		CompletedAt:  j.CompletedAt(),
		Checklist:    ChecklistResponseFromDomain(j.Checklist()),
	}
	return resp
}

func ChecklistResponseFromDomain(items []*job.ChecklistItem) []ChecklistItemResponse {
	out := make([]ChecklistItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, ChecklistItemResponse{
			ID:        item.ID(),
			Text:      item.Text(),
			Checked:   item.IsChecked(),
			CheckedAt: item.CheckedAt(),
			PhotoRef:  item.PhotoRef(),
		})
	}
	return out
}

const selectJobs = `
	SELECT
		id,
		property_id,
		booking_start,
		booking_end,
		status,
		cleaner_id,
		created_at,
		completed_at
	FROM cleaning_jobs
`

// scanJobs reads rows produced by selectJobs and attaches their checklists.
func scanJobs(ctx context.Context, db *gorm.DB, query string, args ...any) ([]JobResponse, error) {
	rows, err := db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := make([]JobResponse, 0)
	index := make(map[uuid.UUID]int)
	ids := make([]uuid.UUID, 0)

	for rows.Next() {
		var (
			resp                     JobResponse
			id, propertyID           uuid.UUID
			cleanerID                *uuid.UUID
			status                   int
			completedAt              *time.Time
			bookingStart, bookingEnd time.Time
		)

		if err = rows.Scan(&id, &propertyID, &bookingStart, &bookingEnd, &status,
			&cleanerID, &resp.CreatedAt, &completedAt); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.PropertyID, err = kernel.UUIDFromBytes(propertyID[:]); err != nil {
			return nil, err
		}
		if cleanerID != nil {
			cID, idErr := kernel.UUIDFromBytes(cleanerID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.CleanerID = &cID
		}

		resp.BookingStart = bookingStart.UTC()
		resp.BookingEnd = bookingEnd.UTC()
		resp.CreatedAt = resp.CreatedAt.UTC()
		resp.Status = job.Status(status)
		if completedAt != nil {
			at := completedAt.UTC()
			resp.CompletedAt = &at
		}
		resp.Checklist = make([]ChecklistItemResponse, 0)

		index[id] = len(jobs)
		ids = append(ids, id)
		jobs = append(jobs, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return jobs, nil
	}

	if err = attachChecklists(ctx, db, jobs, index, ids); err != nil {
		return nil, err
	}

	return jobs, nil
}

func attachChecklists(
	ctx context.Context,
	db *gorm.DB,
	jobs []JobResponse,
	index map[uuid.UUID]int,
	ids []uuid.UUID,
) error {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			job_id,
			text,
			checked,
			checked_at,
			COALESCE(photo_ref, '')
		FROM checklist_items
		WHERE job_id IN ?
		ORDER BY job_id, position
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item      ChecklistItemResponse
			id, jobID uuid.UUID
			checkedAt *time.Time
		)

		if err = rows.Scan(&id, &jobID, &item.Text, &item.Checked, &checkedAt, &item.PhotoRef); err != nil {
			return err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return err
		}
		if checkedAt != nil {
			at := checkedAt.UTC()
			item.CheckedAt = &at
		}

		pos, ok := index[jobID]
		if !ok {
			continue
		}
		jobs[pos].Checklist = append(jobs[pos].Checklist, item)
	}

	return rows.Err()
}
