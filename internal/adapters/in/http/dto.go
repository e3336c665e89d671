package http

import (
	"time"

	"cleaning/internal/core/application/usecases/queries"
	"cleaning/internal/core/domain/model/job"
	"cleaning/internal/core/domain/model/kernel"
	"cleaning/internal/core/domain/model/rating"

	"github.com/google/uuid"
)

type Registration struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Token struct {
	Token string `json:"token"`
}

type NewProperty struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type Property struct {
	ID      uuid.UUID `json:"id"`
	HostID  uuid.UUID `json:"host_id"`
	Name    string    `json:"name"`
	Address string    `json:"address"`
}

type BookingWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type NewChecklistItem struct {
	Text string `json:"text"`
}

type NewJob struct {
	PropertyID   uuid.UUID          `json:"property_id"`
	BookingStart time.Time          `json:"booking_start"`
	BookingEnd   time.Time          `json:"booking_end"`
	Checklist    []NewChecklistItem `json:"checklist,omitempty"`
}

type Job struct {
	ID             uuid.UUID       `json:"id"`
	PropertyID     uuid.UUID       `json:"property_id"`
	BookingStart   time.Time       `json:"booking_start"`
	BookingEnd     time.Time       `json:"booking_end"`
	Status         string          `json:"status"`
	CleanerID      *uuid.UUID      `json:"cleaner_id"`
	CreatedAt      time.Time       `json:"created_at"`
	CompletedAt    *time.Time      `json:"completed_at"`
	ChecklistItems []ChecklistItem `json:"checklist_items"`
}

type ChecklistItem struct {
	ID        uuid.UUID  `json:"id"`
	Text      string     `json:"text"`
	Checked   bool       `json:"checked"`
	CheckedAt *time.Time `json:"checked_at"`
	PhotoPath *string    `json:"photo_path"`
}

type Tick struct {
	ItemIDs []uuid.UUID `json:"item_ids"`
}

type NewRating struct {
	Stars    int    `json:"stars"`
	Feedback string `json:"feedback"`
}

type Rating struct {
	ID        uuid.UUID `json:"id"`
	JobID     uuid.UUID `json:"job_id"`
	CleanerID uuid.UUID `json:"cleaner_id"`
	Stars     int       `json:"stars"`
	Feedback  string    `json:"feedback"`
	CreatedAt time.Time `json:"created_at"`
}

func toKernelID(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toKernelIDs(ids []uuid.UUID) ([]kernel.UUID, error) {
	out := make([]kernel.UUID, 0, len(ids))
	for _, id := range ids {
		kid, err := toKernelID(id)
		if err != nil {
			return nil, err
		}
		out = append(out, kid)
	}
	return out, nil
}

func optionalID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func propertyFromResponse(p queries.PropertyResponse) Property {
	return Property{
		ID:      p.ID.Bytes(),
		HostID:  p.HostID.Bytes(),
		Name:    p.Name,
		Address: p.Address,
	}
}

func propertiesFromResponse(ps []queries.PropertyResponse) []Property {
	out := make([]Property, len(ps))
	for i, p := range ps {
		out[i] = propertyFromResponse(p)
	}
	return out
}

func bookingWindowsFromDomain(ws []job.BookingWindow) []BookingWindow {
	out := make([]BookingWindow, len(ws))
	for i, w := range ws {
		out[i] = BookingWindow{Start: w.Start(), End: w.End()}
	}
	return out
}

func jobFromResponse(j queries.JobResponse) Job {
	return Job{
		ID:             j.ID.Bytes(),
		PropertyID:     j.PropertyID.Bytes(),
		BookingStart:   j.BookingStart,
		BookingEnd:     j.BookingEnd,
		Status:         j.Status.String(),
		CleanerID:      optionalID(j.CleanerID),
		CreatedAt:      j.CreatedAt,
		CompletedAt:    j.CompletedAt,
		ChecklistItems: checklistFromResponse(j.Checklist),
	}
}

func jobsFromResponse(js []queries.JobResponse) []Job {
	out := make([]Job, len(js))
	for i, j := range js {
		out[i] = jobFromResponse(j)
	}
	return out
}

func checklistFromResponse(items []queries.ChecklistItemResponse) []ChecklistItem {
	out := make([]ChecklistItem, len(items))
	for i, item := range items {
		out[i] = ChecklistItem{
			ID:        item.ID.Bytes(),
			Text:      item.Text,
			Checked:   item.Checked,
			CheckedAt: item.CheckedAt,
		}
		if item.PhotoRef != "" {
			ref := item.PhotoRef
			out[i].PhotoPath = &ref
		}
	}
	return out
}

func ratingFromDomain(r *rating.Rating) Rating {
	return Rating{
		ID:        r.ID().Bytes(),
		JobID:     r.JobID().Bytes(),
		CleanerID: r.CleanerID().Bytes(),
		Stars:     r.Stars(),
		Feedback:  r.Feedback(),
		CreatedAt: r.CreatedAt(),
	}
}
