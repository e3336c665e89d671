package queries

import (
	"context"

	"cleaning/internal/core/domain/model/job"

	"gorm.io/gorm"
)

type ListOpenJobsQueryHandler struct {
	db *gorm.DB
}

func NewListOpenJobsQueryHandler(db *gorm.DB) ListOpenJobsQueryHandler {
	return ListOpenJobsQueryHandler{db: db}
}

// Handle returns open jobs ordered by booking start ascending.
func (h ListOpenJobsQueryHandler) Handle(ctx context.Context, query ListOpenJobsQuery) ([]JobResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return scanJobs(ctx, h.db, selectJobs+`
		WHERE status = ?
		ORDER BY booking_start ASC, id
	`, int(job.Open))
}
