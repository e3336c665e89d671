package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetJobQueryHandler struct {
	db *gorm.DB
}

func NewGetJobQueryHandler(db *gorm.DB) GetJobQueryHandler {
	return GetJobQueryHandler{db: db}
}

// Handle returns ErrJobNotFound when the job does not exist.
func (h GetJobQueryHandler) Handle(ctx context.Context, query GetJobQuery) (JobResponse, error) {
	if err := query.Validate(); err != nil {
		return JobResponse{}, err
	}

	jobs, err := scanJobs(ctx, h.db, selectJobs+`
		WHERE id = ?
	`, query.JobID().Bytes())
	if err != nil {
		return JobResponse{}, err
	}
	if len(jobs) == 0 {
		return JobResponse{}, ErrJobNotFound
	}

	return jobs[0], nil
}
