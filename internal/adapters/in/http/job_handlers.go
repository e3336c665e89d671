package http

import (
	"fmt"
	"io"
	"net/http"

	"cleaning/internal/core/application/usecases/commands"
	"cleaning/internal/core/application/usecases/queries"
	"cleaning/internal/core/domain/model/identity"
	"cleaning/internal/core/domain/model/job"
	"cleaning/internal/core/domain/model/kernel"
	"cleaning/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// MaxPhotoBytes caps a single evidence upload.
const MaxPhotoBytes = 10 << 20

// CreateJob handles POST /api/v1/jobs.
func (s *Server) CreateJob(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body NewJob
	if err = ctx.Bind(&body); err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	propertyID, err := toKernelID(body.PropertyID)
	if err != nil {
		return s.fail(ctx, err)
	}

	texts := make([]string, len(body.Checklist))
	for i, item := range body.Checklist {
		texts[i] = item.Text
	}

	cmd, err := commands.NewCreateJobCommand(principal, kernel.NewUUID(), propertyID,
		body.BookingStart, body.BookingEnd, texts)
	if err != nil {
		return s.fail(ctx, err)
	}

	j, err := s.handlers.CreateJob.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, jobFromResponse(queries.JobResponseFromDomain(j)))
}

// ListOpenJobs handles GET /api/v1/jobs/open.
func (s *Server) ListOpenJobs(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListOpenJobsQuery(principal)
	if err != nil {
		return s.fail(ctx, err)
	}

	jobs, err := s.handlers.ListOpenJobs.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, jobsFromResponse(jobs))
}

// GetJob handles GET /api/v1/jobs/{jobId}.
func (s *Server) GetJob(ctx echo.Context) error {
	principal, jobID, err := s.jobRequest(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetJobQuery(principal, jobID)
	if err != nil {
		return s.fail(ctx, err)
	}

	j, err := s.handlers.GetJob.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, jobFromResponse(j))
}

// ClaimJob handles POST /api/v1/jobs/{jobId}/claim.
func (s *Server) ClaimJob(ctx echo.Context) error {
	principal, jobID, err := s.jobRequest(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewClaimJobCommand(principal, jobID)
	if err != nil {
		return s.fail(ctx, err)
	}

	j, err := s.handlers.ClaimJob.Handle(ctx.Request().Context(), cmd)
	return s.respondWithJob(ctx, j, err)
}

// StartJob handles POST /api/v1/jobs/{jobId}/start.
func (s *Server) StartJob(ctx echo.Context) error {
	principal, jobID, err := s.jobRequest(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewStartJobCommand(principal, jobID)
	if err != nil {
		return s.fail(ctx, err)
	}

	j, err := s.handlers.StartJob.Handle(ctx.Request().Context(), cmd)
	return s.respondWithJob(ctx, j, err)
}

// CompleteJob handles POST /api/v1/jobs/{jobId}/complete.
func (s *Server) CompleteJob(ctx echo.Context) error {
	principal, jobID, err := s.jobRequest(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCompleteJobCommand(principal, jobID)
	if err != nil {
		return s.fail(ctx, err)
	}

	j, err := s.handlers.CompleteJob.Handle(ctx.Request().Context(), cmd)
	return s.respondWithJob(ctx, j, err)
}

// TickChecklist handles POST /api/v1/jobs/{jobId}/checklist/tick and returns the whole checklist.
func (s *Server) TickChecklist(ctx echo.Context) error {
	principal, jobID, err := s.jobRequest(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body Tick
	if err = ctx.Bind(&body); err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	itemIDs, err := toKernelIDs(body.ItemIDs)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewTickChecklistCommand(principal, jobID, itemIDs)
	if err != nil {
		return s.fail(ctx, err)
	}

	items, err := s.handlers.TickChecklist.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, checklistFromResponse(queries.ChecklistResponseFromDomain(items)))
}

// AttachPhoto handles POST /api/v1/jobs/{jobId}/checklist/{itemId}/photo with a multipart "file" field.
func (s *Server) AttachPhoto(ctx echo.Context) error {
	principal, jobID, err := s.jobRequest(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	itemID, err := pathID(ctx, "itemId")
	if err != nil {
		return s.fail(ctx, err)
	}

	content, filename, err := readUpload(ctx, "file")
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAttachPhotoCommand(principal, jobID, itemID, content, filename)
	if err != nil {
		return s.fail(ctx, err)
	}

	item, err := s.handlers.AttachPhoto.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	items := checklistFromResponse(queries.ChecklistResponseFromDomain([]*job.ChecklistItem{item}))
	return ctx.JSON(http.StatusOK, items[0])
}

// RateJob handles POST /api/v1/jobs/{jobId}/rating.
func (s *Server) RateJob(ctx echo.Context) error {
	principal, jobID, err := s.jobRequest(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body NewRating
	if err = ctx.Bind(&body); err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewRateJobCommand(principal, jobID, body.Stars, body.Feedback)
	if err != nil {
		return s.fail(ctx, err)
	}

	r, err := s.handlers.RateJob.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, ratingFromDomain(r))
}

func (s *Server) jobRequest(ctx echo.Context) (identity.Principal, kernel.UUID, error) {
	principal, err := principalFrom(ctx)
	if err != nil {
		return identity.Principal{}, kernel.UUID{}, err
	}

	jobID, err := pathID(ctx, "jobId")
	if err != nil {
		return identity.Principal{}, kernel.UUID{}, err
	}

	return principal, jobID, nil
}

func (s *Server) respondWithJob(ctx echo.Context, j *job.Job, err error) error {
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, jobFromResponse(queries.JobResponseFromDomain(j)))
}

func readUpload(ctx echo.Context, field string) ([]byte, string, error) {
	header, err := ctx.FormFile(field)
	if err != nil {
		return nil, "", errs.NewValueIsRequiredErrorWithCause(field, err)
	}
	if header.Size > MaxPhotoBytes {
		return nil, "", errs.NewValueIsOutOfRangeError(field, header.Size, 1, MaxPhotoBytes)
	}

	f, err := header.Open()
	if err != nil {
		return nil, "", fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, MaxPhotoBytes))
	if err != nil {
		return nil, "", fmt.Errorf("read upload: %w", err)
	}

	return content, header.Filename, nil
}
