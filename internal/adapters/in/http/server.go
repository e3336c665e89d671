package http

import (
	"context"
	"log/slog"
	"net/http"

	"cleaning/internal/core/application/usecases/commands"
	"cleaning/internal/core/application/usecases/queries"
	"cleaning/internal/core/domain/model/identity"
	"cleaning/internal/core/domain/model/job"
	"cleaning/internal/core/domain/model/property"
	"cleaning/internal/core/domain/model/rating"
	"cleaning/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Handler is the shape shared by every command and query handler.
type Handler[In any, Out any] interface {
	Handle(ctx context.Context, in In) (Out, error)
}

// Handlers wires use cases to routes. Every field is required.
type Handlers struct {
	// Command handlers
	RegisterUser     Handler[commands.RegisterUserCommand, *identity.User]
	AuthenticateUser Handler[commands.AuthenticateUserCommand, identity.Principal]
	CreateProperty   Handler[commands.CreatePropertyCommand, *property.Property]
	CreateJob        Handler[commands.CreateJobCommand, *job.Job]
	ClaimJob         Handler[commands.ClaimJobCommand, *job.Job]
	StartJob         Handler[commands.StartJobCommand, *job.Job]
	TickChecklist    Handler[commands.TickChecklistCommand, []*job.ChecklistItem]
	AttachPhoto      Handler[commands.AttachPhotoCommand, *job.ChecklistItem]
	CompleteJob      Handler[commands.CompleteJobCommand, *job.Job]
	RateJob          Handler[commands.RateJobCommand, *rating.Rating]

	// Query handlers
	GetProperty         Handler[queries.GetPropertyQuery, queries.PropertyResponse]
	ListMyProperties    Handler[queries.ListMyPropertiesQuery, []queries.PropertyResponse]
	GetUpcomingBookings Handler[queries.GetUpcomingBookingsQuery, []job.BookingWindow]
	ListOpenJobs        Handler[queries.ListOpenJobsQuery, []queries.JobResponse]
	GetJob              Handler[queries.GetJobQuery, queries.JobResponse]
}

// Server exposes the use cases over HTTP. Requests under /api/v1 are checked
// against the OpenAPI contract, and all but auth require a bearer token.
type Server struct {
	handlers Handlers
	contract *Contract
	tokens   *TokenIssuer
	media    http.Handler
	logger   *slog.Logger
}

func NewServer(
	handlers Handlers,
	contract *Contract,
	tokens *TokenIssuer,
	media http.Handler,
	logger *slog.Logger,
) (*Server, error) {
	if contract == nil {
		return nil, errs.NewValueIsRequiredError("contract")
	}
	if tokens == nil {
		return nil, errs.NewValueIsRequiredError("tokens")
	}
	if media == nil {
		return nil, errs.NewValueIsRequiredError("media")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	return &Server{
		handlers: handlers,
		contract: contract,
		tokens:   tokens,
		media:    media,
		logger:   logger.With("component", "http"),
	}, nil
}

// Mount registers every route on e.
func (s *Server) Mount(e *echo.Echo) {
	e.GET("/health", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "Healthy")
	})
	e.GET("/openapi.yaml", s.contract.serveYAML)
	s.contract.Register()
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/media/*", echo.WrapHandler(http.StripPrefix("/media/", s.media)))

	validate := s.contract.ValidateRequests()

	auth := e.Group("/api/v1/auth", validate)
	auth.POST("/register", s.Register)
	auth.POST("/login", s.Login)

	protected := e.Group("/api/v1", s.tokens.RequireBearer(), validate)

	protected.POST("/properties", s.CreateProperty)
	protected.GET("/properties/mine", s.ListMyProperties)
	protected.GET("/properties/:propertyId", s.GetProperty)
	protected.GET("/properties/:propertyId/bookings", s.GetUpcomingBookings)

	protected.POST("/jobs", s.CreateJob)
	protected.GET("/jobs/open", s.ListOpenJobs)
	protected.GET("/jobs/:jobId", s.GetJob)
	protected.POST("/jobs/:jobId/claim", s.ClaimJob)
	protected.POST("/jobs/:jobId/start", s.StartJob)
	protected.POST("/jobs/:jobId/checklist/tick", s.TickChecklist)
	protected.POST("/jobs/:jobId/checklist/:itemId/photo", s.AttachPhoto)
	protected.POST("/jobs/:jobId/complete", s.CompleteJob)
	protected.POST("/jobs/:jobId/rating", s.RateJob)
}
