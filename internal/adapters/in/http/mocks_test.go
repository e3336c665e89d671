package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cleaning/internal/core/application/usecases/commands"
	"cleaning/internal/core/application/usecases/queries"
	"cleaning/internal/core/domain/model/identity"
	"cleaning/internal/core/domain/model/job"
	"cleaning/internal/core/domain/model/kernel"
	"cleaning/internal/core/domain/model/property"
	"cleaning/internal/core/domain/model/rating"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

type MockHandler[In any, Out any] struct {
	mock.Mock
}

func (m *MockHandler[In, Out]) Handle(ctx context.Context, in In) (Out, error) {
	args := m.Called(ctx, in)
	var out Out
	if v := args.Get(0); v != nil {
		out = v.(Out)
	}
	return out, args.Error(1)
}

type mockHandlers struct {
	registerUser     *MockHandler[commands.RegisterUserCommand, *identity.User]
	authenticateUser *MockHandler[commands.AuthenticateUserCommand, identity.Principal]
	createProperty   *MockHandler[commands.CreatePropertyCommand, *property.Property]
	createJob        *MockHandler[commands.CreateJobCommand, *job.Job]
	claimJob         *MockHandler[commands.ClaimJobCommand, *job.Job]
	startJob         *MockHandler[commands.StartJobCommand, *job.Job]
	tickChecklist    *MockHandler[commands.TickChecklistCommand, []*job.ChecklistItem]
	attachPhoto      *MockHandler[commands.AttachPhotoCommand, *job.ChecklistItem]
	completeJob      *MockHandler[commands.CompleteJobCommand, *job.Job]
	rateJob          *MockHandler[commands.RateJobCommand, *rating.Rating]

	getProperty         *MockHandler[queries.GetPropertyQuery, queries.PropertyResponse]
	listMyProperties    *MockHandler[queries.ListMyPropertiesQuery, []queries.PropertyResponse]
	getUpcomingBookings *MockHandler[queries.GetUpcomingBookingsQuery, []job.BookingWindow]
	listOpenJobs        *MockHandler[queries.ListOpenJobsQuery, []queries.JobResponse]
	getJob              *MockHandler[queries.GetJobQuery, queries.JobResponse]
}

func newMockHandlers() *mockHandlers {
	return &mockHandlers{
		registerUser:        &MockHandler[commands.RegisterUserCommand, *identity.User]{},
		authenticateUser:    &MockHandler[commands.AuthenticateUserCommand, identity.Principal]{},
		createProperty:      &MockHandler[commands.CreatePropertyCommand, *property.Property]{},
		createJob:           &MockHandler[commands.CreateJobCommand, *job.Job]{},
		claimJob:            &MockHandler[commands.ClaimJobCommand, *job.Job]{},
		startJob:            &MockHandler[commands.StartJobCommand, *job.Job]{},
		tickChecklist:       &MockHandler[commands.TickChecklistCommand, []*job.ChecklistItem]{},
		attachPhoto:         &MockHandler[commands.AttachPhotoCommand, *job.ChecklistItem]{},
		completeJob:         &MockHandler[commands.CompleteJobCommand, *job.Job]{},
		rateJob:             &MockHandler[commands.RateJobCommand, *rating.Rating]{},
		getProperty:         &MockHandler[queries.GetPropertyQuery, queries.PropertyResponse]{},
		listMyProperties:    &MockHandler[queries.ListMyPropertiesQuery, []queries.PropertyResponse]{},
		getUpcomingBookings: &MockHandler[queries.GetUpcomingBookingsQuery, []job.BookingWindow]{},
		listOpenJobs:        &MockHandler[queries.ListOpenJobsQuery, []queries.JobResponse]{},
		getJob:              &MockHandler[queries.GetJobQuery, queries.JobResponse]{},
	}
}

func (m *mockHandlers) handlers() Handlers {
	return Handlers{
		RegisterUser:        m.registerUser,
		AuthenticateUser:    m.authenticateUser,
		CreateProperty:      m.createProperty,
		CreateJob:           m.createJob,
		ClaimJob:            m.claimJob,
		StartJob:            m.startJob,
		TickChecklist:       m.tickChecklist,
		AttachPhoto:         m.attachPhoto,
		CompleteJob:         m.completeJob,
		RateJob:             m.rateJob,
		GetProperty:         m.getProperty,
		ListMyProperties:    m.listMyProperties,
		GetUpcomingBookings: m.getUpcomingBookings,
		ListOpenJobs:        m.listOpenJobs,
		GetJob:              m.getJob,
	}
}

type testServer struct {
	echo   *echo.Echo
	mocks  *mockHandlers
	tokens *TokenIssuer
}

func newTestServer(t *testing.T, media http.Handler) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	contract, err := LoadContract(context.Background())
	require.NoError(t, err)

	tokens, err := NewTokenIssuer("test-secret", time.Hour, kernel.FixedClock{At: testNow})
	require.NoError(t, err)

	if media == nil {
		media = http.NotFoundHandler()
	}

	mocks := newMockHandlers()
	server, err := NewServer(mocks.handlers(), contract, tokens, media, logger)
	require.NoError(t, err)

	e := NewEcho(logger)
	server.Mount(e)

	return &testServer{echo: e, mocks: mocks, tokens: tokens}
}

func (s *testServer) tokenFor(t *testing.T, role identity.Role) (identity.Principal, string) {
	t.Helper()

	p, err := identity.NewPrincipal(kernel.NewUUID(), role)
	require.NoError(t, err)
	token, err := s.tokens.Issue(p)
	require.NoError(t, err)
	return p, token
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func jsonRequest(t *testing.T, method string, target string, token string, body any) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	return req
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}
