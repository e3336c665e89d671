package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"cleaning/internal/core/application/usecases/commands"
	"cleaning/internal/core/domain/model/identity"
	"cleaning/internal/core/domain/model/job"
	"cleaning/internal/core/domain/model/kernel"
	"cleaning/internal/core/domain/model/property"
	"cleaning/internal/core/domain/model/rating"
	"cleaning/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *identity.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

type MockHostRepository struct{ mock.Mock }

func (m *MockHostRepository) Add(ctx context.Context, h *identity.Host) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *MockHostRepository) GetByUserID(ctx context.Context, userID kernel.UUID) (*identity.Host, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Host), args.Error(1)
}

type MockCleanerRepository struct{ mock.Mock }

func (m *MockCleanerRepository) Add(ctx context.Context, c *identity.Cleaner) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCleanerRepository) Update(ctx context.Context, c *identity.Cleaner) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCleanerRepository) Get(ctx context.Context, id kernel.UUID) (*identity.Cleaner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Cleaner), args.Error(1)
}

func (m *MockCleanerRepository) GetByUserID(ctx context.Context, userID kernel.UUID) (*identity.Cleaner, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Cleaner), args.Error(1)
}

func (m *MockCleanerRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*identity.Cleaner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Cleaner), args.Error(1)
}

type MockPropertyRepository struct{ mock.Mock }

func (m *MockPropertyRepository) Add(ctx context.Context, p *property.Property) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPropertyRepository) Get(ctx context.Context, id kernel.UUID) (*property.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.Property), args.Error(1)
}

type MockJobRepository struct{ mock.Mock }

func (m *MockJobRepository) Add(ctx context.Context, j *job.Job) error {
	args := m.Called(ctx, j)
	return args.Error(0)
}

func (m *MockJobRepository) Update(ctx context.Context, j *job.Job, from job.Status) error {
	args := m.Called(ctx, j, from)
	return args.Error(0)
}

func (m *MockJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

func (m *MockJobRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

func (m *MockJobRepository) GetAllOpenEndedBefore(ctx context.Context, t time.Time) ([]*job.Job, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Job), args.Error(1)
}

type MockRatingRepository struct{ mock.Mock }

func (m *MockRatingRepository) Add(ctx context.Context, r *rating.Rating) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRatingRepository) ExistsForJob(ctx context.Context, jobID kernel.UUID) (bool, error) {
	args := m.Called(ctx, jobID)
	return args.Bool(0), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

func (m *MockUoW) HostRepository() ports.HostRepository {
	args := m.Called()
	return args.Get(0).(ports.HostRepository)
}

func (m *MockUoW) CleanerRepository() ports.CleanerRepository {
	args := m.Called()
	return args.Get(0).(ports.CleanerRepository)
}

func (m *MockUoW) PropertyRepository() ports.PropertyRepository {
	args := m.Called()
	return args.Get(0).(ports.PropertyRepository)
}

func (m *MockUoW) JobRepository() ports.JobRepository {
	args := m.Called()
	return args.Get(0).(ports.JobRepository)
}

func (m *MockUoW) RatingRepository() ports.RatingRepository {
	args := m.Called()
	return args.Get(0).(ports.RatingRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Compare(hash string, password string) error {
	args := m.Called(hash, password)
	return args.Error(0)
}

type MockMediaStore struct{ mock.Mock }

func (m *MockMediaStore) Save(ctx context.Context, name string, content io.Reader) (string, error) {
	data, _ := io.ReadAll(content)
	args := m.Called(ctx, name, data)
	return args.String(0), args.Error(1)
}

func (m *MockMediaStore) Delete(ctx context.Context, ref string) error {
	args := m.Called(ctx, ref)
	return args.Error(0)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) NotifyJob(ctx context.Context, kind ports.NotificationKind, jobID kernel.UUID) error {
	args := m.Called(ctx, kind, jobID)
	return args.Error(0)
}

// captureScheduler records scheduled tasks instead of running them.
type captureScheduler struct {
	delays []time.Duration
	tasks  []ports.Task
}

func (s *captureScheduler) Schedule(delay time.Duration, task ports.Task) {
	s.delays = append(s.delays, delay)
	s.tasks = append(s.tasks, task)
}

// uowFixture wires a MockUoW with one mock per repository.
type uowFixture struct {
	factory  *MockUoWFactory
	uow      *MockUoW
	users    *MockUserRepository
	hosts    *MockHostRepository
	cleaners *MockCleanerRepository
	props    *MockPropertyRepository
	jobs     *MockJobRepository
	ratings  *MockRatingRepository
}

func newUoWFixture() *uowFixture {
	f := &uowFixture{
		factory:  new(MockUoWFactory),
		uow:      new(MockUoW),
		users:    new(MockUserRepository),
		hosts:    new(MockHostRepository),
		cleaners: new(MockCleanerRepository),
		props:    new(MockPropertyRepository),
		jobs:     new(MockJobRepository),
		ratings:  new(MockRatingRepository),
	}

	f.factory.On("Create").Return(f.uow)
	f.uow.On("UserRepository").Return(f.users).Maybe()
	f.uow.On("HostRepository").Return(f.hosts).Maybe()
	f.uow.On("CleanerRepository").Return(f.cleaners).Maybe()
	f.uow.On("PropertyRepository").Return(f.props).Maybe()
	f.uow.On("JobRepository").Return(f.jobs).Maybe()
	f.uow.On("RatingRepository").Return(f.ratings).Maybe()
	return f
}

// expectTx expects Begin and the deferred Rollback, plus Commit when commit is true.
func (f *uowFixture) expectTx(ctx context.Context, commit bool) {
	f.uow.On("Begin", ctx).Return(nil).Once()
	if commit {
		f.uow.On("Commit", ctx).Return(nil).Once()
	}
	f.uow.On("Rollback", ctx).Return(nil).Once()
}

func (f *uowFixture) assertExpectations(t *testing.T) {
	t.Helper()
	f.factory.AssertExpectations(t)
	f.uow.AssertExpectations(t)
	f.users.AssertExpectations(t)
	f.hosts.AssertExpectations(t)
	f.cleaners.AssertExpectations(t)
	f.props.AssertExpectations(t)
	f.jobs.AssertExpectations(t)
	f.ratings.AssertExpectations(t)
}

func newPrincipal(t *testing.T, role identity.Role) identity.Principal {
	t.Helper()
	p, err := identity.NewPrincipal(kernel.NewUUID(), role)
	require.NoError(t, err)
	return p
}

func newHostFor(t *testing.T, p identity.Principal) *identity.Host {
	t.Helper()
	h, err := identity.NewHost(kernel.NewUUID(), p.UserID(), "Hana", "")
	require.NoError(t, err)
	return h
}

func newCleanerFor(t *testing.T, p identity.Principal) *identity.Cleaner {
	t.Helper()
	c, err := identity.NewCleaner(kernel.NewUUID(), p.UserID(), "Carla", "")
	require.NoError(t, err)
	return c
}

func newOpenJob(t *testing.T, propertyID kernel.UUID, checklist ...string) *job.Job {
	t.Helper()
	w, err := job.NewBookingWindow(testNow.Add(24*time.Hour), testNow.Add(72*time.Hour))
	require.NoError(t, err)
	j, err := job.NewJob(kernel.NewUUID(), propertyID, w, checklist, testNow)
	require.NoError(t, err)
	return j
}

func newClaimedJob(t *testing.T, cleanerID kernel.UUID, checklist ...string) *job.Job {
	t.Helper()
	j := newOpenJob(t, kernel.NewUUID(), checklist...)
	require.NoError(t, j.Claim(cleanerID))
	return j
}

func itemIDsOf(j *job.Job) []kernel.UUID {
	ids := make([]kernel.UUID, 0)
	for _, item := range j.Checklist() {
		ids = append(ids, item.ID())
	}
	return ids
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
