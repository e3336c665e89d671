package jobrepo_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "cleaning/internal/adapters/out/postgres"
	"cleaning/internal/adapters/out/postgres/jobrepo"
	"cleaning/internal/adapters/out/postgres/pgtest"
	"cleaning/internal/core/domain/model/job"
	"cleaning/internal/core/domain/model/kernel"
	"cleaning/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

var bookingStart = time.Date(2026, 5, 3, 11, 0, 0, 0, time.UTC)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type JobRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	tracker    *MockAggregateTracker
	repository *jobrepo.GormJobRepository
}

func (suite *JobRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db
}

func (suite *JobRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(postgres_adapter.Truncate(context.Background(), suite.db))
	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = jobrepo.NewGormJobRepository(suite.db, suite.tracker)
}

func (suite *JobRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *JobRepositoryIntegrationTestSuite) TestAddAndGet_KeepsChecklistOrder() {
	ctx := context.Background()
	texts := []string{"Strip beds", "Clean bathroom", "Empty bins", "Restock coffee"}
	j := suite.newJob(bookingStart, texts...)

	suite.Require().NoError(suite.repository.Add(ctx, j))

	got, err := suite.repository.Get(ctx, j.ID())
	suite.Require().NoError(err)
	suite.True(got.IsEqual(j))
	suite.Equal(job.Open, got.Status())
	suite.Nil(got.Cleaner())
	suite.Nil(got.CompletedAt())
	suite.True(got.Window().Start().Equal(bookingStart))

	suite.Require().Len(got.Checklist(), len(texts))
	for i, item := range got.Checklist() {
		suite.Equal(texts[i], item.Text())
		suite.True(item.ID().IsEqual(j.Checklist()[i].ID()))
		suite.False(item.IsChecked())
	}

	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", j.ID(), j)
}

func (suite *JobRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *JobRepositoryIntegrationTestSuite) TestUpdate_ClaimWritesCleaner() {
	ctx := context.Background()
	j := suite.newJob(bookingStart, "Beds")
	suite.Require().NoError(suite.repository.Add(ctx, j))

	cleanerID := kernel.NewUUID()
	suite.Require().NoError(j.Claim(cleanerID))
	suite.Require().NoError(suite.repository.Update(ctx, j, job.Open))

	got, err := suite.repository.Get(ctx, j.ID())
	suite.Require().NoError(err)
	suite.Equal(job.Claimed, got.Status())
	suite.Require().NotNil(got.Cleaner())
	suite.True(got.Cleaner().IsEqual(cleanerID))
}

func (suite *JobRepositoryIntegrationTestSuite) TestUpdate_StaleStatusIsRejected() {
	ctx := context.Background()
	j := suite.newJob(bookingStart, "Beds")
	suite.Require().NoError(suite.repository.Add(ctx, j))

	first, err := suite.repository.Get(ctx, j.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(first.Claim(kernel.NewUUID()))
	suite.Require().NoError(suite.repository.Update(ctx, first, job.Open))

	second, err := suite.repository.Get(ctx, j.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(second.Start())

	// Written as if the job were still open.
	err = suite.repository.Update(ctx, second, job.Open)
	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)

	got, err := suite.repository.Get(ctx, j.ID())
	suite.Require().NoError(err)
	suite.Equal(job.Claimed, got.Status())
}

func (suite *JobRepositoryIntegrationTestSuite) TestUpdate_MissingJob() {
	j := suite.newJob(bookingStart, "Beds")
	err := suite.repository.Update(context.Background(), j, job.Open)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *JobRepositoryIntegrationTestSuite) TestUpdate_PersistsChecklistProgressAndCompletion() {
	ctx := context.Background()
	j := suite.newJob(bookingStart, "Beds", "Bath")
	suite.Require().NoError(suite.repository.Add(ctx, j))
	suite.Require().NoError(j.Claim(kernel.NewUUID()))
	suite.Require().NoError(suite.repository.Update(ctx, j, job.Open))

	items := j.Checklist()
	tickedAt := bookingStart.Add(time.Hour)
	j.TickItems([]kernel.UUID{items[0].ID()}, tickedAt)
	suite.Require().NoError(j.AttachPhoto(items[1].ID(), "/media/bath.jpg"))
	suite.Require().NoError(suite.repository.Update(ctx, j, job.Claimed))

	got, err := suite.repository.Get(ctx, j.ID())
	suite.Require().NoError(err)
	suite.True(got.Checklist()[0].IsChecked())
	suite.Require().NotNil(got.Checklist()[0].CheckedAt())
	suite.True(got.Checklist()[0].CheckedAt().Equal(tickedAt))
	suite.False(got.Checklist()[1].IsChecked())
	suite.Equal("/media/bath.jpg", got.Checklist()[1].PhotoRef())

	got.TickItems([]kernel.UUID{items[1].ID()}, tickedAt.Add(time.Minute))
	completedAt := tickedAt.Add(2 * time.Minute)
	suite.Require().NoError(got.Complete(completedAt))
	suite.Require().NoError(suite.repository.Update(ctx, got, job.Claimed))

	done, err := suite.repository.Get(ctx, j.ID())
	suite.Require().NoError(err)
	suite.Equal(job.Completed, done.Status())
	suite.Require().NotNil(done.CompletedAt())
	suite.True(done.CompletedAt().Equal(completedAt))
	suite.True(done.IsChecklistComplete())
}

func (suite *JobRepositoryIntegrationTestSuite) TestGetForUpdate_NotFound() {
	_, err := suite.repository.GetForUpdate(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *JobRepositoryIntegrationTestSuite) TestGetForUpdate_TickWaitsForPhotoAndKeepsIt() {
	ctx := context.Background()
	j := suite.newJob(bookingStart, "Beds", "Bath")
	suite.Require().NoError(suite.repository.Add(ctx, j))
	suite.Require().NoError(j.Claim(kernel.NewUUID()))
	suite.Require().NoError(suite.repository.Update(ctx, j, job.Open))
	itemID := j.Checklist()[0].ID()
	tickedAt := bookingStart.Add(time.Hour)

	photoTx := suite.db.Begin()
	suite.Require().NoError(photoTx.Error)
	defer photoTx.Rollback()
	photoRepo := jobrepo.NewGormJobRepository(photoTx, suite.tracker)

	withPhoto, err := photoRepo.GetForUpdate(ctx, j.ID())
	suite.Require().NoError(err)

	tickDone := make(chan error, 1)
	go func() {
		tickDone <- suite.db.Transaction(func(tx *gorm.DB) error {
			repo := jobrepo.NewGormJobRepository(tx, suite.tracker)
			ticked, err := repo.GetForUpdate(ctx, j.ID())
			if err != nil {
				return err
			}
			ticked.TickItems([]kernel.UUID{itemID}, tickedAt)
			return repo.Update(ctx, ticked, job.Claimed)
		})
	}()

	select {
	case err = <-tickDone:
		suite.Require().FailNow("tick committed while the job row was locked", "err: %v", err)
	case <-time.After(300 * time.Millisecond):
	}

	suite.Require().NoError(withPhoto.AttachPhoto(itemID, "/media/beds.jpg"))
	suite.Require().NoError(photoRepo.Update(ctx, withPhoto, job.Claimed))
	suite.Require().NoError(photoTx.Commit().Error)

	select {
	case err = <-tickDone:
		suite.Require().NoError(err)
	case <-time.After(10 * time.Second):
		suite.Require().FailNow("tick never acquired the job row")
	}

	got, err := suite.repository.Get(ctx, j.ID())
	suite.Require().NoError(err)
	item := got.Checklist()[0]
	suite.True(item.IsChecked())
	suite.Require().NotNil(item.CheckedAt())
	suite.True(item.CheckedAt().Equal(tickedAt))
	suite.Equal("/media/beds.jpg", item.PhotoRef())
	suite.False(got.Checklist()[1].IsChecked())
}

func (suite *JobRepositoryIntegrationTestSuite) TestGetAllOpenEndedBefore() {
	ctx := context.Background()
	now := bookingStart.Add(10 * 24 * time.Hour)

	overdueLate := suite.newJob(now.Add(-30*time.Hour), "Beds")
	overdueEarly := suite.newJob(now.Add(-72*time.Hour), "Beds")
	upcoming := suite.newJob(now.Add(time.Hour), "Beds")
	claimed := suite.newJob(now.Add(-72*time.Hour), "Beds")
	suite.Require().NoError(claimed.Claim(kernel.NewUUID()))

	for _, j := range []*job.Job{overdueLate, overdueEarly, upcoming, claimed} {
		suite.Require().NoError(suite.repository.Add(ctx, j))
	}

	got, err := suite.repository.GetAllOpenEndedBefore(ctx, now)
	suite.Require().NoError(err)
	suite.Require().Len(got, 2)
	suite.True(got[0].ID().IsEqual(overdueEarly.ID()))
	suite.True(got[1].ID().IsEqual(overdueLate.ID()))
	suite.Len(got[0].Checklist(), 1)
}

func (suite *JobRepositoryIntegrationTestSuite) newJob(start time.Time, checklist ...string) *job.Job {
	window, err := job.NewBookingWindow(start, start.Add(4*time.Hour))
	suite.Require().NoError(err)

	j, err := job.NewJob(kernel.NewUUID(), kernel.NewUUID(), window, checklist, start.Add(-48*time.Hour))
	suite.Require().NoError(err)
	return j
}

func TestJobRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(JobRepositoryIntegrationTestSuite))
}
