package ratingrepo_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "cleaning/internal/adapters/out/postgres"
	"cleaning/internal/adapters/out/postgres/pgtest"
	"cleaning/internal/adapters/out/postgres/ratingrepo"
	"cleaning/internal/core/domain/model/kernel"
	"cleaning/internal/core/domain/model/rating"
	"cleaning/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type RatingRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	tracker    *MockAggregateTracker
	repository *ratingrepo.GormRatingRepository
}

func (suite *RatingRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db
}

func (suite *RatingRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(postgres_adapter.Truncate(context.Background(), suite.db))
	suite.tracker = new(MockAggregateTracker)
	suite.repository = ratingrepo.NewGormRatingRepository(suite.db, suite.tracker)
}

func (suite *RatingRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RatingRepositoryIntegrationTestSuite) TestAdd_OncePerJob() {
	ctx := context.Background()
	jobID := kernel.NewUUID()
	first := suite.newRating(jobID, 5, "spotless")
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()

	exists, err := suite.repository.ExistsForJob(ctx, jobID)
	suite.Require().NoError(err)
	suite.False(exists)

	suite.Require().NoError(suite.repository.Add(ctx, first))

	exists, err = suite.repository.ExistsForJob(ctx, jobID)
	suite.Require().NoError(err)
	suite.True(exists)

	err = suite.repository.Add(ctx, suite.newRating(jobID, 1, "changed my mind"))
	suite.Require().ErrorIs(err, errs.ErrObjectExists)

	got, err := suite.repository.GetByJobID(ctx, jobID)
	suite.Require().NoError(err)
	suite.True(got.ID().IsEqual(first.ID()))
	suite.Equal(5, got.Stars())
	suite.Equal("spotless", got.Feedback())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *RatingRepositoryIntegrationTestSuite) TestGetByJobID_NotFound() {
	_, err := suite.repository.GetByJobID(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *RatingRepositoryIntegrationTestSuite) newRating(jobID kernel.UUID, stars int, feedback string) *rating.Rating {
	r, err := rating.NewRating(kernel.NewUUID(), jobID, kernel.NewUUID(), kernel.NewUUID(), stars, feedback,
		time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)
	return r
}

func TestRatingRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(RatingRepositoryIntegrationTestSuite))
}
