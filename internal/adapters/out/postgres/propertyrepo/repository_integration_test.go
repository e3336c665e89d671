package propertyrepo_test

import (
	"context"
	"testing"

	postgres_adapter "cleaning/internal/adapters/out/postgres"
	"cleaning/internal/adapters/out/postgres/pgtest"
	"cleaning/internal/adapters/out/postgres/propertyrepo"
	"cleaning/internal/core/domain/model/kernel"
	"cleaning/internal/core/domain/model/property"
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

type PropertyRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	tracker    *MockAggregateTracker
	repository *propertyrepo.GormPropertyRepository
}

func (suite *PropertyRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db
}

func (suite *PropertyRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(postgres_adapter.Truncate(context.Background(), suite.db))
	suite.tracker = new(MockAggregateTracker)
	suite.repository = propertyrepo.NewGormPropertyRepository(suite.db, suite.tracker)
}

func (suite *PropertyRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PropertyRepositoryIntegrationTestSuite) TestAddAndGet() {
	ctx := context.Background()
	hostID := kernel.NewUUID()
	p, err := property.NewProperty(kernel.NewUUID(), hostID, "Sea view", "2 Beach Rd")
	suite.Require().NoError(err)
	suite.tracker.On("TrackAggregate", p.ID(), p).Once()

	suite.Require().NoError(suite.repository.Add(ctx, p))

	got, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.True(got.IsOwnedBy(hostID))
	suite.Equal("Sea view", got.Name())
	suite.Equal("2 Beach Rd", got.Address())

	var createdAt int64
	suite.Require().NoError(suite.db.Raw(
		`SELECT COUNT(*) FROM properties WHERE id = ? AND created_at IS NOT NULL`, p.ID().Bytes(),
	).Scan(&createdAt).Error)
	suite.Equal(int64(1), createdAt)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PropertyRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PropertyRepositoryIntegrationTestSuite) TestAdd_Unconstructed() {
	err := suite.repository.Add(context.Background(), &property.Property{})
	suite.Require().ErrorIs(err, property.ErrPropertyIsNotConstructed)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything, mock.Anything)
}

func TestPropertyRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(PropertyRepositoryIntegrationTestSuite))
}
