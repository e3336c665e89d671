package queries_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "cleaning/internal/adapters/out/postgres"
	"cleaning/internal/adapters/out/postgres/pgtest"
	"cleaning/internal/core/application/usecases/queries"
	"cleaning/internal/core/domain/model/identity"
	"cleaning/internal/core/domain/model/job"
	"cleaning/internal/core/domain/model/kernel"
	"cleaning/internal/core/domain/model/property"
	"cleaning/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

var seedTime = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

type QueriesIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(postgres_adapter.Truncate(context.Background(), suite.db))
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueriesIntegrationTestSuite) TestListOpenJobs_OrdersByBookingStart() {
	ctx := context.Background()
	hostUser, host := suite.seedHost()
	prop := suite.seedProperty(host, "Loft")

	later := suite.seedJob(prop, seedTime.Add(72*time.Hour), "Beds")
	sooner := suite.seedJob(prop, seedTime.Add(24*time.Hour), "Beds", "Bath")
	claimed := suite.newJob(prop, seedTime.Add(12*time.Hour), "Beds")
	suite.Require().NoError(claimed.Claim(kernel.NewUUID()))
	suite.Require().NoError(suite.factory.Create().JobRepository().Add(ctx, claimed))

	q, err := queries.NewListOpenJobsQuery(hostUser.Principal())
	suite.Require().NoError(err)

	got, err := queries.NewListOpenJobsQueryHandler(suite.db).Handle(ctx, q)
	suite.Require().NoError(err)
	suite.Require().Len(got, 2)

	suite.True(got[0].ID.IsEqual(sooner.ID()))
	suite.True(got[1].ID.IsEqual(later.ID()))
	suite.Equal(job.Open, got[0].Status)
	suite.Nil(got[0].CleanerID)
	suite.Require().Len(got[0].Checklist, 2)
	suite.Equal("Beds", got[0].Checklist[0].Text)
	suite.Equal("Bath", got[0].Checklist[1].Text)
	suite.Len(got[1].Checklist, 1)
}

func (suite *QueriesIntegrationTestSuite) TestListOpenJobs_Empty() {
	q, err := queries.NewListOpenJobsQuery(principal(suite.T(), identity.RoleCleaner))
	suite.Require().NoError(err)

	got, err := queries.NewListOpenJobsQueryHandler(suite.db).Handle(context.Background(), q)
	suite.Require().NoError(err)
	suite.NotNil(got)
	suite.Empty(got)
}

func (suite *QueriesIntegrationTestSuite) TestGetJob() {
	ctx := context.Background()
	_, host := suite.seedHost()
	prop := suite.seedProperty(host, "Loft")

	j := suite.newJob(prop, seedTime.Add(24*time.Hour), "Beds", "Bath")
	cleanerID := kernel.NewUUID()
	suite.Require().NoError(j.Claim(cleanerID))
	tickedAt := seedTime.Add(25 * time.Hour)
	j.TickItems([]kernel.UUID{j.Checklist()[0].ID()}, tickedAt)
	suite.Require().NoError(j.AttachPhoto(j.Checklist()[1].ID(), "/media/x.jpg"))
	suite.Require().NoError(suite.factory.Create().JobRepository().Add(ctx, j))

	q, err := queries.NewGetJobQuery(principal(suite.T(), identity.RoleCleaner), j.ID())
	suite.Require().NoError(err)

	got, err := queries.NewGetJobQueryHandler(suite.db).Handle(ctx, q)
	suite.Require().NoError(err)
	suite.True(got.PropertyID.IsEqual(prop.ID()))
	suite.Equal(job.Claimed, got.Status)
	suite.Require().NotNil(got.CleanerID)
	suite.True(got.CleanerID.IsEqual(cleanerID))
	suite.True(got.BookingStart.Equal(seedTime.Add(24 * time.Hour)))

	suite.Require().Len(got.Checklist, 2)
	suite.True(got.Checklist[0].Checked)
	suite.Require().NotNil(got.Checklist[0].CheckedAt)
	suite.True(got.Checklist[0].CheckedAt.Equal(tickedAt))
	suite.False(got.Checklist[1].Checked)
	suite.Nil(got.Checklist[1].CheckedAt)
	suite.Equal("/media/x.jpg", got.Checklist[1].PhotoRef)
	suite.Empty(got.Checklist[0].PhotoRef)

	missing, err := queries.NewGetJobQuery(principal(suite.T(), identity.RoleAdmin), kernel.NewUUID())
	suite.Require().NoError(err)
	_, err = queries.NewGetJobQueryHandler(suite.db).Handle(ctx, missing)
	suite.Require().ErrorIs(err, queries.ErrJobNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestGetProperty_Authorization() {
	ctx := context.Background()
	ownerUser, owner := suite.seedHost()
	otherUser, _ := suite.seedHost()
	prop := suite.seedProperty(owner, "Loft")
	handler := queries.NewGetPropertyQueryHandler(suite.db)

	get := func(p identity.Principal, id kernel.UUID) (queries.PropertyResponse, error) {
		q, err := queries.NewGetPropertyQuery(p, id)
		suite.Require().NoError(err)
		return handler.Handle(ctx, q)
	}

	got, err := get(ownerUser.Principal(), prop.ID())
	suite.Require().NoError(err)
	suite.Equal(queries.PropertyResponseFromDomain(prop), got)

	_, err = get(principal(suite.T(), identity.RoleAdmin), prop.ID())
	suite.Require().NoError(err)

	_, err = get(otherUser.Principal(), prop.ID())
	suite.Require().ErrorIs(err, queries.ErrForbidden)

	_, err = get(principal(suite.T(), identity.RoleCleaner), prop.ID())
	suite.Require().ErrorIs(err, queries.ErrForbidden)

	_, err = get(ownerUser.Principal(), kernel.NewUUID())
	suite.Require().ErrorIs(err, queries.ErrPropertyNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestListMyProperties() {
	ctx := context.Background()
	ownerUser, owner := suite.seedHost()
	_, other := suite.seedHost()

	first := suite.seedProperty(owner, "First")
	second := suite.seedProperty(owner, "Second")
	third := suite.seedProperty(owner, "Third")
	foreign := suite.seedProperty(other, "Foreign")

	handler := queries.NewListMyPropertiesQueryHandler(suite.db)
	list := func(p identity.Principal, limit int, offset int) []queries.PropertyResponse {
		q, err := queries.NewListMyPropertiesQuery(p, limit, offset)
		suite.Require().NoError(err)
		got, err := handler.Handle(ctx, q)
		suite.Require().NoError(err)
		return got
	}

	mine := list(ownerUser.Principal(), 0, 0)
	suite.Require().Len(mine, 3)
	suite.True(mine[0].ID.IsEqual(third.ID()), "newest first")
	suite.True(mine[1].ID.IsEqual(second.ID()))
	suite.True(mine[2].ID.IsEqual(first.ID()))

	page := list(ownerUser.Principal(), 1, 1)
	suite.Require().Len(page, 1)
	suite.True(page[0].ID.IsEqual(second.ID()))

	all := list(principal(suite.T(), identity.RoleAdmin), 100, 0)
	suite.Require().Len(all, 4)
	suite.True(all[0].ID.IsEqual(foreign.ID()))

	// A host account whose profile is missing sees nothing.
	suite.Empty(list(principal(suite.T(), identity.RoleHost), 10, 0))
}

func (suite *QueriesIntegrationTestSuite) seedHost() (*identity.User, *identity.Host) {
	ctx := context.Background()

	user, err := identity.NewUser(kernel.NewUUID(), kernel.NewUUID().String()+"@example.com", "hash",
		identity.RoleHost, seedTime)
	suite.Require().NoError(err)
	host, err := identity.NewHost(kernel.NewUUID(), user.ID(), "Hana", "")
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.UserRepository().Add(ctx, user))
	suite.Require().NoError(uow.HostRepository().Add(ctx, host))
	suite.Require().NoError(uow.Commit(ctx))

	return user, host
}

// seedProperty commits each property separately so created_at strictly increases.
func (suite *QueriesIntegrationTestSuite) seedProperty(host *identity.Host, name string) *property.Property {
	p, err := property.NewProperty(kernel.NewUUID(), host.ID(), name, "1 Main St")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().PropertyRepository().Add(context.Background(), p))
	time.Sleep(2 * time.Millisecond)
	return p
}

func (suite *QueriesIntegrationTestSuite) seedJob(p *property.Property, start time.Time, checklist ...string) *job.Job {
	j := suite.newJob(p, start, checklist...)
	suite.Require().NoError(suite.factory.Create().JobRepository().Add(context.Background(), j))
	return j
}

func (suite *QueriesIntegrationTestSuite) newJob(p *property.Property, start time.Time, checklist ...string) *job.Job {
	window, err := job.NewBookingWindow(start, start.Add(4*time.Hour))
	suite.Require().NoError(err)
	j, err := job.NewJob(kernel.NewUUID(), p.ID(), window, checklist, seedTime)
	suite.Require().NoError(err)
	return j
}

func TestQueriesIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(QueriesIntegrationTestSuite))
}
