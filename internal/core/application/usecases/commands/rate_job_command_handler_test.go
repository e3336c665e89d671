package commands_test

import (
	"testing"
	"time"

	"cleaning/internal/core/application/usecases/commands"
	"cleaning/internal/core/domain/model/identity"
	"cleaning/internal/core/domain/model/job"
	"cleaning/internal/core/domain/model/kernel"
	"cleaning/internal/core/domain/model/property"
	"cleaning/internal/core/domain/model/rating"
	"cleaning/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type rateSetup struct {
	f         *uowFixture
	principal identity.Principal
	host      *identity.Host
	prop      *property.Property
	cleaner   *identity.Cleaner
	job       *job.Job
}

func newRateSetup(t *testing.T, complete bool) rateSetup {
	t.Helper()

	p := newPrincipal(t, identity.RoleHost)
	host := newHostFor(t, p)
	prop, err := property.NewProperty(kernel.NewUUID(), host.ID(), "Downtown Flat", "1 Main St")
	require.NoError(t, err)
	cleaner := newCleanerFor(t, newPrincipal(t, identity.RoleCleaner))

	j := newOpenJob(t, prop.ID())
	require.NoError(t, j.Claim(cleaner.ID()))
	if complete {
		require.NoError(t, j.Complete(testNow))
	}

	f := newUoWFixture()
	f.hosts.On("GetByUserID", mock.Anything, p.UserID()).Return(host, nil).Maybe()
	return rateSetup{f: f, principal: p, host: host, prop: prop, cleaner: cleaner, job: j}
}

func TestRateJobCommandHandler_Handle(t *testing.T) {
	clock := kernel.FixedClock{At: testNow.Add(time.Hour)}

	t.Run("owner rates and aggregate is updated", func(t *testing.T) {
		ctx := t.Context()
		s := newRateSetup(t, true)
		cmd, _ := commands.NewRateJobCommand(s.principal, s.job.ID(), 5, "great")

		s.f.expectTx(ctx, true)
		s.f.jobs.On("Get", ctx, s.job.ID()).Return(s.job, nil).Once()
		s.f.props.On("Get", ctx, s.prop.ID()).Return(s.prop, nil).Once()
		s.f.ratings.On("ExistsForJob", ctx, s.job.ID()).Return(false, nil).Once()
		s.f.cleaners.On("GetForUpdate", ctx, s.cleaner.ID()).Return(s.cleaner, nil).Once()
		s.f.ratings.On("Add", ctx, mock.AnythingOfType("*rating.Rating")).Return(nil).Once()
		s.f.cleaners.On("Update", ctx, s.cleaner).Return(nil).Once()

		r, err := commands.NewRateJobCommandHandler(s.f.factory, clock).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, 5, r.Stars())
		assert.True(t, r.HostID().IsEqual(s.host.ID()))
		assert.True(t, r.CleanerID().IsEqual(s.cleaner.ID()))
		assert.InDelta(t, 5.0, s.cleaner.AvgRating(), 1e-9)
		assert.Equal(t, 1, s.cleaner.RatingsCount())
		s.f.assertExpectations(t)
	})

	t.Run("admin rates on behalf of the owning host", func(t *testing.T) {
		ctx := t.Context()
		s := newRateSetup(t, true)
		cmd, _ := commands.NewRateJobCommand(newPrincipal(t, identity.RoleAdmin), s.job.ID(), 3, "")

		s.f.expectTx(ctx, true)
		s.f.jobs.On("Get", ctx, s.job.ID()).Return(s.job, nil).Once()
		s.f.props.On("Get", ctx, s.prop.ID()).Return(s.prop, nil).Once()
		s.f.ratings.On("ExistsForJob", ctx, s.job.ID()).Return(false, nil).Once()
		s.f.cleaners.On("GetForUpdate", ctx, s.cleaner.ID()).Return(s.cleaner, nil).Once()
		s.f.ratings.On("Add", ctx, mock.MatchedBy(func(r *rating.Rating) bool {
			return r.HostID().IsEqual(s.host.ID())
		})).Return(nil).Once()
		s.f.cleaners.On("Update", ctx, s.cleaner).Return(nil).Once()

		_, err := commands.NewRateJobCommandHandler(s.f.factory, clock).Handle(ctx, cmd)

		require.NoError(t, err)
		s.f.assertExpectations(t)
	})

	t.Run("other host is forbidden", func(t *testing.T) {
		ctx := t.Context()
		s := newRateSetup(t, true)
		other := newPrincipal(t, identity.RoleHost)
		cmd, _ := commands.NewRateJobCommand(other, s.job.ID(), 4, "")

		s.f.expectTx(ctx, false)
		s.f.jobs.On("Get", ctx, s.job.ID()).Return(s.job, nil).Once()
		s.f.props.On("Get", ctx, s.prop.ID()).Return(s.prop, nil).Once()
		s.f.hosts.On("GetByUserID", ctx, other.UserID()).Return(newHostFor(t, other), nil).Once()

		_, err := commands.NewRateJobCommandHandler(s.f.factory, clock).Handle(ctx, cmd)

		require.ErrorIs(t, err, commands.ErrForbidden)
	})

	t.Run("cleaner is forbidden", func(t *testing.T) {
		factory := new(MockUoWFactory)
		cmd, _ := commands.NewRateJobCommand(newPrincipal(t, identity.RoleCleaner), kernel.NewUUID(), 4, "")

		_, err := commands.NewRateJobCommandHandler(factory, clock).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, commands.ErrForbidden)
		factory.AssertNotCalled(t, "Create")
	})

	t.Run("job not completed", func(t *testing.T) {
		ctx := t.Context()
		s := newRateSetup(t, false)
		cmd, _ := commands.NewRateJobCommand(s.principal, s.job.ID(), 4, "")

		s.f.expectTx(ctx, false)
		s.f.jobs.On("Get", ctx, s.job.ID()).Return(s.job, nil).Once()
		s.f.props.On("Get", ctx, s.prop.ID()).Return(s.prop, nil).Once()

		_, err := commands.NewRateJobCommandHandler(s.f.factory, clock).Handle(ctx, cmd)

		require.ErrorIs(t, err, commands.ErrNotCompleted)
	})

	t.Run("second rating is rejected and aggregate untouched", func(t *testing.T) {
		ctx := t.Context()
		s := newRateSetup(t, true)
		cmd, _ := commands.NewRateJobCommand(s.principal, s.job.ID(), 4, "")

		s.f.expectTx(ctx, false)
		s.f.jobs.On("Get", ctx, s.job.ID()).Return(s.job, nil).Once()
		s.f.props.On("Get", ctx, s.prop.ID()).Return(s.prop, nil).Once()
		s.f.ratings.On("ExistsForJob", ctx, s.job.ID()).Return(true, nil).Once()

		_, err := commands.NewRateJobCommandHandler(s.f.factory, clock).Handle(ctx, cmd)

		require.ErrorIs(t, err, commands.ErrAlreadyRated)
		assert.Equal(t, 0, s.cleaner.RatingsCount())
		s.f.cleaners.AssertNotCalled(t, "GetForUpdate", mock.Anything, mock.Anything)
	})

	t.Run("unique key violation maps to already rated", func(t *testing.T) {
		ctx := t.Context()
		s := newRateSetup(t, true)
		cmd, _ := commands.NewRateJobCommand(s.principal, s.job.ID(), 4, "")

		s.f.expectTx(ctx, false)
		s.f.jobs.On("Get", ctx, s.job.ID()).Return(s.job, nil).Once()
		s.f.props.On("Get", ctx, s.prop.ID()).Return(s.prop, nil).Once()
		s.f.ratings.On("ExistsForJob", ctx, s.job.ID()).Return(false, nil).Once()
		s.f.cleaners.On("GetForUpdate", ctx, s.cleaner.ID()).Return(s.cleaner, nil).Once()
		s.f.ratings.On("Add", ctx, mock.AnythingOfType("*rating.Rating")).
			Return(errs.NewObjectExistsError("rating", s.job.ID())).Once()

		_, err := commands.NewRateJobCommandHandler(s.f.factory, clock).Handle(ctx, cmd)

		require.ErrorIs(t, err, commands.ErrAlreadyRated)
		s.f.cleaners.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
