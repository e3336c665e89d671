package cmd

import (
	"context"
	"log/slog"

	httpin "cleaning/internal/adapters/in/http"
	"cleaning/internal/adapters/out/bookings"
	"cleaning/internal/adapters/out/media"
	"cleaning/internal/adapters/out/notifier"
	"cleaning/internal/adapters/out/passwords"
	"cleaning/internal/adapters/out/postgres"
	"cleaning/internal/core/application/usecases/commands"
	"cleaning/internal/core/application/usecases/queries"
	"cleaning/internal/core/domain/model/kernel"
	"cleaning/internal/jobs"
	"cleaning/internal/scheduler"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
	clock      kernel.Clock

	scheduler *scheduler.ReminderScheduler
	notifier  *notifier.LogNotifier
	media     *media.FileSystemStore
	bookings  *bookings.FixedBookingSource
	hasher    passwords.BcryptHasher
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	store, err := media.NewOsStore(config.MediaDir)
	if err != nil {
		return CompositionRoot{}, err
	}

	clock := kernel.SystemClock{}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		clock:      clock,
		scheduler:  scheduler.NewReminderScheduler(logger),
		notifier:   notifier.NewLogNotifier(logger),
		media:      store,
		bookings:   bookings.NewFixedBookingSource(clock),
		hasher:     passwords.NewBcryptHasher(config.BcryptCost),
	}, nil
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(c.uow(), c.hasher, c.clock)
}

func (c *CompositionRoot) CreateAuthenticateUserCommandHandler() commands.AuthenticateUserCommandHandler {
	return commands.NewAuthenticateUserCommandHandler(c.uow(), c.hasher)
}

func (c *CompositionRoot) CreateCreatePropertyCommandHandler() commands.CreatePropertyCommandHandler {
	return commands.NewCreatePropertyCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateSendJobReminderCommandHandler() commands.SendJobReminderCommandHandler {
	return commands.NewSendJobReminderCommandHandler(c.uow(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateCreateJobCommandHandler() commands.CreateJobCommandHandler {
	return commands.NewCreateJobCommandHandler(
		c.uow(),
		c.scheduler,
		c.CreateSendJobReminderCommandHandler(),
		c.clock,
		c.config.ReminderLead,
	)
}

func (c *CompositionRoot) CreateClaimJobCommandHandler() commands.ClaimJobCommandHandler {
	return commands.NewClaimJobCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateStartJobCommandHandler() commands.StartJobCommandHandler {
	return commands.NewStartJobCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateTickChecklistCommandHandler() commands.TickChecklistCommandHandler {
	return commands.NewTickChecklistCommandHandler(c.uow(), c.clock)
}

func (c *CompositionRoot) CreateAttachPhotoCommandHandler() commands.AttachPhotoCommandHandler {
	return commands.NewAttachPhotoCommandHandler(c.uow(), c.media, c.clock)
}

func (c *CompositionRoot) CreateCompleteJobCommandHandler() commands.CompleteJobCommandHandler {
	return commands.NewCompleteJobCommandHandler(c.uow(), c.clock)
}

func (c *CompositionRoot) CreateRateJobCommandHandler() commands.RateJobCommandHandler {
	return commands.NewRateJobCommandHandler(c.uow(), c.clock)
}

func (c *CompositionRoot) CreateNotifyOverdueJobsCommandHandler() commands.NotifyOverdueJobsCommandHandler {
	return commands.NewNotifyOverdueJobsCommandHandler(c.uow(), c.notifier, c.clock, c.logger)
}

func (c *CompositionRoot) CreateGetPropertyQueryHandler() queries.GetPropertyQueryHandler {
	return queries.NewGetPropertyQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListMyPropertiesQueryHandler() queries.ListMyPropertiesQueryHandler {
	return queries.NewListMyPropertiesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUpcomingBookingsQueryHandler() queries.GetUpcomingBookingsQueryHandler {
	return queries.NewGetUpcomingBookingsQueryHandler(c.bookings)
}

func (c *CompositionRoot) CreateListOpenJobsQueryHandler() queries.ListOpenJobsQueryHandler {
	return queries.NewListOpenJobsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetJobQueryHandler() queries.GetJobQueryHandler {
	return queries.NewGetJobQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateNotifyOverdueJobsCommandHandler(),
		c.scheduler,
		c.config.OverdueSweepSpec,
		c.logger,
	)
}

func (c *CompositionRoot) CreateHTTPServer(ctx context.Context) (*httpin.Server, error) {
	contract, err := httpin.LoadContract(ctx)
	if err != nil {
		return nil, err
	}

	tokens, err := httpin.NewTokenIssuer(c.config.JWTSecret, c.config.JWTTTL, c.clock)
	if err != nil {
		return nil, err
	}

	handlers := httpin.Handlers{
		RegisterUser:     c.CreateRegisterUserCommandHandler(),
		AuthenticateUser: c.CreateAuthenticateUserCommandHandler(),
		CreateProperty:   c.CreateCreatePropertyCommandHandler(),
		CreateJob:        c.CreateCreateJobCommandHandler(),
		ClaimJob:         c.CreateClaimJobCommandHandler(),
		StartJob:         c.CreateStartJobCommandHandler(),
		TickChecklist:    c.CreateTickChecklistCommandHandler(),
		AttachPhoto:      c.CreateAttachPhotoCommandHandler(),
		CompleteJob:      c.CreateCompleteJobCommandHandler(),
		RateJob:          c.CreateRateJobCommandHandler(),

		GetProperty:         c.CreateGetPropertyQueryHandler(),
		ListMyProperties:    c.CreateListMyPropertiesQueryHandler(),
		GetUpcomingBookings: c.CreateGetUpcomingBookingsQueryHandler(),
		ListOpenJobs:        c.CreateListOpenJobsQueryHandler(),
		GetJob:              c.CreateGetJobQueryHandler(),
	}

	return httpin.NewServer(handlers, contract, tokens, c.media.Handler(), c.logger)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
