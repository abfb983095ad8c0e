package cmd

import (
	"log/slog"

	httpadapter "planner/internal/adapters/in/http"
	"planner/internal/adapters/out/memory"
	"planner/internal/adapters/out/postgres"
	"planner/internal/adapters/out/venuefile"
	"planner/internal/core/application/usecases/commands"
	"planner/internal/core/application/usecases/queries"
	"planner/internal/core/domain/services"
	"planner/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs     Config
	gormDB      *gorm.DB
	uowFactory  postgres.GormUnitOfWorkFactory
	boards      *memory.BoardRepository
	venueReader *venuefile.Reader
	logger      *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		configs:     configs,
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB, logger),
		boards:      memory.NewBoardRepository(),
		venueReader: venuefile.NewReader(configs.VenuesFile),
		logger:      logger,
	}
}

func (c *CompositionRoot) CreateImportVenuesCommandHandler() commands.ImportVenuesCommandHandler {
	var f commands.VenueUoWFactory = FuncVenueUoWFactory(func() commands.VenueUoW {
		return c.uowFactory.Create()
	})
	return commands.NewImportVenuesCommandHandler(f, c.venueReader, c.boards)
}

func (c *CompositionRoot) CreateCreateEventCommandHandler() commands.CreateEventCommandHandler {
	var f commands.EventUoWFactory = FuncEventUoWFactory(func() commands.EventUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateEventCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignEventCommandHandler() commands.AssignEventCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignEventCommandHandler(f, c.boards)
}

func (c *CompositionRoot) CreateReleaseEventCommandHandler() commands.ReleaseEventCommandHandler {
	return commands.NewReleaseEventCommandHandler(c.boards)
}

func (c *CompositionRoot) CreateAutoAllocateCommandHandler() commands.AutoAllocateCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAutoAllocateCommandHandler(f, c.boards, services.NewAllocator())
}

func (c *CompositionRoot) CreateGetAllVenuesQueryHandler() queries.GetAllVenuesQueryHandler {
	return queries.NewGetAllVenuesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllEventsQueryHandler() queries.GetAllEventsQueryHandler {
	return queries.NewGetAllEventsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBoardQueryHandler() queries.GetBoardQueryHandler {
	return queries.NewGetBoardQueryHandler(c.boards)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateImportVenuesCommandHandler(), c.configs.VenuesReloadSchedule, c.logger)
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		ImportVenues: c.CreateImportVenuesCommandHandler(),
		CreateEvent:  c.CreateCreateEventCommandHandler(),
		AssignEvent:  c.CreateAssignEventCommandHandler(),
		ReleaseEvent: c.CreateReleaseEventCommandHandler(),
		AutoAllocate: c.CreateAutoAllocateCommandHandler(),
		GetAllVenues: c.CreateGetAllVenuesQueryHandler(),
		GetAllEvents: c.CreateGetAllEventsQueryHandler(),
		GetBoard:     c.CreateGetBoardQueryHandler(),
	}, c.logger)
}

type FuncVenueUoWFactory func() commands.VenueUoW

func (f FuncVenueUoWFactory) Create() commands.VenueUoW {
	return f()
}

type FuncEventUoWFactory func() commands.EventUoW

func (f FuncEventUoWFactory) Create() commands.EventUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
