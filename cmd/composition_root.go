package cmd

import (
	"log/slog"

	httpadapter "wms/internal/adapters/in/http"
	"wms/internal/adapters/out/crypto"
	"wms/internal/adapters/out/postgres"
	"wms/internal/core/application/services"
	"wms/internal/core/application/usecases/queries"
	"wms/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateUserService() *services.UserService {
	var f services.UserUoWFactory = FuncUserUoWFactory(func() services.UserUoW {
		return c.uowFactory.Create()
	})
	return services.NewUserService(f, crypto.NewArgon2Hasher(crypto.DefaultParams), c.config.Admins, c.logger)
}

func (c *CompositionRoot) CreateWarehouseService() *services.WarehouseService {
	var f services.UoWFactory = FuncUoWFactory(func() services.UoW {
		return c.uowFactory.Create()
	})
	return services.NewWarehouseService(f, c.logger)
}

func (c *CompositionRoot) CreateListCountriesQueryHandler() queries.ListCountriesQueryHandler {
	return queries.NewListCountriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListAvailableWarehousesQueryHandler() queries.ListAvailableWarehousesQueryHandler {
	return queries.NewListAvailableWarehousesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer(
	userService *services.UserService,
	warehouseService *services.WarehouseService,
) *httpadapter.Server {
	return httpadapter.NewServer(
		userService,
		warehouseService,
		c.CreateListCountriesQueryHandler(),
		c.CreateListAvailableWarehousesQueryHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager(warehouseService *services.WarehouseService) *jobs.JobManager {
	return jobs.NewJobManager(warehouseService, jobs.PruneSettings{
		Schedule:    c.config.PruneSchedule,
		GracePeriod: c.config.PruneGracePeriod,
	}, c.logger)
}

type FuncUserUoWFactory func() services.UserUoW

func (f FuncUserUoWFactory) Create() services.UserUoW {
	return f()
}

type FuncUoWFactory func() services.UoW

func (f FuncUoWFactory) Create() services.UoW {
	return f()
}
