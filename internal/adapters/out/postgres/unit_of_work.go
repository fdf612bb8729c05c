// Package postgres provides the GORM-based Unit of Work and schema migration
// for the warehouse service.
//
// Every service operation creates its own unit of work, begins a transaction,
// runs repository calls bound to that transaction and commits. A deferred
// Rollback after a successful Commit is a harmless no-op that returns
// gorm.ErrInvalidTransaction.
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx) //nolint:errcheck
//
//	country, found, err := uow.CountryRepository().FindByName(ctx, "Bulgaria")
//	if err != nil {
//	    return err
//	}
//	...
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance holds at most one active transaction and must not be
// shared between goroutines.
package postgres

import (
	"context"
	"log/slog"

	"wms/internal/adapters/out/postgres/cityrepo"
	"wms/internal/adapters/out/postgres/countryrepo"
	"wms/internal/adapters/out/postgres/userrepo"
	"wms/internal/adapters/out/postgres/warehouserepo"
	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db, logger)
func NewGormUnitOfWorkFactory(db *gorm.DB, logger *slog.Logger) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, logger: logger.With("component", "unit_of_work")}
}

// Create produces a fresh UnitOfWork with no active transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		logger:            f.logger,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and records the
// aggregates its repositories wrote.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	logger            *slog.Logger
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Calling Begin again while a transaction is active is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}
	uow.trackedAggregates = uow.trackedAggregates[:0]

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the current transaction and logs the aggregates it wrote.
// Returns gorm.ErrInvalidTransaction if none is active.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return err
	}

	if len(uow.trackedAggregates) > 0 {
		ids := make([]string, 0, len(uow.trackedAggregates))
		for _, id := range uow.TrackedIDs() {
			ids = append(ids, id.String())
		}
		uow.logger.DebugContext(ctx, "Transaction committed", "written", ids)
	}
	return nil
}

// Rollback discards the current transaction and forgets tracked aggregates.
// Returns gorm.ErrInvalidTransaction if none is active.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// UserRepository returns a user repository bound to the active transaction,
// or to the plain connection when none is active.
func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.conn(), uow)
}

// CountryRepository returns a country repository bound to the active transaction.
func (uow *GormUnitOfWork) CountryRepository() ports.CountryRepository {
	return countryrepo.NewGormCountryRepository(uow.conn(), uow)
}

// CityRepository returns a city repository bound to the active transaction.
func (uow *GormUnitOfWork) CityRepository() ports.CityRepository {
	return cityrepo.NewGormCityRepository(uow.conn(), uow)
}

// WarehouseRepository returns a warehouse repository bound to the active transaction.
func (uow *GormUnitOfWork) WarehouseRepository() ports.WarehouseRepository {
	return warehouserepo.NewGormWarehouseRepository(uow.conn(), uow)
}

// TrackAggregate registers an aggregate written within this unit of work.
// Repositories call it after every successful write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedIDs lists the identities written by the current or last committed
// transaction, in write order.
func (uow *GormUnitOfWork) TrackedIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(uow.trackedAggregates))
	for _, t := range uow.trackedAggregates {
		ids = append(ids, t.ID)
	}
	return ids
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
