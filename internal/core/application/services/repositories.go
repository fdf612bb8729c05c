// Package services holds the application services behind the HTTP
// controllers: user registration and administrator seeding, and warehouse
// management with country/city get-or-create.
//
// Every persistence step runs in its own unit of work. Failures are returned
// as RegistrationError, UserServiceError or WarehouseServiceError; each
// carries a display message and unwraps to both its sentinel and the
// underlying cause.
package services

import (
	"context"

	"wms/internal/core/ports"
)

// Unit of Work views narrowed to what each service touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// LocationRepoFactory provides access to country and city repositories within a transaction.
	LocationRepoFactory interface {
		CountryRepository() ports.CountryRepository
		CityRepository() ports.CityRepository
	}

	// WarehouseRepoFactory provides access to the warehouse repository within a transaction.
	WarehouseRepoFactory interface {
		WarehouseRepository() ports.WarehouseRepository
	}

	// UserUoW manages transactions for user-only operations.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}

	// UoW spans users, locations and warehouses. WarehouseService needs all
	// three: it checks the owner, resolves the city and writes the warehouse.
	UoW interface {
		TxManager
		UserRepoFactory
		LocationRepoFactory
		WarehouseRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)

// inUnitOfWork runs fn between Begin and Commit. The deferred Rollback is a
// no-op once Commit succeeded.
func inUnitOfWork[U TxManager](ctx context.Context, uow U, fn func(U) error) error {
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := fn(uow); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
