package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/location"
	"wms/internal/core/domain/model/user"
	"wms/internal/core/domain/model/warehouse"
	domainservices "wms/internal/core/domain/services"
	"wms/internal/core/ports"
	"wms/internal/pkg/errs"
)

// WarehouseService manages the warehouses owners list and the country/city
// reference data their addresses point to.
type WarehouseService struct {
	uowFactory UoWFactory
	listing    domainservices.ListingPolicy
	logger     *slog.Logger
}

// PruneResult counts the reference rows PruneUnusedLocations removed.
type PruneResult struct {
	Cities    int64
	Countries int64
}

// NewWarehouseService creates the warehouse service.
func NewWarehouseService(uowFactory UoWFactory, logger *slog.Logger) *WarehouseService {
	return &WarehouseService{
		uowFactory: uowFactory,
		listing:    domainservices.NewListingPolicy(),
		logger:     logger.With("component", "warehouse_service"),
	}
}

// SaveWarehouse lists a new warehouse for dto.OwnerID. The id is generated,
// the status is always AVAILABLE, and the country and city are looked up by
// name or created.
func (s *WarehouseService) SaveWarehouse(ctx context.Context, dto WarehouseDTO) (WarehouseDTO, error) {
	dto.ID = kernel.NewUUID()
	dto.Status = warehouse.Available

	if _, err := s.requireOwner(ctx, dto.OwnerID); err != nil {
		return WarehouseDTO{}, err
	}

	w, err := s.storeAt(ctx, dto, "persistence", "Unexpected error during warehouse persistence", toNewWarehouse,
		func(repo ports.WarehouseRepository, w *warehouse.Warehouse) error {
			return repo.Add(ctx, w)
		})
	if err != nil {
		return WarehouseDTO{}, err
	}

	s.logger.InfoContext(ctx, "Warehouse saved", "id", w.ID().String(), "owner", w.OwnerID().String())
	return toWarehouseDTO(w), nil
}

// UpdateWarehouse overwrites the stored warehouse dto.ID. The caller keeps
// id, status and owner from the stored version (see WarehouseDTO.WithIdentityFrom);
// dto.OwnerID must be the owner of the stored warehouse.
func (s *WarehouseService) UpdateWarehouse(ctx context.Context, dto WarehouseDTO) (WarehouseDTO, error) {
	if dto.ID.IsZero() {
		return WarehouseDTO{}, s.failed(ctx, "Error: warehouse to update has no id", errs.NewValueIsRequiredError("warehouse id"))
	}

	owner, err := s.requireOwner(ctx, dto.OwnerID)
	if err != nil {
		return WarehouseDTO{}, err
	}

	var (
		stored *warehouse.Warehouse
		ok     bool
	)
	err = inUnitOfWork(ctx, s.uowFactory.Create(), func(uow UoW) error {
		var findErr error
		stored, ok, findErr = uow.WarehouseRepository().Find(ctx, dto.ID)
		return findErr
	})
	if err != nil {
		return WarehouseDTO{}, s.failed(ctx, "Error during the warehouse updating process", err)
	}
	if !ok {
		return WarehouseDTO{}, s.failed(ctx, "Error during the warehouse updating process",
			errs.NewObjectNotFoundError("warehouse", dto.ID.String()))
	}
	if err = s.listing.Authorize(owner, stored); err != nil {
		return WarehouseDTO{}, s.failed(ctx, "Only the owner can change this warehouse", err)
	}

	w, err := s.storeAt(ctx, dto, "update", "Error during the warehouse updating process", toWarehouse,
		func(repo ports.WarehouseRepository, w *warehouse.Warehouse) error {
			return repo.Update(ctx, w)
		})
	if err != nil {
		return WarehouseDTO{}, err
	}

	return toWarehouseDTO(w), nil
}

// storeAt resolves the dto's country and city, builds the aggregate and
// writes it. When the write finds the city or country pruned since it was
// resolved, resolution and write are repeated once.
func (s *WarehouseService) storeAt(
	ctx context.Context,
	dto WarehouseDTO,
	stage string,
	storeFailure string,
	build func(WarehouseDTO, *location.City) (*warehouse.Warehouse, error),
	store func(ports.WarehouseRepository, *warehouse.Warehouse) error,
) (*warehouse.Warehouse, error) {
	var err error
	for attempt := 0; attempt < 2; attempt++ {
		country, resolveErr := s.GetOrCreateCountry(ctx, dto.CountryName)
		if resolveErr != nil {
			return nil, s.failed(ctx, "Error creating country during warehouse "+stage, resolveErr)
		}
		city, resolveErr := s.GetOrCreateCity(ctx, dto.CityName, country)
		if resolveErr != nil {
			return nil, s.failed(ctx, "Error creating city during warehouse "+stage, resolveErr)
		}

		w, buildErr := build(dto, city)
		if buildErr != nil {
			return nil, s.failed(ctx, "Invalid warehouse data", buildErr)
		}

		err = inUnitOfWork(ctx, s.uowFactory.Create(), func(uow UoW) error {
			return store(uow.WarehouseRepository(), w)
		})
		if err == nil {
			return w, nil
		}
		if !errors.Is(err, errs.ErrReferenceIsMissing) {
			break
		}
		s.logger.WarnContext(ctx, "Warehouse location vanished before the write", "attempt", attempt+1, "error", err)
	}
	return nil, s.failed(ctx, storeFailure, err)
}

// GetOrCreateCountry returns the country called name, inserting it on a miss.
// A concurrent insert of the same name is resolved by fetching the winner.
func (s *WarehouseService) GetOrCreateCountry(ctx context.Context, name string) (*location.Country, error) {
	name = strings.TrimSpace(name)

	find := func() (*location.Country, bool, error) {
		var (
			c  *location.Country
			ok bool
		)
		err := inUnitOfWork(ctx, s.uowFactory.Create(), func(uow UoW) error {
			var findErr error
			c, ok, findErr = uow.CountryRepository().FindByName(ctx, name)
			return findErr
		})
		return c, ok, err
	}
	add := func(c *location.Country) error {
		return inUnitOfWork(ctx, s.uowFactory.Create(), func(uow UoW) error {
			return uow.CountryRepository().Add(ctx, c)
		})
	}

	return getOrCreate(find, func() (*location.Country, error) {
		return location.NewCountry(name)
	}, add, "country", name)
}

// GetOrCreateCity returns the city called name in country, inserting it on a miss.
func (s *WarehouseService) GetOrCreateCity(ctx context.Context, name string, country *location.Country) (*location.City, error) {
	name = strings.TrimSpace(name)
	if err := country.Validate(); err != nil {
		return nil, err
	}

	find := func() (*location.City, bool, error) {
		var (
			c  *location.City
			ok bool
		)
		err := inUnitOfWork(ctx, s.uowFactory.Create(), func(uow UoW) error {
			var findErr error
			c, ok, findErr = uow.CityRepository().FindByNameAndCountry(ctx, name, country)
			return findErr
		})
		return c, ok, err
	}
	add := func(c *location.City) error {
		return inUnitOfWork(ctx, s.uowFactory.Create(), func(uow UoW) error {
			return uow.CityRepository().Add(ctx, c)
		})
	}

	city, err := getOrCreate(find, func() (*location.City, error) {
		return location.NewCity(name, country)
	}, add, "city", country.Name()+"/"+name)
	if !errors.Is(err, errs.ErrReferenceIsMissing) {
		return city, err
	}

	// The country was pruned between its lookup and the city insert.
	s.logger.WarnContext(ctx, "Country vanished before the city insert", "country", country.Name(), "error", err)
	if country, err = s.GetOrCreateCountry(ctx, country.Name()); err != nil {
		return nil, err
	}
	return getOrCreate(find, func() (*location.City, error) {
		return location.NewCity(name, country)
	}, add, "city", country.Name()+"/"+name)
}

// GetWarehouseDTOsByOwner lists an owner's warehouses.
func (s *WarehouseService) GetWarehouseDTOsByOwner(ctx context.Context, ownerID kernel.UUID) ([]WarehouseDTO, error) {
	var list []*warehouse.Warehouse
	err := inUnitOfWork(ctx, s.uowFactory.Create(), func(uow UoW) error {
		var findErr error
		list, findErr = uow.WarehouseRepository().FindByOwner(ctx, ownerID)
		return findErr
	})
	if err != nil {
		return nil, s.failed(ctx, "Error during retrieval of owner warehouses", err)
	}

	dtos := make([]WarehouseDTO, 0, len(list))
	for _, w := range list {
		dtos = append(dtos, toWarehouseDTO(w))
	}
	return dtos, nil
}

// GetWarehouse returns a single warehouse.
func (s *WarehouseService) GetWarehouse(ctx context.Context, id kernel.UUID) (WarehouseDTO, error) {
	var (
		w  *warehouse.Warehouse
		ok bool
	)
	err := inUnitOfWork(ctx, s.uowFactory.Create(), func(uow UoW) error {
		var findErr error
		w, ok, findErr = uow.WarehouseRepository().Find(ctx, id)
		return findErr
	})
	if err != nil {
		return WarehouseDTO{}, s.failed(ctx, "Unexpected error retrieving warehouse", err)
	}
	if !ok {
		return WarehouseDTO{}, s.failed(ctx, "Warehouse not found", errs.NewObjectNotFoundError("warehouse", id.String()))
	}

	return toWarehouseDTO(w), nil
}

// DeleteWarehouse removes the warehouse dto.ID. Only the id is read from dto.
func (s *WarehouseService) DeleteWarehouse(ctx context.Context, dto WarehouseDTO) error {
	err := inUnitOfWork(ctx, s.uowFactory.Create(), func(uow UoW) error {
		repo := uow.WarehouseRepository()

		w, ok, err := repo.Find(ctx, dto.ID)
		if err != nil {
			return newWarehouseServiceError("Unexpected error retrieving warehouse during deletion process", err)
		}
		if !ok {
			return newWarehouseServiceError(
				"Error: warehouse scheduled for deletion not found",
				errs.NewObjectNotFoundError("warehouse", dto.ID.String()),
			)
		}

		if err = repo.Delete(ctx, w); err != nil {
			return newWarehouseServiceError("Unexpected error during warehouse deletion", err)
		}
		return nil
	})
	if err == nil {
		s.logger.InfoContext(ctx, "Warehouse deleted", "id", dto.ID.String())
		return nil
	}

	var serviceErr *WarehouseServiceError
	if errors.As(err, &serviceErr) {
		s.logger.ErrorContext(ctx, serviceErr.Message, "id", dto.ID.String(), "error", serviceErr.Cause)
		return serviceErr
	}
	return s.failed(ctx, "Unexpected error during warehouse deletion", err)
}

// PruneUnusedLocations deletes cities without warehouses, then countries
// without cities, considering only rows created before olderThan. Rows a
// concurrent get-or-create just produced are younger than the cutoff.
func (s *WarehouseService) PruneUnusedLocations(ctx context.Context, olderThan time.Time) (PruneResult, error) {
	var result PruneResult
	err := inUnitOfWork(ctx, s.uowFactory.Create(), func(uow UoW) error {
		var err error
		if result.Cities, err = uow.CityRepository().DeleteUnused(ctx, olderThan); err != nil {
			return err
		}
		result.Countries, err = uow.CountryRepository().DeleteUnused(ctx, olderThan)
		return err
	})
	if err != nil {
		return PruneResult{}, s.failed(ctx, "Error pruning unused locations", err)
	}
	return result, nil
}

func (s *WarehouseService) requireOwner(ctx context.Context, ownerID kernel.UUID) (*user.User, error) {
	if ownerID.IsZero() {
		return nil, s.failed(ctx, "Warehouse owner is required", errs.NewValueIsRequiredError("owner"))
	}

	var (
		owner *user.User
		ok    bool
	)
	err := inUnitOfWork(ctx, s.uowFactory.Create(), func(uow UoW) error {
		var findErr error
		owner, ok, findErr = uow.UserRepository().Find(ctx, ownerID)
		return findErr
	})
	if err != nil {
		return nil, s.failed(ctx, "Unexpected error retrieving warehouse owner", err)
	}
	if !ok {
		return nil, s.failed(ctx, "Warehouse owner not found", errs.NewObjectNotFoundError("owner", ownerID.String()))
	}
	if err = s.listing.CanList(owner); err != nil {
		return nil, s.failed(ctx, "Only owners can list warehouses", err)
	}
	return owner, nil
}

func (s *WarehouseService) failed(ctx context.Context, message string, cause error) error {
	s.logger.ErrorContext(ctx, message, "error", cause)
	return newWarehouseServiceError(message, cause)
}

// getOrCreate looks an entity up, inserts it on a miss, and re-fetches once
// when the insert loses a race against the unique index.
func getOrCreate[T any](
	find func() (T, bool, error),
	build func() (T, error),
	add func(T) error,
	param string,
	key string,
) (T, error) {
	var zero T

	existing, ok, err := find()
	if err != nil {
		return zero, err
	}
	if ok {
		return existing, nil
	}

	created, err := build()
	if err != nil {
		return zero, err
	}

	err = add(created)
	if err == nil {
		return created, nil
	}
	if !errors.Is(err, errs.ErrObjectAlreadyExists) {
		return zero, err
	}

	existing, ok, err = find()
	if err != nil {
		return zero, err
	}
	if !ok {
		return zero, errs.NewObjectNotFoundErrorWithCause(param, key, errors.New("vanished after duplicate insert"))
	}
	return existing, nil
}
