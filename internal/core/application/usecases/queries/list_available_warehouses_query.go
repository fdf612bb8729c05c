package queries

import (
	"errors"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/pkg/guard"
)

var (
	ErrListAvailableWarehousesQueryIsNotConstructed = errors.New(
		"ListAvailableWarehousesQuery must be created via NewListAvailableWarehousesQuery constructor",
	)
)

// ListAvailableWarehousesQuery lists warehouses that can currently be
// rented, optionally narrowed to one country.
type ListAvailableWarehousesQuery struct {
	country string
	guard   guard.ConstructorGuard
}

// NewListAvailableWarehousesQuery builds the query. An empty country means
// every country.
func NewListAvailableWarehousesQuery(country string) ListAvailableWarehousesQuery {
	return ListAvailableWarehousesQuery{country: country, guard: guard.NewConstructorGuard()}
}

func (q ListAvailableWarehousesQuery) Country() string {
	return q.country
}

func (q ListAvailableWarehousesQuery) Validate() error {
	return q.guard.Validate(ErrListAvailableWarehousesQueryIsNotConstructed)
}

// ListAvailableWarehousesQueryResponse is the listing card of a warehouse.
type ListAvailableWarehousesQueryResponse struct {
	ID               kernel.UUID
	Name             string
	Street           string
	ZipCode          string
	City             string
	Country          string
	StorageType      string
	Size             float64
	ClimateCondition string
}
