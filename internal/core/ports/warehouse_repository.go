package ports

import (
	"context"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/warehouse"
)

// WarehouseRepository persists warehouse aggregates together with their
// embedded address and storage type.
type WarehouseRepository interface {
	// Add inserts a warehouse. Its city and owner must already be stored.
	Add(ctx context.Context, aggregate *warehouse.Warehouse) error

	// Update overwrites the warehouse with the same id. errs.ErrObjectNotFound
	// when no row matched.
	Update(ctx context.Context, aggregate *warehouse.Warehouse) error

	// Delete removes the warehouse by primary key. errs.ErrObjectNotFound when
	// no row matched.
	Delete(ctx context.Context, aggregate *warehouse.Warehouse) error

	// Find returns the warehouse with id. A missing warehouse is (nil, false, nil).
	Find(ctx context.Context, id kernel.UUID) (*warehouse.Warehouse, bool, error)

	// FindByOwner lists the warehouses of an owner ordered by name.
	FindByOwner(ctx context.Context, ownerID kernel.UUID) ([]*warehouse.Warehouse, error)
}
