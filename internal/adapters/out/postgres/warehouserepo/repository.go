package warehouserepo

import (
	"context"

	"wms/internal/adapters/out/postgres/pgerrs"
	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/warehouse"
	"wms/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormWarehouseRepository implements ports.WarehouseRepository using GORM.
type GormWarehouseRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormWarehouseRepository creates a warehouse repository bound to db.
func NewGormWarehouseRepository(db *gorm.DB, tracker aggregateTracker) *GormWarehouseRepository {
	return &GormWarehouseRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a warehouse row. City and owner rows are referenced, never written.
func (r *GormWarehouseRepository) Add(ctx context.Context, aggregate *warehouse.Warehouse) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		return pgerrs.TranslateWrite(err, "warehouse "+aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update overwrites every column except the id and creation time.
func (r *GormWarehouseRepository) Update(ctx context.Context, aggregate *warehouse.Warehouse) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&WarehouseDTO{ID: dto.ID}).
		Select("*").
		Omit("id", "created_at", clause.Associations).
		Updates(&dto)
	if result.Error != nil {
		return pgerrs.TranslateWrite(result.Error, "warehouse "+aggregate.ID().String())
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("warehouse", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes the warehouse row by primary key.
func (r *GormWarehouseRepository) Delete(ctx context.Context, aggregate *warehouse.Warehouse) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&WarehouseDTO{}, "id = ?", aggregate.ID().Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("warehouse", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Find retrieves a warehouse with its city and country by ID.
func (r *GormWarehouseRepository) Find(ctx context.Context, id kernel.UUID) (*warehouse.Warehouse, bool, error) {
	if err := id.Validate(); err != nil {
		return nil, false, err
	}

	var dtos []WarehouseDTO
	if err := r.withLocation(ctx).Where("id = ?", id.Bytes()).Limit(1).Find(&dtos).Error; err != nil {
		return nil, false, err
	}
	if len(dtos) == 0 {
		return nil, false, nil
	}

	w, err := toDomain(dtos[0])
	if err != nil {
		return nil, false, err
	}
	return w, true, nil
}

// FindByOwner lists an owner's warehouses ordered by name.
func (r *GormWarehouseRepository) FindByOwner(ctx context.Context, ownerID kernel.UUID) ([]*warehouse.Warehouse, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []WarehouseDTO
	if err := r.withLocation(ctx).
		Where("owner_id = ?", ownerID.Bytes()).
		Order("name, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	warehouses := make([]*warehouse.Warehouse, 0, len(dtos))
	for _, dto := range dtos {
		w, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		warehouses = append(warehouses, w)
	}

	return warehouses, nil
}

func (r *GormWarehouseRepository) withLocation(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("City.Country")
}
