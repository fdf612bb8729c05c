// Package warehouserepo persists warehouse aggregates. Address and storage
// type are embedded columns of the warehouse row; the city is a foreign key
// into the shared cities table and the owner a foreign key into users.
package warehouserepo

import (
	"time"

	"wms/internal/adapters/out/postgres/cityrepo"
	"wms/internal/adapters/out/postgres/userrepo"
	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/location"
	"wms/internal/core/domain/model/warehouse"

	"github.com/google/uuid"
)

// WarehouseDTO is the database row of a warehouse.
type WarehouseDTO struct {
	ID               uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name             string           `gorm:"type:varchar(255);not null"`
	Address          AddressDTO       `gorm:"embedded;embeddedPrefix:address_"`
	CityID           uuid.UUID        `gorm:"column:address_city_id;type:uuid;not null;index"`
	City             cityrepo.CityDTO `gorm:"foreignKey:CityID;constraint:OnDelete:RESTRICT"`
	StorageType      StorageTypeDTO   `gorm:"embedded;embeddedPrefix:storage_type_"`
	Size             float64          `gorm:"type:double precision;not null"`
	Status           string           `gorm:"type:varchar(16);not null"`
	ClimateCondition string           `gorm:"type:varchar(64);not null"`
	OwnerID          uuid.UUID        `gorm:"type:uuid;not null;index"`
	Owner            userrepo.UserDTO `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName overrides GORM's default "warehouse_dtos".
func (WarehouseDTO) TableName() string {
	return "warehouses"
}

// AddressDTO holds the street part of the address; the city is CityID.
type AddressDTO struct {
	Street  string `gorm:"type:varchar(255);not null"`
	ZipCode string `gorm:"type:varchar(10);not null"`
}

// StorageTypeDTO stores the storage type value object.
type StorageTypeDTO struct {
	Name        string `gorm:"type:varchar(100);not null"`
	Description string `gorm:"type:text"`
}

func fromDomain(w *warehouse.Warehouse) WarehouseDTO {
	addr := w.Address()
	return WarehouseDTO{
		ID:   w.ID().Bytes(),
		Name: w.Name(),
		Address: AddressDTO{
			Street:  addr.Street(),
			ZipCode: addr.ZipCode(),
		},
		CityID: addr.City().ID().Bytes(),
		StorageType: StorageTypeDTO{
			Name:        w.StorageType().Name(),
			Description: w.StorageType().Description(),
		},
		Size:             w.Size(),
		Status:           w.Status().String(),
		ClimateCondition: w.ClimateCondition(),
		OwnerID:          w.OwnerID().Bytes(),
	}
}

// toDomain restores a warehouse; dto.City and dto.City.Country must be preloaded.
func toDomain(dto WarehouseDTO) (*warehouse.Warehouse, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}
	status, err := warehouse.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	city, err := cityrepo.ToDomain(dto.City)
	if err != nil {
		return nil, err
	}
	addr, err := location.NewAddress(dto.Address.Street, dto.Address.ZipCode, city)
	if err != nil {
		return nil, err
	}
	st, err := warehouse.NewStorageType(dto.StorageType.Name, dto.StorageType.Description)
	if err != nil {
		return nil, err
	}

	return warehouse.RestoreWarehouse(id, warehouse.Details{
		Name:             dto.Name,
		Address:          addr,
		StorageType:      st,
		Size:             dto.Size,
		ClimateCondition: dto.ClimateCondition,
	}, status, ownerID)
}
