package postgres

import (
	"fmt"

	"wms/internal/adapters/out/postgres/cityrepo"
	"wms/internal/adapters/out/postgres/countryrepo"
	"wms/internal/adapters/out/postgres/userrepo"
	"wms/internal/adapters/out/postgres/warehouserepo"

	"gorm.io/gorm"
)

// Models lists every persisted row type in foreign-key order.
func Models() []any {
	return []any{
		&userrepo.UserDTO{},
		&countryrepo.CountryDTO{},
		&cityrepo.CityDTO{},
		&warehouserepo.WarehouseDTO{},
	}
}

// Migrate creates or updates the schema, including unique indexes and
// foreign keys (warehouses.owner_id cascades on owner deletion).
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
