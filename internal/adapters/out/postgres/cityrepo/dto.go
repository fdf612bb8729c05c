// Package cityrepo persists cities. A composite unique index on
// (name, country_id) backs the get-or-create flow.
package cityrepo

import (
	"time"

	"wms/internal/adapters/out/postgres/countryrepo"
	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/location"

	"github.com/google/uuid"
)

// CityDTO is the database row of a city.
type CityDTO struct {
	ID        uuid.UUID              `gorm:"type:uuid;primaryKey"`
	Name      string                 `gorm:"type:varchar(100);not null;uniqueIndex:idx_cities_name_country"`
	CountryID uuid.UUID              `gorm:"type:uuid;not null;uniqueIndex:idx_cities_name_country"`
	Country   countryrepo.CountryDTO `gorm:"foreignKey:CountryID;constraint:OnDelete:RESTRICT"`
	CreatedAt time.Time              `gorm:"not null;index"`
}

// TableName overrides GORM's default "city_dtos".
func (CityDTO) TableName() string {
	return "cities"
}

// FromDomain converts a city to its row. The country row is filled for
// reads only; writes omit associations.
func FromDomain(c *location.City) CityDTO {
	return CityDTO{
		ID:        c.ID().Bytes(),
		Name:      c.Name(),
		CountryID: c.Country().ID().Bytes(),
		Country:   countryrepo.FromDomain(c.Country()),
	}
}

// ToDomain restores a city; dto.Country must be preloaded.
func ToDomain(dto CityDTO) (*location.City, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	country, err := countryrepo.ToDomain(dto.Country)
	if err != nil {
		return nil, err
	}

	return location.RestoreCity(id, dto.Name, country)
}
