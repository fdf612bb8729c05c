// Package countryrepo persists countries. The name column carries a unique
// index so concurrent get-or-create calls cannot insert the same country twice.
package countryrepo

import (
	"time"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/location"

	"github.com/google/uuid"
)

// CountryDTO is the database row of a country.
type CountryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"not null;index"`
}

// TableName overrides GORM's default "country_dtos".
func (CountryDTO) TableName() string {
	return "countries"
}

// FromDomain converts a country to its row. Exported for the city and
// warehouse mappers, which embed it.
func FromDomain(c *location.Country) CountryDTO {
	return CountryDTO{
		ID:   c.ID().Bytes(),
		Name: c.Name(),
	}
}

// ToDomain restores a country from its row.
func ToDomain(dto CountryDTO) (*location.Country, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return location.RestoreCountry(id, dto.Name)
}
