package ports

import (
	"context"
	"time"

	"wms/internal/core/domain/model/location"
)

// CountryRepository persists countries. Names are unique and matched exactly.
type CountryRepository interface {
	// Add inserts a country. A name that is already stored yields errs.ErrObjectAlreadyExists.
	Add(ctx context.Context, country *location.Country) error

	// FindByName returns errs.ErrAmbiguousResult when more than one row matches.
	FindByName(ctx context.Context, name string) (*location.Country, bool, error)

	// DeleteUnused removes countries without cities created before olderThan
	// and returns how many were removed.
	DeleteUnused(ctx context.Context, olderThan time.Time) (int64, error)
}

// CityRepository persists cities. (name, country) is unique and matched exactly.
type CityRepository interface {
	// Add inserts a city. A (name, country) pair that is already stored yields errs.ErrObjectAlreadyExists.
	Add(ctx context.Context, city *location.City) error

	// FindByNameAndCountry returns errs.ErrAmbiguousResult when more than one row matches.
	FindByNameAndCountry(ctx context.Context, name string, country *location.Country) (*location.City, bool, error)

	// DeleteUnused removes cities no warehouse references, created before
	// olderThan, and returns how many were removed.
	DeleteUnused(ctx context.Context, olderThan time.Time) (int64, error)
}
