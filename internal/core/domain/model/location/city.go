package location

import (
	"errors"
	"strings"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/pkg/errs"
	"wms/internal/pkg/guard"
)

var (
	// ErrCityNameIsRequired is returned for an empty or blank city name.
	ErrCityNameIsRequired = errs.NewValueIsRequiredError("city name")
	// ErrCityCountryIsRequired is returned when a city has no country.
	ErrCityCountryIsRequired = errs.NewValueIsRequiredError("city country")
	// ErrCityIsNotConstructed is returned when using a zero-value City.
	ErrCityIsNotConstructed = errors.New("City must be created via NewCity or RestoreCity")
)

// City belongs to exactly one country. (name, country) is unique.
type City struct {
	id      kernel.UUID
	name    string
	country *Country
	guard   guard.ConstructorGuard
}

// NewCity creates a city with a fresh identity inside country.
func NewCity(name string, country *Country) (*City, error) {
	return RestoreCity(kernel.NewUUID(), name, country)
}

// RestoreCity rebuilds a persisted city together with its country.
func RestoreCity(id kernel.UUID, name string, country *Country) (*City, error) {
	c := &City{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setCountry(country),
	); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *City) ID() kernel.UUID {
	return c.id
}

func (c *City) Name() string {
	return c.name
}

func (c *City) Country() *Country {
	return c.country
}

// IsEqual compares cities by identity.
func (c *City) IsEqual(other *City) bool {
	if c == nil || other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

func (c *City) Validate() error {
	if c == nil {
		return ErrCityIsNotConstructed
	}
	return c.guard.Validate(ErrCityIsNotConstructed)
}

func (c *City) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *City) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrCityNameIsRequired
	}
	c.name = name
	return nil
}

func (c *City) setCountry(country *Country) error {
	if country == nil {
		return ErrCityCountryIsRequired
	}
	if err := country.Validate(); err != nil {
		return err
	}
	c.country = country
	return nil
}
