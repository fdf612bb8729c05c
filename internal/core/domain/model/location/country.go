package location

import (
	"errors"
	"strings"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/pkg/errs"
	"wms/internal/pkg/guard"
)

var (
	// ErrCountryNameIsRequired is returned for an empty or blank country name.
	ErrCountryNameIsRequired = errs.NewValueIsRequiredError("country name")
	// ErrCountryIsNotConstructed is returned when using a zero-value Country.
	ErrCountryIsNotConstructed = errors.New("Country must be created via NewCountry or RestoreCountry")
)

// Country is the top of the location hierarchy. Identity is the UUID; the
// name is the natural key used by get-or-create.
type Country struct {
	id    kernel.UUID
	name  string
	guard guard.ConstructorGuard
}

// NewCountry creates a country with a fresh identity. Surrounding spaces are
// trimmed from name; inner spelling and case are kept.
func NewCountry(name string) (*Country, error) {
	return RestoreCountry(kernel.NewUUID(), name)
}

// RestoreCountry rebuilds a persisted country.
func RestoreCountry(id kernel.UUID, name string) (*Country, error) {
	c := &Country{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Country) ID() kernel.UUID {
	return c.id
}

func (c *Country) Name() string {
	return c.name
}

// IsEqual compares countries by identity.
func (c *Country) IsEqual(other *Country) bool {
	if c == nil || other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

func (c *Country) Validate() error {
	if c == nil {
		return ErrCountryIsNotConstructed
	}
	return c.guard.Validate(ErrCountryIsNotConstructed)
}

func (c *Country) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Country) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrCountryNameIsRequired
	}
	c.name = name
	return nil
}
