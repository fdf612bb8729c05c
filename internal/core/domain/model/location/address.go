package location

import (
	"errors"
	"fmt"
	"strings"

	"wms/internal/pkg/errs"
	"wms/internal/pkg/guard"
)

var (
	// ErrStreetIsRequired is returned for an empty street.
	ErrStreetIsRequired = errs.NewValueIsRequiredError("street")
	// ErrZipCodeIsRequired is returned for an empty zip code.
	ErrZipCodeIsRequired = errs.NewValueIsRequiredError("zip code")
	// ErrAddressCityIsRequired is returned when an address has no city.
	ErrAddressCityIsRequired = errs.NewValueIsRequiredError("address city")
	// ErrAddressIsNotConstructed is returned when using a zero-value Address.
	ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("address must be created via NewAddress")
)

// Address is a warehouse's street address. It is immutable; changing an
// address means building a new one.
type Address struct {
	street  string
	zipCode string
	city    *City
	guard   guard.ConstructorGuard
}

// NewAddress validates and builds an address. Fields are trimmed.
func NewAddress(street, zipCode string, city *City) (Address, error) {
	street = strings.TrimSpace(street)
	zipCode = strings.TrimSpace(zipCode)

	var cityErr error
	if city == nil {
		cityErr = ErrAddressCityIsRequired
	} else {
		cityErr = city.Validate()
	}

	if err := errors.Join(
		requireNonBlank(street, ErrStreetIsRequired),
		requireNonBlank(zipCode, ErrZipCodeIsRequired),
		cityErr,
	); err != nil {
		return Address{}, err
	}

	return Address{
		street:  street,
		zipCode: zipCode,
		city:    city,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (a Address) Street() string {
	return a.street
}

func (a Address) ZipCode() string {
	return a.zipCode
}

func (a Address) City() *City {
	return a.city
}

// Country is a shortcut for City().Country().
func (a Address) Country() *Country {
	if a.city == nil {
		return nil
	}
	return a.city.Country()
}

func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a Address) String() string {
	if a.city == nil {
		return fmt.Sprintf("%s, %s", a.street, a.zipCode)
	}
	return fmt.Sprintf("%s, %s %s, %s", a.street, a.zipCode, a.city.Name(), a.city.Country().Name())
}

func requireNonBlank(value string, err error) error {
	if value == "" {
		return err
	}
	return nil
}
