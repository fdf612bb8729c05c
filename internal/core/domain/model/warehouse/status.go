package warehouse

import (
	"fmt"
	"strings"

	"wms/internal/pkg/errs"
)

// Status is the rental state of a warehouse.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota
	// Available warehouses can be rented.
	Available
	// Rented warehouses are occupied by a tenant.
	Rented
	// Unavailable warehouses are withdrawn by their owner.
	Unavailable
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:     "UNKNOWN",
		Available:   "AVAILABLE",
		Rented:      "RENTED",
		Unavailable: "UNAVAILABLE",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Available:   "AVAILABLE",
		Rented:      "RENTED",
		Unavailable: "UNAVAILABLE",
	}
}

// ParseStatus maps a persisted or transmitted status name back to a Status.
func ParseStatus(s string) (Status, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of Available, Rented, Unavailable.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
