package warehouse

import (
	"strings"

	"wms/internal/pkg/errs"
)

// ErrStorageTypeNameIsRequired is returned for an empty storage type name.
var ErrStorageTypeNameIsRequired = errs.NewValueIsRequiredError("storage type")

// StorageType describes what a warehouse is fit to store, e.g. "Cold storage"
// with a free-text description. It is embedded in the warehouse record.
type StorageType struct {
	name        string
	description string
}

// NewStorageType builds a storage type. The description may be empty.
func NewStorageType(name, description string) (StorageType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return StorageType{}, ErrStorageTypeNameIsRequired
	}
	return StorageType{
		name:        name,
		description: strings.TrimSpace(description),
	}, nil
}

func (s StorageType) Name() string {
	return s.name
}

func (s StorageType) Description() string {
	return s.description
}

// IsZero reports whether the storage type was never constructed.
func (s StorageType) IsZero() bool {
	return s.name == ""
}
