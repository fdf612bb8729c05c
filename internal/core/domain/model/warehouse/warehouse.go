package warehouse

import (
	"errors"
	"strings"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/location"
	"wms/internal/pkg/errs"
	"wms/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned for an empty warehouse name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("warehouse name")
	// ErrClimateConditionIsRequired is returned when no climate condition is chosen.
	ErrClimateConditionIsRequired = errs.NewValueIsRequiredError("climate condition")
	// ErrOwnerIsRequired is returned when the owner id is missing.
	ErrOwnerIsRequired = errs.NewValueIsRequiredError("owner")
	// ErrWarehouseIsNotConstructed is returned when using a zero-value Warehouse.
	ErrWarehouseIsNotConstructed = errors.New("Warehouse must be created via NewWarehouse or RestoreWarehouse")
)

// Details are the owner-editable attributes of a warehouse.
type Details struct {
	Name             string
	Address          location.Address
	StorageType      StorageType
	Size             float64
	ClimateCondition string
}

// Warehouse is the aggregate root an owner lists for rent.
//
// Business rules:
//   - Name and climate condition are non-empty
//   - Size is strictly positive
//   - Address and storage type are constructed values
//   - Owner identity never changes after creation
type Warehouse struct {
	id      kernel.UUID
	details Details
	status  Status
	ownerID kernel.UUID
	guard   guard.ConstructorGuard
}

// NewWarehouse lists a new warehouse for ownerID. The status is always Available.
//
// Example:
//
//	addr, _ := location.NewAddress("1 Vitosha Blvd", "1000", sofia)
//	st, _ := warehouse.NewStorageType("Dry", "Pallet racks")
//	w, err := warehouse.NewWarehouse(kernel.NewUUID(), warehouse.Details{
//	    Name: "Central", Address: addr, StorageType: st, Size: 1200, ClimateCondition: "Dry",
//	}, owner.ID())
func NewWarehouse(id kernel.UUID, details Details, ownerID kernel.UUID) (*Warehouse, error) {
	return RestoreWarehouse(id, details, Available, ownerID)
}

// RestoreWarehouse rebuilds a stored warehouse, or an updated one that keeps
// its previous status.
func RestoreWarehouse(id kernel.UUID, details Details, status Status, ownerID kernel.UUID) (*Warehouse, error) {
	w := &Warehouse{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		w.setID(id),
		w.setDetails(details),
		w.setStatus(status),
		w.setOwnerID(ownerID),
	); err != nil {
		return nil, err
	}

	return w, nil
}

func (w *Warehouse) ID() kernel.UUID {
	return w.id
}

func (w *Warehouse) Name() string {
	return w.details.Name
}

func (w *Warehouse) Address() location.Address {
	return w.details.Address
}

func (w *Warehouse) StorageType() StorageType {
	return w.details.StorageType
}

func (w *Warehouse) Size() float64 {
	return w.details.Size
}

func (w *Warehouse) ClimateCondition() string {
	return w.details.ClimateCondition
}

func (w *Warehouse) Status() Status {
	return w.status
}

func (w *Warehouse) OwnerID() kernel.UUID {
	return w.ownerID
}

// IsEqual compares warehouses by identity.
func (w *Warehouse) IsEqual(other *Warehouse) bool {
	if w == nil || other == nil {
		return false
	}
	return w.id.IsEqual(other.id)
}

func (w *Warehouse) Validate() error {
	if w == nil {
		return ErrWarehouseIsNotConstructed
	}
	return w.guard.Validate(ErrWarehouseIsNotConstructed)
}

func (w *Warehouse) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *Warehouse) setDetails(d Details) error {
	d.Name = strings.TrimSpace(d.Name)
	d.ClimateCondition = strings.TrimSpace(d.ClimateCondition)

	var errList []error
	if d.Name == "" {
		errList = append(errList, ErrNameIsRequired)
	}
	if err := d.Address.Validate(); err != nil {
		errList = append(errList, err)
	}
	if d.StorageType.IsZero() {
		errList = append(errList, ErrStorageTypeNameIsRequired)
	}
	if d.Size <= 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("size", d.Size, "> 0", "unbounded"))
	}
	if d.ClimateCondition == "" {
		errList = append(errList, ErrClimateConditionIsRequired)
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	w.details = d
	return nil
}

func (w *Warehouse) setStatus(s Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	w.status = s
	return nil
}

func (w *Warehouse) setOwnerID(id kernel.UUID) error {
	if id.IsZero() {
		return ErrOwnerIsRequired
	}
	w.ownerID = id
	return nil
}
