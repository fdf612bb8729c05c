package services

import (
	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/location"
	"wms/internal/core/domain/model/user"
	"wms/internal/core/domain/model/warehouse"
)

// UserRegistrationDTO carries a submitted registration form. Role is the
// role name as typed or selected ("owner", "AGENT", ...).
type UserRegistrationDTO struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
	Role      string
}

// AdminAccount is an administrator seeded at startup.
type AdminAccount struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
}

// UserDTO is the read view of a user. The password hash never leaves the service.
type UserDTO struct {
	ID        kernel.UUID
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Role      user.Role
}

// WarehouseDTO is the flat view of a warehouse exchanged with the controllers.
type WarehouseDTO struct {
	ID                     kernel.UUID
	Name                   string
	Street                 string
	ZipCode                string
	CityName               string
	CountryName            string
	StorageType            string
	StorageTypeDescription string
	Size                   float64
	Status                 warehouse.Status
	ClimateCondition       string
	OwnerID                kernel.UUID
}

// WithIdentityFrom returns a copy of d carrying the id, status and owner of
// prev. Update forms use it so edits never change those three.
func (d WarehouseDTO) WithIdentityFrom(prev WarehouseDTO) WarehouseDTO {
	d.ID = prev.ID
	d.Status = prev.Status
	d.OwnerID = prev.OwnerID
	return d
}

func toUserDTO(u *user.User) UserDTO {
	return UserDTO{
		ID:        u.ID(),
		FirstName: u.FirstName(),
		LastName:  u.LastName(),
		Email:     u.Email(),
		Phone:     u.Phone(),
		Role:      u.Role(),
	}
}

func toWarehouseDTO(w *warehouse.Warehouse) WarehouseDTO {
	addr := w.Address()
	return WarehouseDTO{
		ID:                     w.ID(),
		Name:                   w.Name(),
		Street:                 addr.Street(),
		ZipCode:                addr.ZipCode(),
		CityName:               addr.City().Name(),
		CountryName:            addr.Country().Name(),
		StorageType:            w.StorageType().Name(),
		StorageTypeDescription: w.StorageType().Description(),
		Size:                   w.Size(),
		Status:                 w.Status(),
		ClimateCondition:       w.ClimateCondition(),
		OwnerID:                w.OwnerID(),
	}
}

// toWarehouse maps dto onto an aggregate placed in city. The city must have
// been resolved from dto.CityName and dto.CountryName.
func toWarehouse(dto WarehouseDTO, city *location.City) (*warehouse.Warehouse, error) {
	details, err := toWarehouseDetails(dto, city)
	if err != nil {
		return nil, err
	}
	return warehouse.RestoreWarehouse(dto.ID, details, dto.Status, dto.OwnerID)
}

// toNewWarehouse maps dto onto a freshly listed aggregate; dto.Status is ignored.
func toNewWarehouse(dto WarehouseDTO, city *location.City) (*warehouse.Warehouse, error) {
	details, err := toWarehouseDetails(dto, city)
	if err != nil {
		return nil, err
	}
	return warehouse.NewWarehouse(dto.ID, details, dto.OwnerID)
}

func toWarehouseDetails(dto WarehouseDTO, city *location.City) (warehouse.Details, error) {
	addr, err := location.NewAddress(dto.Street, dto.ZipCode, city)
	if err != nil {
		return warehouse.Details{}, err
	}
	st, err := warehouse.NewStorageType(dto.StorageType, dto.StorageTypeDescription)
	if err != nil {
		return warehouse.Details{}, err
	}

	return warehouse.Details{
		Name:             dto.Name,
		Address:          addr,
		StorageType:      st,
		Size:             dto.Size,
		ClimateCondition: dto.ClimateCondition,
	}, nil
}
