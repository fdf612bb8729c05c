package http

import (
	"strings"

	"wms/internal/core/application/services"
	"wms/internal/generated/servers"
)

type registrationForm struct {
	FirstName string `json:"firstName" validate:"required,person_name"`
	LastName  string `json:"lastName" validate:"required,person_name"`
	Email     string `json:"email" validate:"required,email_format"`
	Password  string `json:"password" validate:"required,password_policy"`
	Phone     string `json:"phone" validate:"required,phone_number"`
	Role      string `json:"role" validate:"required"`
}

// newRegistrationForm trims every field except the password.
func newRegistrationForm(body servers.NewUser) registrationForm {
	return registrationForm{
		FirstName: strings.TrimSpace(body.FirstName),
		LastName:  strings.TrimSpace(body.LastName),
		Email:     strings.TrimSpace(body.Email),
		Password:  body.Password,
		Phone:     strings.TrimSpace(body.Phone),
		Role:      strings.TrimSpace(body.Role),
	}
}

func (f registrationForm) toDTO() services.UserRegistrationDTO {
	return services.UserRegistrationDTO{
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Email:     f.Email,
		Password:  f.Password,
		Phone:     f.Phone,
		Role:      f.Role,
	}
}

type warehouseForm struct {
	Name                   string  `json:"name" validate:"required"`
	Street                 string  `json:"street" validate:"required"`
	ZipCode                string  `json:"zipCode" validate:"required,zip_code"`
	City                   string  `json:"city" validate:"required"`
	Country                string  `json:"country" validate:"required"`
	StorageType            string  `json:"storageType" validate:"required"`
	StorageTypeDescription string  `json:"storageTypeDescription"`
	Size                   float64 `json:"size" validate:"gt=0"`
	ClimateCondition       string  `json:"climateCondition" validate:"required"`
}

func newWarehouseForm(body servers.WarehouseForm) warehouseForm {
	var description string
	if body.StorageTypeDescription != nil {
		description = strings.TrimSpace(*body.StorageTypeDescription)
	}

	return warehouseForm{
		Name:                   strings.TrimSpace(body.Name),
		Street:                 strings.TrimSpace(body.Street),
		ZipCode:                strings.TrimSpace(body.ZipCode),
		City:                   strings.TrimSpace(body.City),
		Country:                strings.TrimSpace(body.Country),
		StorageType:            strings.TrimSpace(body.StorageType),
		StorageTypeDescription: description,
		Size:                   body.Size,
		ClimateCondition:       strings.TrimSpace(body.ClimateCondition),
	}
}

// toDTO fills the editable fields only; id, status and owner are set by the caller.
func (f warehouseForm) toDTO() services.WarehouseDTO {
	return services.WarehouseDTO{
		Name:                   f.Name,
		Street:                 f.Street,
		ZipCode:                f.ZipCode,
		CityName:               f.City,
		CountryName:            f.Country,
		StorageType:            f.StorageType,
		StorageTypeDescription: f.StorageTypeDescription,
		Size:                   f.Size,
		ClimateCondition:       f.ClimateCondition,
	}
}

func toUserResponse(dto services.UserDTO) servers.User {
	return servers.User{
		Id:        dto.ID.Bytes(),
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
		Email:     dto.Email,
		Phone:     dto.Phone,
		Role:      dto.Role.String(),
	}
}

func toWarehouseResponse(dto services.WarehouseDTO) servers.Warehouse {
	var description *string
	if dto.StorageTypeDescription != "" {
		d := dto.StorageTypeDescription
		description = &d
	}

	return servers.Warehouse{
		Id:                     dto.ID.Bytes(),
		Name:                   dto.Name,
		Street:                 dto.Street,
		ZipCode:                dto.ZipCode,
		City:                   dto.CityName,
		Country:                dto.CountryName,
		StorageType:            dto.StorageType,
		StorageTypeDescription: description,
		Size:                   dto.Size,
		Status:                 servers.WarehouseStatus(dto.Status.String()),
		ClimateCondition:       dto.ClimateCondition,
		OwnerId:                dto.OwnerID.Bytes(),
	}
}
