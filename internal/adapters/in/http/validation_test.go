package http

import (
	"strings"
	"testing"

	"wms/internal/generated/servers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegistration() registrationForm {
	return registrationForm{
		FirstName: "Maria",
		LastName:  "Ivanova Petrova",
		Email:     "maria@example.com",
		Password:  "Secret#123",
		Phone:     "+359888123456",
		Role:      "owner",
	}
}

func validWarehouseForm() warehouseForm {
	return warehouseForm{
		Name:             "Central",
		Street:           "Vitosha 1",
		ZipCode:          "1000",
		City:             "Sofia",
		Country:          "Bulgaria",
		StorageType:      "Dry",
		Size:             120.5,
		ClimateCondition: "Ambient",
	}
}

func fieldErrors(t *testing.T, err error) FieldErrors {
	t.Helper()
	var fields FieldErrors
	require.ErrorAs(t, err, &fields)
	return fields
}

func TestFormValidator_ValidForms(t *testing.T) {
	v := NewFormValidator()

	reg := validRegistration()
	require.NoError(t, v.Validate(&reg))

	w := validWarehouseForm()
	require.NoError(t, v.Validate(&w))
}

func TestFormValidator_RegistrationFields(t *testing.T) {
	v := NewFormValidator()

	tests := []struct {
		name    string
		mutate  func(f *registrationForm)
		field   string
		message string
	}{
		{"digits in first name", func(f *registrationForm) { f.FirstName = "M4ria" }, "firstName", "First name can contain only letters and spaces."},
		{"empty last name", func(f *registrationForm) { f.LastName = "" }, "lastName", "Last name can contain only letters and spaces."},
		{"email without domain dot", func(f *registrationForm) { f.Email = "maria@example" }, "email", "The provided email is invalid."},
		{"short password", func(f *registrationForm) { f.Password = "Ab#1" }, "password", "Password should contain at least 8 symbols. At least one upper case letter and one special symbol."},
		{"password without upper case", func(f *registrationForm) { f.Password = "secret#123" }, "password", "Password should contain at least 8 symbols. At least one upper case letter and one special symbol."},
		{"password without special", func(f *registrationForm) { f.Password = "Secret1234" }, "password", "Password should contain at least 8 symbols. At least one upper case letter and one special symbol."},
		{"foreign phone", func(f *registrationForm) { f.Phone = "+4915112345678" }, "phone", "Enter a valid phone number."},
		{"short phone", func(f *registrationForm) { f.Phone = "0888123" }, "phone", "Enter a valid phone number."},
		{"no role", func(f *registrationForm) { f.Role = "" }, "role", "Choosing a role is mandatory."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validRegistration()
			tt.mutate(&form)

			fields := fieldErrors(t, v.Validate(&form))

			assert.Len(t, fields, 1)
			assert.Equal(t, tt.message, fields[tt.field])
		})
	}
}

func TestFormValidator_ReportsEveryInvalidField(t *testing.T) {
	v := NewFormValidator()
	form := registrationForm{}

	fields := fieldErrors(t, v.Validate(&form))

	assert.Len(t, fields, 6)
	assert.Equal(t, "Choosing a role is mandatory.", fields["role"])
}

func TestFormValidator_WarehouseFields(t *testing.T) {
	v := NewFormValidator()

	tests := []struct {
		name    string
		mutate  func(f *warehouseForm)
		field   string
		message string
	}{
		{"no name", func(f *warehouseForm) { f.Name = "" }, "name", "Name is required."},
		{"no street", func(f *warehouseForm) { f.Street = "" }, "street", "Street is required."},
		{"no city", func(f *warehouseForm) { f.City = "" }, "city", "City is required."},
		{"no country", func(f *warehouseForm) { f.Country = "" }, "country", "Country is required."},
		{"zip with symbols", func(f *warehouseForm) { f.ZipCode = "10-00" }, "zipCode", "Enter a valid zip code."},
		{"zip too short", func(f *warehouseForm) { f.ZipCode = "10" }, "zipCode", "Enter a valid zip code."},
		{"zero size", func(f *warehouseForm) { f.Size = 0 }, "size", "Size must be a positive number."},
		{"negative size", func(f *warehouseForm) { f.Size = -5 }, "size", "Size must be a positive number."},
		{"no storage type", func(f *warehouseForm) { f.StorageType = "" }, "storageType", "Choosing a storage type is mandatory."},
		{"no climate", func(f *warehouseForm) { f.ClimateCondition = "" }, "climateCondition", "Choosing a climate condition is mandatory."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validWarehouseForm()
			tt.mutate(&form)

			fields := fieldErrors(t, v.Validate(&form))

			assert.Len(t, fields, 1)
			assert.Equal(t, tt.message, fields[tt.field])
		})
	}
}

func TestNewRegistrationForm_TrimsBeforeValidation(t *testing.T) {
	form := newRegistrationForm(servers.NewUser{
		FirstName: "  Maria ",
		LastName:  " Ivanova",
		Email:     " maria@example.com ",
		Password:  " Secret#123 ",
		Phone:     " 0888123456 ",
		Role:      " agent ",
	})

	assert.Equal(t, "Maria", form.FirstName)
	assert.Equal(t, "maria@example.com", form.Email)
	assert.Equal(t, "0888123456", form.Phone)
	assert.Equal(t, "agent", form.Role)
	assert.Equal(t, " Secret#123 ", form.Password)
	require.NoError(t, NewFormValidator().Validate(&form))
}

func TestNewWarehouseForm_BlankAfterTrimIsMissing(t *testing.T) {
	description := "  racks  "
	form := newWarehouseForm(servers.WarehouseForm{
		Name:                   "   ",
		Street:                 "Vitosha 1",
		ZipCode:                " 1000 ",
		City:                   "Sofia",
		Country:                "Bulgaria",
		StorageType:            "Dry",
		StorageTypeDescription: &description,
		Size:                   10,
		ClimateCondition:       "Ambient",
	})

	assert.Equal(t, "1000", form.ZipCode)
	assert.Equal(t, "racks", form.StorageTypeDescription)

	fields := fieldErrors(t, NewFormValidator().Validate(&form))
	assert.Equal(t, FieldErrors{"name": "Name is required."}, fields)
}

func TestFieldErrors_ErrorIsStable(t *testing.T) {
	fields := FieldErrors{"size": "b", "city": "a"}

	assert.Equal(t, "invalid fields: city: a; size: b", fields.Error())
	assert.True(t, strings.HasPrefix(fields.Error(), "invalid fields"))
}
