package http

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	personNamePattern = regexp.MustCompile(`^[A-Za-z\s]+$`)
	emailPattern      = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	phonePattern      = regexp.MustCompile(`^(\+359|0)\d{8,10}$`)
	zipCodePattern    = regexp.MustCompile(`^[A-Za-z0-9]{3,10}$`)
)

const passwordSpecials = "!@#$%^&*"

// fieldMessages holds the text shown under each form field, keyed by its
// JSON name. A field reports one message whatever rule it broke.
var fieldMessages = map[string]string{
	"firstName":        "First name can contain only letters and spaces.",
	"lastName":         "Last name can contain only letters and spaces.",
	"email":            "The provided email is invalid.",
	"password":         "Password should contain at least 8 symbols. At least one upper case letter and one special symbol.",
	"phone":            "Enter a valid phone number.",
	"role":             "Choosing a role is mandatory.",
	"name":             "Name is required.",
	"street":           "Street is required.",
	"city":             "City is required.",
	"country":          "Country is required.",
	"zipCode":          "Enter a valid zip code.",
	"size":             "Size must be a positive number.",
	"storageType":      "Choosing a storage type is mandatory.",
	"climateCondition": "Choosing a climate condition is mandatory.",
}

// FieldErrors maps a JSON field name to its validation message.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+f[name])
	}
	return "invalid fields: " + strings.Join(parts, "; ")
}

// FormValidator implements echo.Validator for the request forms.
type FormValidator struct {
	validate *validator.Validate
}

func NewFormValidator() *FormValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "person_name", matches(personNamePattern))
	mustRegister(v, "email_format", matches(emailPattern))
	mustRegister(v, "phone_number", matches(phonePattern))
	mustRegister(v, "zip_code", matches(zipCodePattern))
	mustRegister(v, "password_policy", validatePasswordPolicy)

	return &FormValidator{validate: v}
}

// Validate checks a form struct. Rule violations come back as FieldErrors.
func (v *FormValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	fields := make(FieldErrors, len(validationErrors))
	for _, fe := range validationErrors {
		if _, seen := fields[fe.Field()]; seen {
			continue
		}
		fields[fe.Field()] = messageFor(fe)
	}
	return fields
}

func messageFor(fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.Field()]; ok {
		return msg
	}
	return fmt.Sprintf("%s is invalid.", fe.Field())
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

func matches(pattern *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return pattern.MatchString(fl.Field().String())
	}
}

// validatePasswordPolicy requires 8+ characters, an upper case letter and
// one of !@#$%^&*.
func validatePasswordPolicy(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if len([]rune(password)) < 8 {
		return false
	}

	hasUpper := strings.IndexFunc(password, func(r rune) bool { return r >= 'A' && r <= 'Z' }) >= 0
	hasSpecial := strings.ContainsAny(password, passwordSpecials)
	return hasUpper && hasSpecial
}
