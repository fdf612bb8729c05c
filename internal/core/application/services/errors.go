package services

import "errors"

var (
	// ErrRegistration matches every RegistrationError.
	ErrRegistration = errors.New("registration failed")
	// ErrUserService matches every UserServiceError.
	ErrUserService = errors.New("user service failed")
	// ErrWarehouseService matches every WarehouseServiceError.
	ErrWarehouseService = errors.New("warehouse service failed")
)

// RegistrationError is returned by user registration and administrator seeding.
type RegistrationError struct {
	Message string
	Cause   error
}

func newRegistrationError(message string, cause error) *RegistrationError {
	return &RegistrationError{Message: message, Cause: cause}
}

func (e *RegistrationError) Error() string {
	return describe(e.Message, e.Cause)
}

func (e *RegistrationError) Unwrap() []error {
	return chain(ErrRegistration, e.Cause)
}

// UserServiceError is returned by user lookups.
type UserServiceError struct {
	Message string
	Cause   error
}

func newUserServiceError(message string, cause error) *UserServiceError {
	return &UserServiceError{Message: message, Cause: cause}
}

func (e *UserServiceError) Error() string {
	return describe(e.Message, e.Cause)
}

func (e *UserServiceError) Unwrap() []error {
	return chain(ErrUserService, e.Cause)
}

// WarehouseServiceError is returned by every WarehouseService operation.
type WarehouseServiceError struct {
	Message string
	Cause   error
}

func newWarehouseServiceError(message string, cause error) *WarehouseServiceError {
	return &WarehouseServiceError{Message: message, Cause: cause}
}

func (e *WarehouseServiceError) Error() string {
	return describe(e.Message, e.Cause)
}

func (e *WarehouseServiceError) Unwrap() []error {
	return chain(ErrWarehouseService, e.Cause)
}

func describe(message string, cause error) string {
	if cause == nil {
		return message
	}
	return message + ": " + cause.Error()
}

func chain(sentinel, cause error) []error {
	if cause == nil {
		return []error{sentinel}
	}
	return []error{sentinel, cause}
}
