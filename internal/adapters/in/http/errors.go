package http

import (
	"errors"
	"net/http"

	"wms/internal/core/application/services"
	"wms/internal/generated/servers"
	"wms/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const internalErrorMessage = "Internal server error"

// renderError writes a service failure as {code, message}. The service
// message is shown unchanged; anything else is hidden behind a generic text.
func (s *Server) renderError(ctx echo.Context, err error) error {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "Request failed",
			"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
	}

	return ctx.JSON(status, servers.Error{
		Code:    status,
		Message: displayMessage(err),
	})
}

// renderValidation writes per-field messages with 422.
func (s *Server) renderValidation(ctx echo.Context, err error) error {
	var fields FieldErrors
	if !errors.As(err, &fields) {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusUnprocessableEntity, servers.ValidationError{
		Code:    http.StatusUnprocessableEntity,
		Message: "Validation failed",
		Fields:  fields,
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func displayMessage(err error) string {
	var (
		registrationErr *services.RegistrationError
		userErr         *services.UserServiceError
		warehouseErr    *services.WarehouseServiceError
	)
	switch {
	case errors.As(err, &registrationErr):
		return registrationErr.Message
	case errors.As(err, &userErr):
		return userErr.Message
	case errors.As(err, &warehouseErr):
		return warehouseErr.Message
	default:
		return internalErrorMessage
	}
}
