// Package http exposes the warehouse service over the REST API described in
// api/openapi.yaml. Handlers bind and validate the request, call an
// application service and render the result or a {code, message} error.
package http

import (
	"context"
	"log/slog"
	"net/http"

	"wms/internal/core/application/services"
	"wms/internal/core/application/usecases/queries"
	"wms/internal/core/domain/model/kernel"
	"wms/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// UserRegistrar registers self-service accounts.
type UserRegistrar interface {
	RegisterUser(ctx context.Context, dto services.UserRegistrationDTO) (services.UserDTO, error)
}

// WarehouseManager covers the warehouse operations an owner performs.
type WarehouseManager interface {
	SaveWarehouse(ctx context.Context, dto services.WarehouseDTO) (services.WarehouseDTO, error)
	UpdateWarehouse(ctx context.Context, dto services.WarehouseDTO) (services.WarehouseDTO, error)
	GetWarehouse(ctx context.Context, id kernel.UUID) (services.WarehouseDTO, error)
	GetWarehouseDTOsByOwner(ctx context.Context, ownerID kernel.UUID) ([]services.WarehouseDTO, error)
	DeleteWarehouse(ctx context.Context, dto services.WarehouseDTO) error
}

type CountriesQueryHandler interface {
	Handle(ctx context.Context, query queries.ListCountriesQuery) ([]queries.ListCountriesQueryResponse, error)
}

type AvailableWarehousesQueryHandler interface {
	Handle(
		ctx context.Context,
		query queries.ListAvailableWarehousesQuery,
	) ([]queries.ListAvailableWarehousesQueryResponse, error)
}

var _ servers.ServerInterface = (*Server)(nil)

// Server implements servers.ServerInterface.
type Server struct {
	users      UserRegistrar
	warehouses WarehouseManager

	listCountriesHandler           CountriesQueryHandler
	listAvailableWarehousesHandler AvailableWarehousesQueryHandler

	logger *slog.Logger
}

func NewServer(
	users UserRegistrar,
	warehouses WarehouseManager,
	listCountriesHandler CountriesQueryHandler,
	listAvailableWarehousesHandler AvailableWarehousesQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		users:                          users,
		warehouses:                     warehouses,
		listCountriesHandler:           listCountriesHandler,
		listAvailableWarehousesHandler: listAvailableWarehousesHandler,
		logger:                         logger.With("component", "http_server"),
	}
}

// RegisterUser handles POST /api/v1/users.
func (s *Server) RegisterUser(ctx echo.Context) error {
	var body servers.RegisterUserJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	form := newRegistrationForm(body)
	if err := ctx.Validate(&form); err != nil {
		return s.renderValidation(ctx, err)
	}

	created, err := s.users.RegisterUser(ctx.Request().Context(), form.toDTO())
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toUserResponse(created))
}

// ListCountries handles GET /api/v1/countries.
func (s *Server) ListCountries(ctx echo.Context) error {
	countries, err := s.listCountriesHandler.Handle(ctx.Request().Context(), queries.NewListCountriesQuery())
	if err != nil {
		s.logger.ErrorContext(ctx.Request().Context(), "Failed to list countries", "error", err)
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve countries",
		})
	}

	response := make([]servers.Country, len(countries))
	for i, c := range countries {
		response[i] = servers.Country{
			Id:     c.ID.Bytes(),
			Name:   c.Name,
			Cities: c.Cities,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func toKernelUUID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}
