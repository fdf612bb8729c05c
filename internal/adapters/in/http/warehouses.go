package http

import (
	"net/http"

	"wms/internal/core/application/services"
	"wms/internal/core/application/usecases/queries"
	"wms/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ListAvailableWarehouses handles GET /api/v1/warehouses.
func (s *Server) ListAvailableWarehouses(ctx echo.Context, params servers.ListAvailableWarehousesParams) error {
	var country string
	if params.Country != nil {
		country = *params.Country
	}

	list, err := s.listAvailableWarehousesHandler.Handle(
		ctx.Request().Context(),
		queries.NewListAvailableWarehousesQuery(country),
	)
	if err != nil {
		s.logger.ErrorContext(ctx.Request().Context(), "Failed to list available warehouses", "error", err)
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve warehouses",
		})
	}

	response := make([]servers.AvailableWarehouse, len(list))
	for i, w := range list {
		response[i] = servers.AvailableWarehouse{
			Id:               w.ID.Bytes(),
			Name:             w.Name,
			Street:           w.Street,
			ZipCode:          w.ZipCode,
			City:             w.City,
			Country:          w.Country,
			StorageType:      w.StorageType,
			Size:             w.Size,
			ClimateCondition: w.ClimateCondition,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ListOwnerWarehouses handles GET /api/v1/owners/{ownerId}/warehouses.
func (s *Server) ListOwnerWarehouses(ctx echo.Context, ownerID servers.OwnerId) error {
	id, err := toKernelUUID(ownerID)
	if err != nil {
		return badRequest(ctx, "Invalid owner id")
	}

	list, err := s.warehouses.GetWarehouseDTOsByOwner(ctx.Request().Context(), id)
	if err != nil {
		return s.renderError(ctx, err)
	}

	response := make([]servers.Warehouse, len(list))
	for i, dto := range list {
		response[i] = toWarehouseResponse(dto)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateWarehouse handles POST /api/v1/owners/{ownerId}/warehouses.
func (s *Server) CreateWarehouse(ctx echo.Context, ownerID servers.OwnerId) error {
	id, err := toKernelUUID(ownerID)
	if err != nil {
		return badRequest(ctx, "Invalid owner id")
	}

	form, ok, err := s.bindWarehouseForm(ctx)
	if !ok {
		return err
	}

	dto := form.toDTO()
	dto.OwnerID = id

	saved, err := s.warehouses.SaveWarehouse(ctx.Request().Context(), dto)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toWarehouseResponse(saved))
}

// GetWarehouse handles GET /api/v1/warehouses/{warehouseId}.
func (s *Server) GetWarehouse(ctx echo.Context, warehouseID servers.WarehouseId) error {
	id, err := toKernelUUID(warehouseID)
	if err != nil {
		return badRequest(ctx, "Invalid warehouse id")
	}

	dto, err := s.warehouses.GetWarehouse(ctx.Request().Context(), id)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toWarehouseResponse(dto))
}

// UpdateWarehouse handles PUT /api/v1/warehouses/{warehouseId}. The stored
// id, status and owner win over anything the client could send.
func (s *Server) UpdateWarehouse(ctx echo.Context, warehouseID servers.WarehouseId) error {
	id, err := toKernelUUID(warehouseID)
	if err != nil {
		return badRequest(ctx, "Invalid warehouse id")
	}

	form, ok, err := s.bindWarehouseForm(ctx)
	if !ok {
		return err
	}

	prev, err := s.warehouses.GetWarehouse(ctx.Request().Context(), id)
	if err != nil {
		return s.renderError(ctx, err)
	}

	updated, err := s.warehouses.UpdateWarehouse(ctx.Request().Context(), form.toDTO().WithIdentityFrom(prev))
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toWarehouseResponse(updated))
}

// DeleteWarehouse handles DELETE /api/v1/warehouses/{warehouseId}.
func (s *Server) DeleteWarehouse(ctx echo.Context, warehouseID servers.WarehouseId) error {
	id, err := toKernelUUID(warehouseID)
	if err != nil {
		return badRequest(ctx, "Invalid warehouse id")
	}

	if err = s.warehouses.DeleteWarehouse(ctx.Request().Context(), services.WarehouseDTO{ID: id}); err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// bindWarehouseForm binds and validates the body. When ok is false the
// error response has already been written and err is the write result.
func (s *Server) bindWarehouseForm(ctx echo.Context) (form warehouseForm, ok bool, err error) {
	var body servers.WarehouseForm
	if bindErr := ctx.Bind(&body); bindErr != nil {
		return warehouseForm{}, false, badRequest(ctx, "Invalid request body")
	}

	form = newWarehouseForm(body)
	if validateErr := ctx.Validate(&form); validateErr != nil {
		return warehouseForm{}, false, s.renderValidation(ctx, validateErr)
	}
	return form, true, nil
}
