package servers

import (
	"fmt"
	"net/http"

	"wms/api"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for WarehouseStatus.
const (
	WarehouseStatusAVAILABLE   WarehouseStatus = "AVAILABLE"
	WarehouseStatusRENTED      WarehouseStatus = "RENTED"
	WarehouseStatusUNAVAILABLE WarehouseStatus = "UNAVAILABLE"
)

// AvailableWarehouse defines model for AvailableWarehouse.
type AvailableWarehouse struct {
	City             string             `json:"city"`
	ClimateCondition string             `json:"climateCondition"`
	Country          string             `json:"country"`
	Id               openapi_types.UUID `json:"id"`
	Name             string             `json:"name"`
	Size             float64            `json:"size"`
	StorageType      string             `json:"storageType"`
	Street           string             `json:"street"`
	ZipCode          string             `json:"zipCode"`
}

// Country defines model for Country.
type Country struct {
	Cities int64              `json:"cities"`
	Id     openapi_types.UUID `json:"id"`
	Name   string             `json:"name"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewUser defines model for NewUser.
type NewUser struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password"`
	Phone     string `json:"phone"`

	// Role OWNER, AGENT or TENANT, case-insensitive
	Role string `json:"role"`
}

// User defines model for User.
type User struct {
	Email     string             `json:"email"`
	FirstName string             `json:"firstName"`
	Id        openapi_types.UUID `json:"id"`
	LastName  string             `json:"lastName"`
	Phone     string             `json:"phone"`
	Role      string             `json:"role"`
}

// ValidationError defines model for ValidationError.
type ValidationError struct {
	Code    int               `json:"code"`
	Fields  map[string]string `json:"fields"`
	Message string            `json:"message"`
}

// Warehouse defines model for Warehouse.
type Warehouse struct {
	City                   string             `json:"city"`
	ClimateCondition       string             `json:"climateCondition"`
	Country                string             `json:"country"`
	Id                     openapi_types.UUID `json:"id"`
	Name                   string             `json:"name"`
	OwnerId                openapi_types.UUID `json:"ownerId"`
	Size                   float64            `json:"size"`
	Status                 WarehouseStatus    `json:"status"`
	StorageType            string             `json:"storageType"`
	StorageTypeDescription *string            `json:"storageTypeDescription,omitempty"`
	Street                 string             `json:"street"`
	ZipCode                string             `json:"zipCode"`
}

// WarehouseStatus defines model for Warehouse.Status.
type WarehouseStatus string

// WarehouseForm defines model for WarehouseForm.
type WarehouseForm struct {
	City                   string  `json:"city"`
	ClimateCondition       string  `json:"climateCondition"`
	Country                string  `json:"country"`
	Name                   string  `json:"name"`
	Size                   float64 `json:"size"`
	StorageType            string  `json:"storageType"`
	StorageTypeDescription *string `json:"storageTypeDescription,omitempty"`
	Street                 string  `json:"street"`
	ZipCode                string  `json:"zipCode"`
}

// OwnerId defines model for OwnerId.
type OwnerId = openapi_types.UUID

// WarehouseId defines model for WarehouseId.
type WarehouseId = openapi_types.UUID

// ListAvailableWarehousesParams defines parameters for ListAvailableWarehouses.
type ListAvailableWarehousesParams struct {
	Country *string `form:"country,omitempty" json:"country,omitempty"`
}

// CreateWarehouseJSONRequestBody defines body for CreateWarehouse for application/json ContentType.
type CreateWarehouseJSONRequestBody = WarehouseForm

// RegisterUserJSONRequestBody defines body for RegisterUser for application/json ContentType.
type RegisterUserJSONRequestBody = NewUser

// UpdateWarehouseJSONRequestBody defines body for UpdateWarehouse for application/json ContentType.
type UpdateWarehouseJSONRequestBody = WarehouseForm

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List known countries
	// (GET /countries)
	ListCountries(ctx echo.Context) error
	// List an owner's warehouses
	// (GET /owners/{ownerId}/warehouses)
	ListOwnerWarehouses(ctx echo.Context, ownerId OwnerId) error
	// List a new warehouse
	// (POST /owners/{ownerId}/warehouses)
	CreateWarehouse(ctx echo.Context, ownerId OwnerId) error
	// Register a user
	// (POST /users)
	RegisterUser(ctx echo.Context) error
	// List warehouses available for rent
	// (GET /warehouses)
	ListAvailableWarehouses(ctx echo.Context, params ListAvailableWarehousesParams) error
	// Delete a warehouse
	// (DELETE /warehouses/{warehouseId})
	DeleteWarehouse(ctx echo.Context, warehouseId WarehouseId) error
	// Get a warehouse
	// (GET /warehouses/{warehouseId})
	GetWarehouse(ctx echo.Context, warehouseId WarehouseId) error
	// Update a warehouse
	// (PUT /warehouses/{warehouseId})
	UpdateWarehouse(ctx echo.Context, warehouseId WarehouseId) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// ListCountries converts echo context to params.
func (w *ServerInterfaceWrapper) ListCountries(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListCountries(ctx)
	return err
}

// ListOwnerWarehouses converts echo context to params.
func (w *ServerInterfaceWrapper) ListOwnerWarehouses(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "ownerId" -------------
	var ownerId OwnerId

	err = runtime.BindStyledParameterWithOptions("simple", "ownerId", ctx.Param("ownerId"), &ownerId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter ownerId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListOwnerWarehouses(ctx, ownerId)
	return err
}

// CreateWarehouse converts echo context to params.
func (w *ServerInterfaceWrapper) CreateWarehouse(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "ownerId" -------------
	var ownerId OwnerId

	err = runtime.BindStyledParameterWithOptions("simple", "ownerId", ctx.Param("ownerId"), &ownerId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter ownerId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateWarehouse(ctx, ownerId)
	return err
}

// RegisterUser converts echo context to params.
func (w *ServerInterfaceWrapper) RegisterUser(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.RegisterUser(ctx)
	return err
}

// ListAvailableWarehouses converts echo context to params.
func (w *ServerInterfaceWrapper) ListAvailableWarehouses(ctx echo.Context) error {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params ListAvailableWarehousesParams
	// ------------- Optional query parameter "country" -------------

	err = runtime.BindQueryParameter("form", true, false, "country", ctx.QueryParams(), &params.Country)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter country: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListAvailableWarehouses(ctx, params)
	return err
}

// DeleteWarehouse converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteWarehouse(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "warehouseId" -------------
	var warehouseId WarehouseId

	err = runtime.BindStyledParameterWithOptions("simple", "warehouseId", ctx.Param("warehouseId"), &warehouseId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter warehouseId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DeleteWarehouse(ctx, warehouseId)
	return err
}

// GetWarehouse converts echo context to params.
func (w *ServerInterfaceWrapper) GetWarehouse(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "warehouseId" -------------
	var warehouseId WarehouseId

	err = runtime.BindStyledParameterWithOptions("simple", "warehouseId", ctx.Param("warehouseId"), &warehouseId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter warehouseId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetWarehouse(ctx, warehouseId)
	return err
}

// UpdateWarehouse converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateWarehouse(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "warehouseId" -------------
	var warehouseId WarehouseId

	err = runtime.BindStyledParameterWithOptions("simple", "warehouseId", ctx.Param("warehouseId"), &warehouseId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter warehouseId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateWarehouse(ctx, warehouseId)
	return err
}

// This is a simple interface which specifies echo.Route addition functions which
// are present on both echo.Echo and echo.Group, since we want to allow using
// either of them for path registration
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// Registers handlers, and prepends BaseURL to the paths, so that the paths
// can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {

	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/countries", wrapper.ListCountries)
	router.GET(baseURL+"/owners/:ownerId/warehouses", wrapper.ListOwnerWarehouses)
	router.POST(baseURL+"/owners/:ownerId/warehouses", wrapper.CreateWarehouse)
	router.POST(baseURL+"/users", wrapper.RegisterUser)
	router.GET(baseURL+"/warehouses", wrapper.ListAvailableWarehouses)
	router.DELETE(baseURL+"/warehouses/:warehouseId", wrapper.DeleteWarehouse)
	router.GET(baseURL+"/warehouses/:warehouseId", wrapper.GetWarehouse)
	router.PUT(baseURL+"/warehouses/:warehouseId", wrapper.UpdateWarehouse)

}

// GetSwagger loads the embedded OpenAPI document. Callers validate it before
// serving traffic.
func GetSwagger() (swagger *openapi3.T, err error) {
	loader := openapi3.NewLoader()
	loader.IsExternalRefsAllowed = true
	swagger, err = loader.LoadFromData(api.OpenAPI)
	if err != nil {
		return
	}
	return
}
