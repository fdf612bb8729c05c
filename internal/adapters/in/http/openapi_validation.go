package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"wms/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

// RequestValidator checks every request under baseURL against the OpenAPI
// document before it reaches a handler. Field rules with their own messages
// stay with the form validator; this layer rejects wrong types, malformed
// JSON and unknown parameters with 400.
//
// Building the validator fails when the document itself is invalid.
func RequestValidator(swagger *openapi3.T, baseURL string) (echo.MiddlewareFunc, error) {
	if err := swagger.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("invalid OpenAPI document: %w", err)
	}

	// Routes are matched on the path without the base URL, so the relative
	// server entry is not needed for lookups.
	swagger.Servers = nil

	router, err := legacy.NewRouter(swagger)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		MultiError:         false,
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()
			if !strings.HasPrefix(req.URL.Path, baseURL+"/") {
				return next(ctx)
			}

			lookup := req.Clone(req.Context())
			lookup.URL.Path = strings.TrimPrefix(req.URL.Path, baseURL)
			lookup.URL.RawPath = ""

			route, pathParams, err := router.FindRoute(lookup)
			if err != nil {
				var routeErr *routers.RouteError
				if errors.As(err, &routeErr) {
					// Let echo answer 404/405 for paths the document does not describe.
					return next(ctx)
				}
				return badRequest(ctx, err.Error())
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return ctx.JSON(http.StatusBadRequest, servers.Error{
					Code:    http.StatusBadRequest,
					Message: contractViolation(err),
				})
			}
			return next(ctx)
		}
	}, nil
}

func contractViolation(err error) string {
	var requestErr *openapi3filter.RequestError
	if errors.As(err, &requestErr) {
		if requestErr.Parameter != nil {
			return "Invalid parameter " + requestErr.Parameter.Name
		}
		if requestErr.RequestBody != nil {
			return "Request body does not match the API contract"
		}
	}
	return "Request does not match the API contract"
}
