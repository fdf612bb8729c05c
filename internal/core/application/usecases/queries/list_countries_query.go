// Package queries contains read operations that bypass the aggregates and
// return flat read models straight from SQL.
package queries

import (
	"errors"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/pkg/guard"
)

var (
	ErrListCountriesQueryIsNotConstructed = errors.New(
		"ListCountriesQuery must be created via NewListCountriesQuery constructor",
	)
)

// ListCountriesQuery lists the known countries with the number of cities
// recorded under each. The address form uses it for suggestions.
//
// Example:
//
//	handler := NewListCountriesQueryHandler(db)
//	countries, err := handler.Handle(ctx, NewListCountriesQuery())
//	if err != nil {
//	    return err
//	}
//	for _, c := range countries {
//	    fmt.Printf("%s (%d cities)\n", c.Name, c.Cities)
//	}
type ListCountriesQuery struct {
	guard guard.ConstructorGuard
}

func NewListCountriesQuery() ListCountriesQuery {
	return ListCountriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListCountriesQuery) Validate() error {
	return q.guard.Validate(ErrListCountriesQueryIsNotConstructed)
}

// ListCountriesQueryResponse is one country row of the read model.
type ListCountriesQueryResponse struct {
	ID     kernel.UUID
	Name   string
	Cities int64
}
