// Package location holds the reference data a warehouse address points to.
//
// Countries and cities are shared by many warehouses. Their names are
// natural keys: a country name is unique, and a city name is unique within
// its country. Lookups compare names exactly (case-sensitive), so "Sofia"
// and "sofia" are different cities.
//
// An Address is a value object owned by exactly one warehouse. It is not
// persisted on its own and disappears together with the warehouse.
package location
