// Package warehouse contains the Warehouse aggregate, its rental Status and
// the StorageType value object.
//
// A warehouse is listed by an owner. It always references a city through its
// Address; the city and its country are shared reference data resolved by
// name before the warehouse is stored. A freshly listed warehouse is
// Available. Updates keep the identity, status and owner of the stored
// warehouse.
package warehouse
