// Package kernel provides the domain primitives shared by every aggregate of the
// warehouse management system. Today that is the UUID value object used as the
// surrogate identifier of users, countries, cities and warehouses.
package kernel
