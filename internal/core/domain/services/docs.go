// Package services provides domain services for rules that span more than
// one aggregate.
//
// The package includes:
//   - ListingPolicy: decides whether a user may list or manage a warehouse
package services
