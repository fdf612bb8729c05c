package services

import (
	"wms/internal/core/domain/model/user"
	"wms/internal/core/domain/model/warehouse"
	"wms/internal/pkg/errs"
)

var (
	// ErrUserIsNotOwner is returned when a non-OWNER tries to list a warehouse.
	ErrUserIsNotOwner = errs.NewValueIsInvalidError("only users with the OWNER role can list warehouses")
	// ErrWarehouseOwnerMismatch is returned when the warehouse names a different owner.
	ErrWarehouseOwnerMismatch = errs.NewValueIsInvalidError("warehouse belongs to another owner")
)

// ListingPolicy decides whether a user may list warehouses and change an
// already listed one.
//
// Business rules:
//   - The user must be constructed and have the OWNER role
//   - A stored warehouse may only be changed by the owner it carries
//
// Example usage:
//
//	policy := NewListingPolicy()
//	if err := policy.CanList(owner); err != nil {
//	    return err
//	}
//	stored, _, _ := repo.Find(ctx, id)
//	if err := policy.Authorize(owner, stored); err != nil {
//	    return err
//	}
type ListingPolicy struct{}

func NewListingPolicy() ListingPolicy {
	return ListingPolicy{}
}

// CanList checks the user side of the rule only.
func (ListingPolicy) CanList(u *user.User) error {
	if err := u.Validate(); err != nil {
		return err
	}
	if !u.IsOwner() {
		return ErrUserIsNotOwner
	}
	return nil
}

// Authorize checks that u may change the stored warehouse w.
func (p ListingPolicy) Authorize(u *user.User, w *warehouse.Warehouse) error {
	if err := p.CanList(u); err != nil {
		return err
	}
	if err := w.Validate(); err != nil {
		return err
	}
	if !w.OwnerID().IsEqual(u.ID()) {
		return ErrWarehouseOwnerMismatch
	}
	return nil
}
