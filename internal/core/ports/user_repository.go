// Package ports defines the contracts between the application core and its
// infrastructure: repositories for every aggregate root, the unit of work
// that binds them to one transaction, and the password hasher.
package ports

import (
	"context"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/user"
)

// UserRepository persists user aggregates of every role.
type UserRepository interface {
	// Add inserts a new user. A taken email yields errs.ErrObjectAlreadyExists.
	Add(ctx context.Context, aggregate *user.User) error

	// Find returns the user with id. A missing user is (nil, false, nil).
	Find(ctx context.Context, id kernel.UUID) (*user.User, bool, error)

	// FindByEmail looks a user up by its unique email.
	FindByEmail(ctx context.Context, email string) (*user.User, bool, error)
}
