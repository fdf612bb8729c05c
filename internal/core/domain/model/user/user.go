package user

import (
	"errors"
	"strings"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/pkg/errs"
	"wms/internal/pkg/guard"
)

var (
	// ErrUserIsNotConstructed is returned when a User was not built by one of the constructors.
	ErrUserIsNotConstructed = errors.New("User must be created via a role constructor or RestoreUser")
)

// Profile holds the personal details copied from a registration form.
type Profile struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// User is the aggregate root for every account. Its role is chosen by the
// constructor that built it and cannot change afterwards.
type User struct {
	id           kernel.UUID
	profile      Profile
	passwordHash string
	role         Role
	guard        guard.ConstructorGuard
}

// Constructor builds a user of one specific role.
type Constructor func(id kernel.UUID, profile Profile, passwordHash string) (*User, error)

// ConstructorFor returns the constructor bound to role.
func ConstructorFor(role Role) (Constructor, error) {
	constructors := map[Role]Constructor{
		Owner:  NewOwner,
		Agent:  NewAgent,
		Tenant: NewTenant,
		Admin:  NewAdministrator,
	}
	c, ok := constructors[role]
	if !ok {
		return nil, role.Validate()
	}
	return c, nil
}

// NewOwner creates a user who can list and manage warehouses.
func NewOwner(id kernel.UUID, profile Profile, passwordHash string) (*User, error) {
	return newUser(id, profile, passwordHash, Owner)
}

// NewAgent creates a user acting on behalf of owners.
func NewAgent(id kernel.UUID, profile Profile, passwordHash string) (*User, error) {
	return newUser(id, profile, passwordHash, Agent)
}

// NewTenant creates a user who rents warehouses.
func NewTenant(id kernel.UUID, profile Profile, passwordHash string) (*User, error) {
	return newUser(id, profile, passwordHash, Tenant)
}

// NewAdministrator creates an ADMIN account. Only the startup seeding step calls it.
func NewAdministrator(id kernel.UUID, profile Profile, passwordHash string) (*User, error) {
	return newUser(id, profile, passwordHash, Admin)
}

// RestoreUser rebuilds a persisted user. The stored role picks the constructor.
func RestoreUser(id kernel.UUID, profile Profile, passwordHash string, role Role) (*User, error) {
	c, err := ConstructorFor(role)
	if err != nil {
		return nil, err
	}
	return c(id, profile, passwordHash)
}

func newUser(id kernel.UUID, profile Profile, passwordHash string, role Role) (*User, error) {
	u := &User{
		role:  role,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setProfile(profile),
		u.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate ensures the user was built by a constructor.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) ID() kernel.UUID {
	return u.id
}

func (u *User) FirstName() string {
	return u.profile.FirstName
}

func (u *User) LastName() string {
	return u.profile.LastName
}

func (u *User) Email() string {
	return u.profile.Email
}

func (u *User) Phone() string {
	return u.profile.Phone
}

// PasswordHash returns the encoded hash; the plaintext is never stored.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Role() Role {
	return u.role
}

func (u *User) IsOwner() bool {
	return u.role == Owner
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setProfile(p Profile) error {
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
	p.Email = strings.TrimSpace(p.Email)
	p.Phone = strings.TrimSpace(p.Phone)

	if p.Email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	u.profile = p
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}
	u.passwordHash = hash
	return nil
}
