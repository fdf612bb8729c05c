package services

import (
	"context"
	"errors"
	"log/slog"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/user"
	"wms/internal/core/ports"
	"wms/internal/pkg/errs"
)

// UserService registers users and seeds administrator accounts.
type UserService struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	admins     []AdminAccount
	logger     *slog.Logger
}

// NewUserService creates the user service. admins are the accounts
// InitializeAdministrators makes sure exist.
func NewUserService(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	admins []AdminAccount,
	logger *slog.Logger,
) *UserService {
	return &UserService{
		uowFactory: uowFactory,
		hasher:     hasher,
		admins:     admins,
		logger:     logger.With("component", "user_service"),
	}
}

// RegisterUser creates an OWNER, AGENT or TENANT account from a submitted
// form. The role name is matched case-insensitively; ADMIN cannot be chosen.
func (s *UserService) RegisterUser(ctx context.Context, dto UserRegistrationDTO) (UserDTO, error) {
	role, err := user.ParseRole(dto.Role)
	if err == nil && !role.IsSelfRegistrable() {
		err = errs.NewValueIsInvalidError("role " + role.String() + " cannot be self-registered")
	}
	if err != nil {
		return UserDTO{}, s.registrationFailed(ctx, "Invalid role provided for user registration.", err)
	}

	construct, err := user.ConstructorFor(role)
	if err != nil {
		return UserDTO{}, s.registrationFailed(ctx, "Invalid role provided for user registration.", err)
	}

	hash, err := s.hasher.Hash(dto.Password)
	if err != nil {
		return UserDTO{}, s.registrationFailed(ctx, "Error hashing password for user registration.", err)
	}

	u, err := construct(kernel.NewUUID(), user.Profile{
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
		Email:     dto.Email,
		Phone:     dto.Phone,
	}, hash)
	if err != nil {
		return UserDTO{}, s.registrationFailed(ctx, "Invalid user data provided for registration.", err)
	}

	if err = s.add(ctx, u); err != nil {
		return UserDTO{}, s.registrationFailed(ctx, "Error persisting user during registration.", err)
	}

	s.logger.InfoContext(ctx, "User saved successfully", "email", u.Email(), "role", u.Role().String())
	return toUserDTO(u), nil
}

// InitializeAdministrators inserts every configured administrator that does
// not exist yet. Existing accounts are left as they are; a stored password or
// role that differs from the configuration is only reported, so repeated
// startups are harmless.
func (s *UserService) InitializeAdministrators(ctx context.Context) error {
	created := 0
	for _, admin := range s.admins {
		existing, ok, err := s.findByEmail(ctx, admin.Email)
		if err != nil {
			return s.registrationFailed(ctx, "Error looking up administrator account.", err)
		}
		if ok {
			s.checkAdministrator(ctx, existing, admin)
			continue
		}

		hash, err := s.hasher.Hash(admin.Password)
		if err != nil {
			return s.registrationFailed(ctx, "Error hashing administrator password.", err)
		}

		u, err := user.NewAdministrator(kernel.NewUUID(), user.Profile{
			FirstName: admin.FirstName,
			LastName:  admin.LastName,
			Email:     admin.Email,
			Phone:     admin.Phone,
		}, hash)
		if err != nil {
			return s.registrationFailed(ctx, "Invalid administrator account configuration.", err)
		}

		// Another instance may have inserted the account since the lookup.
		err = s.add(ctx, u)
		switch {
		case errors.Is(err, errs.ErrObjectAlreadyExists):
			s.logger.DebugContext(ctx, "Administrator already present", "email", u.Email())
		case err != nil:
			return s.registrationFailed(ctx, "Error persisting administrator account.", err)
		default:
			created++
		}
	}

	s.logger.InfoContext(ctx, "Administrators initialized", "configured", len(s.admins), "created", created)
	return nil
}

func (s *UserService) checkAdministrator(ctx context.Context, existing *user.User, admin AdminAccount) {
	if existing.Role() != user.Admin {
		s.logger.WarnContext(ctx, "Configured administrator email belongs to another role",
			"email", existing.Email(), "role", existing.Role().String())
		return
	}

	matches, err := s.hasher.Verify(admin.Password, existing.PasswordHash())
	switch {
	case err != nil:
		s.logger.WarnContext(ctx, "Stored administrator password could not be checked", "email", existing.Email(), "error", err)
	case !matches:
		s.logger.WarnContext(ctx, "Stored administrator password differs from configuration", "email", existing.Email())
	default:
		s.logger.DebugContext(ctx, "Administrator already present", "email", existing.Email())
	}
}

// GetUser returns the user with id.
func (s *UserService) GetUser(ctx context.Context, id kernel.UUID) (UserDTO, error) {
	var (
		found *user.User
		ok    bool
	)
	err := inUnitOfWork(ctx, s.uowFactory.Create(), func(uow UserUoW) error {
		var findErr error
		found, ok, findErr = uow.UserRepository().Find(ctx, id)
		return findErr
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "Error retrieving user", "id", id.String(), "error", err)
		return UserDTO{}, newUserServiceError("Error retrieving user", err)
	}
	if !ok {
		return UserDTO{}, newUserServiceError("User not found", errs.NewObjectNotFoundError("user", id.String()))
	}

	return toUserDTO(found), nil
}

func (s *UserService) findByEmail(ctx context.Context, email string) (*user.User, bool, error) {
	var (
		found *user.User
		ok    bool
	)
	err := inUnitOfWork(ctx, s.uowFactory.Create(), func(uow UserUoW) error {
		var findErr error
		found, ok, findErr = uow.UserRepository().FindByEmail(ctx, email)
		return findErr
	})
	return found, ok, err
}

func (s *UserService) add(ctx context.Context, u *user.User) error {
	return inUnitOfWork(ctx, s.uowFactory.Create(), func(uow UserUoW) error {
		return uow.UserRepository().Add(ctx, u)
	})
}

func (s *UserService) registrationFailed(ctx context.Context, message string, cause error) error {
	s.logger.ErrorContext(ctx, message, "error", cause)
	return newRegistrationError(message, cause)
}
