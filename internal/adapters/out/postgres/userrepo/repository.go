package userrepo

import (
	"context"

	"wms/internal/adapters/out/postgres/pgerrs"
	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/user"
	"wms/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormUserRepository creates a user repository bound to db.
func NewGormUserRepository(db *gorm.DB, tracker aggregateTracker) *GormUserRepository {
	return &GormUserRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new user. A taken email is reported as errs.ObjectAlreadyExistsError.
func (r *GormUserRepository) Add(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrs.TranslateWrite(err, "user with email "+aggregate.Email())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Find retrieves a user by ID.
func (r *GormUserRepository) Find(ctx context.Context, id kernel.UUID) (*user.User, bool, error) {
	if err := id.Validate(); err != nil {
		return nil, false, err
	}
	return r.findOne(ctx, "user", id.String(), "id = ?", id.Bytes())
}

// FindByEmail retrieves a user by its exact email.
func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, bool, error) {
	return r.findOne(ctx, "user", email, "email = ?", email)
}

func (r *GormUserRepository) findOne(ctx context.Context, param string, key any, query string, args ...any) (*user.User, bool, error) {
	var dtos []UserDTO
	if err := r.db.WithContext(ctx).Where(query, args...).Limit(2).Find(&dtos).Error; err != nil {
		return nil, false, err
	}

	switch len(dtos) {
	case 0:
		return nil, false, nil
	case 1:
		u, err := toDomain(dtos[0])
		if err != nil {
			return nil, false, err
		}
		return u, true, nil
	default:
		return nil, false, errs.NewAmbiguousResultError(param, key)
	}
}
