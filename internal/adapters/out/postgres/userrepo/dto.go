// Package userrepo persists user aggregates of every role in a single
// "users" table discriminated by the role column.
package userrepo

import (
	"time"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO is the database row of a user. Email is unique across all roles.
type UserDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName string    `gorm:"type:varchar(100)"`
	LastName  string    `gorm:"type:varchar(100)"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Password  string    `gorm:"type:varchar(255);not null"`
	Phone     string    `gorm:"type:varchar(20)"`
	Role      string    `gorm:"type:varchar(16);not null;index"`
	CreatedAt time.Time
}

// TableName overrides GORM's default "user_dtos".
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:        u.ID().Bytes(),
		FirstName: u.FirstName(),
		LastName:  u.LastName(),
		Email:     u.Email(),
		Password:  u.PasswordHash(),
		Phone:     u.Phone(),
		Role:      u.Role().String(),
	}
}

// toDomain restores the user through the constructor of its stored role.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := user.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, user.Profile{
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
		Email:     dto.Email,
		Phone:     dto.Phone,
	}, dto.Password, role)
}
