// Package userrepo provides data transfer objects and mapping functions for user persistence.
// This package implements the repository pattern for the user domain aggregate, handling
// the conversion between domain entities and database representations.
package userrepo

import (
	"github.com/google/uuid"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/user"
)

// UserDTO represents the database structure for persisting user aggregates.
// Email carries a unique index because it doubles as the login name.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	FirstName    string    `gorm:"type:varchar(255);not null"`
	LastName     string    `gorm:"type:varchar(255);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         int       `gorm:"type:int;not null"`
	Locked       bool      `gorm:"not null"`
}

// TableName specifies the database table name for user entities.
// Overrides GORM's default naming convention to use "users" instead of "user_dtos".
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user domain aggregate to its database representation.
func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:           aggregate.ID().Bytes(),
		Email:        aggregate.Email(),
		FirstName:    aggregate.FirstName(),
		LastName:     aggregate.LastName(),
		PasswordHash: aggregate.PasswordHash(),
		Role:         int(aggregate.Role()),
		Locked:       aggregate.Locked(),
	}
}

// toDomain converts a database DTO to a user domain aggregate using RestoreUser.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(
		id, dto.Email, dto.FirstName, dto.LastName,
		dto.PasswordHash, user.Role(dto.Role), dto.Locked)
}
