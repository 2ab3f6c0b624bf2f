// Package locationrepo provides data transfer objects and mapping functions for
// pickup location persistence.
package locationrepo

import (
	"github.com/google/uuid"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/location"
)

// PickupLocationDTO represents the database structure for persisting pickup locations.
type PickupLocationDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(255);not null"`
}

// TableName specifies the database table name for pickup location entities.
func (PickupLocationDTO) TableName() string {
	return "pickup_locations"
}

// fromDomain converts a pickup location domain aggregate to its database representation.
func fromDomain(aggregate *location.PickupLocation) PickupLocationDTO {
	return PickupLocationDTO{
		ID:   aggregate.ID().Bytes(),
		Name: aggregate.Name(),
	}
}

// toDomain converts a database DTO to a pickup location domain aggregate.
func toDomain(dto PickupLocationDTO) (*location.PickupLocation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return location.RestorePickupLocation(id, dto.Name)
}
