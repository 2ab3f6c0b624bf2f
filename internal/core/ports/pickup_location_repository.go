package ports

import (
	"context"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/location"
)

// PickupLocationRepository defines the persistence contract for pickup
// location aggregates.
type PickupLocationRepository interface {
	// Add persists a new pickup location aggregate to storage.
	Add(ctx context.Context, aggregate *location.PickupLocation) error

	// Get retrieves a pickup location aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*location.PickupLocation, error)

	// GetAll retrieves all pickup locations ordered by name.
	GetAll(ctx context.Context) ([]*location.PickupLocation, error)
}
