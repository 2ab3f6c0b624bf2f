package ports

import (
	"context"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// together with their items and history log.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, replacing its
	// items and appending any new history entries.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its items and full history log.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllDueOn retrieves all orders whose due date falls on the given
	// calendar day, ordered by due time ascending.
	GetAllDueOn(ctx context.Context, day time.Time) ([]*order.Order, error)
}
