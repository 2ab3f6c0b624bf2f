// Package ports defines repository interfaces for the bakery domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
type UserRepository interface {
	// Add persists a new user aggregate to storage.
	// The user must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves a user aggregate by its unique email address.
	GetByEmail(ctx context.Context, email string) (*user.User, error)

	// Count returns the total number of stored users. The demo-data seeding
	// command uses it to decide whether the database is still empty.
	Count(ctx context.Context) (int64, error)
}
