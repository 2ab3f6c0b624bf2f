// Package location provides the PickupLocation aggregate: a named physical
// site where customers collect their orders.
package location

import (
	"errors"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

// ErrPickupLocationIsNotConstructed is returned when a PickupLocation
// instance was not created through its factory functions.
var ErrPickupLocationIsNotConstructed = errors.New(
	"PickupLocation must be created via NewPickupLocation or RestorePickupLocation constructor")

// PickupLocation is a site where orders are handed over, referenced by many
// orders.
type PickupLocation struct {
	id   kernel.UUID
	name string

	guard guard.ConstructorGuard
}

// NewPickupLocation creates a pickup location with a non-empty name.
func NewPickupLocation(id kernel.UUID, name string) (*PickupLocation, error) {
	l := &PickupLocation{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setID(id),
		l.setName(name),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// RestorePickupLocation rehydrates a pickup location from persistence.
func RestorePickupLocation(id kernel.UUID, name string) (*PickupLocation, error) {
	return NewPickupLocation(id, name)
}

// Validate ensures the PickupLocation instance was properly constructed.
func (l *PickupLocation) Validate() error {
	if l == nil {
		return ErrPickupLocationIsNotConstructed
	}
	return l.guard.Validate(ErrPickupLocationIsNotConstructed)
}

// IsEqual compares two pickup locations by their unique identifiers.
func (l *PickupLocation) IsEqual(other *PickupLocation) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// ID returns the location's unique identifier.
func (l *PickupLocation) ID() kernel.UUID {
	return l.id
}

// Name returns the location's display name.
func (l *PickupLocation) Name() string {
	return l.name
}

func (l *PickupLocation) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *PickupLocation) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	l.name = name
	return nil
}
