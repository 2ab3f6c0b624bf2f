// Package product provides the Product aggregate: a baked good with a name
// and a price in integer minor currency units. Products are independently
// persisted and referenced by order items.
package product

import (
	"errors"
	"fmt"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through the NewProduct or RestoreProduct factory functions.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct constructor")

// Product is a baked good offered by the bakery. Price is stored in minor
// currency units (cents) to avoid floating point rounding.
type Product struct {
	id    kernel.UUID
	name  string
	price int

	guard guard.ConstructorGuard
}

// NewProduct creates a product with a non-empty name and a positive price in
// minor currency units.
func NewProduct(id kernel.UUID, name string, price int) (*Product, error) {
	p := &Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct rehydrates a product from persistence.
func RestoreProduct(id kernel.UUID, name string, price int) (*Product, error) {
	return NewProduct(id, name, price)
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the price in minor currency units.
func (p *Product) Price() int {
	return p.price
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price int) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%d is not greater than 0", price))
	}
	p.price = price
	return nil
}
