package order

import (
	"errors"
	"fmt"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

// ErrOrderItemIsNotConstructed is returned when an OrderItem instance was not
// created through the NewOrderItem factory function.
var ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem constructor")

// OrderItem is a single product line on an order: a product reference, a
// positive quantity, and an optional free-text comment such as a dietary note.
// Within one order no two items may reference the same product; the Order
// aggregate enforces that invariant when items are attached.
type OrderItem struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	quantity  int
	comment   string

	guard guard.ConstructorGuard
}

// NewOrderItem creates an order line for the given product.
// Quantity must be greater than zero; comment may be empty.
func NewOrderItem(productID kernel.UUID, quantity int, comment string) (OrderItem, error) {
	item := OrderItem{
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setQuantity(quantity),
	); err != nil {
		return OrderItem{}, err
	}

	return item, nil
}

// Validate ensures the OrderItem was created through NewOrderItem.
func (i OrderItem) Validate() error {
	return i.guard.Validate(ErrOrderItemIsNotConstructed)
}

// ProductID returns the identifier of the referenced product.
func (i OrderItem) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the ordered amount.
func (i OrderItem) Quantity() int {
	return i.quantity
}

// Comment returns the optional line comment.
func (i OrderItem) Comment() string {
	return i.comment
}

func (i *OrderItem) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *OrderItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
