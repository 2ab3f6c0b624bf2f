package commands

import (
	"errors"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderItemsAreRequired = errors.New("order must contain at least one item")
)

// CreateOrderCommand represents a request to place a new bakery order.
// Encapsulates the customer contact details, pickup site, due date and time,
// and the product lines.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, staffID, customer, locationID, dueDate, dueTime, items)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	orderedByID      kernel.UUID
	customer         order.Customer
	pickupLocationID kernel.UUID
	dueDate          time.Time
	dueTime          kernel.TimeOfDay
	items            []order.OrderItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order. Validates the
// identifiers, the customer details, the due date and time, and that at least
// one valid item is present. Returns an error if any validation fails.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	orderedByID kernel.UUID,
	customer order.Customer,
	pickupLocationID kernel.UUID,
	dueDate time.Time,
	dueTime kernel.TimeOfDay,
	items []order.OrderItem,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setOrderedByID(orderedByID),
		orderCommand.setCustomer(customer),
		orderCommand.setPickupLocationID(pickupLocationID),
		orderCommand.setDueDate(dueDate),
		orderCommand.setDueTime(dueTime),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrderedByID returns the identifier of the staff user placing the order.
func (c CreateOrderCommand) OrderedByID() kernel.UUID {
	return c.orderedByID
}

// Customer returns the customer contact details.
func (c CreateOrderCommand) Customer() order.Customer {
	return c.customer
}

// PickupLocationID returns the identifier of the pickup site.
func (c CreateOrderCommand) PickupLocationID() kernel.UUID {
	return c.pickupLocationID
}

// DueDate returns the calendar day the order is due.
func (c CreateOrderCommand) DueDate() time.Time {
	return c.dueDate
}

// DueTime returns the wall-clock time the order is due.
func (c CreateOrderCommand) DueTime() kernel.TimeOfDay {
	return c.dueTime
}

// Items returns a copy of the requested product lines.
func (c CreateOrderCommand) Items() []order.OrderItem {
	items := make([]order.OrderItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOrderedByID(orderedByID kernel.UUID) error {
	if err := orderedByID.Validate(); err != nil {
		return err
	}

	c.orderedByID = orderedByID
	return nil
}

func (c *CreateOrderCommand) setCustomer(customer order.Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}

	c.customer = customer
	return nil
}

func (c *CreateOrderCommand) setPickupLocationID(pickupLocationID kernel.UUID) error {
	if err := pickupLocationID.Validate(); err != nil {
		return err
	}

	c.pickupLocationID = pickupLocationID
	return nil
}

func (c *CreateOrderCommand) setDueDate(dueDate time.Time) error {
	if dueDate.IsZero() {
		return errs.NewValueIsRequiredError("dueDate")
	}

	c.dueDate = dueDate
	return nil
}

func (c *CreateOrderCommand) setDueTime(dueTime kernel.TimeOfDay) error {
	if err := dueTime.Validate(); err != nil {
		return err
	}

	c.dueTime = dueTime
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.OrderItem) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = make([]order.OrderItem, len(items))
	copy(c.items, items)
	return nil
}
