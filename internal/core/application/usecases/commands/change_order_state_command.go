package commands

import (
	"errors"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/guard"
)

var ErrChangeOrderStateCommandIsNotConstructed = errors.New(
	"ChangeOrderStateCommand must be created via NewChangeOrderStateCommand constructor",
)

// ChangeOrderStateCommand represents a request to move an order to a new
// lifecycle state, optionally attaching a free-form comment from the acting
// staff user.
type ChangeOrderStateCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	actorID  kernel.UUID
	newState order.Status
	comment  string

	guard guard.ConstructorGuard
}

// NewChangeOrderStateCommand creates a command to change an order's state.
// Validates the identifiers and the target state; the comment may be empty.
func NewChangeOrderStateCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	newState order.Status,
	comment string,
) (ChangeOrderStateCommand, error) {
	stateCommand := ChangeOrderStateCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		stateCommand.setOrderID(orderID),
		stateCommand.setActorID(actorID),
		stateCommand.setNewState(newState),
	); err != nil {
		return ChangeOrderStateCommand{}, err
	}

	stateCommand.comment = comment
	return stateCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeOrderStateCommandIsNotConstructed if validation fails.
func (c ChangeOrderStateCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStateCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being updated.
func (c ChangeOrderStateCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the identifier of the staff user making the change.
func (c ChangeOrderStateCommand) ActorID() kernel.UUID {
	return c.actorID
}

// NewState returns the target lifecycle state.
func (c ChangeOrderStateCommand) NewState() order.Status {
	return c.newState
}

// Comment returns the optional free-form note attached to the change.
func (c ChangeOrderStateCommand) Comment() string {
	return c.comment
}

func (c *ChangeOrderStateCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStateCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *ChangeOrderStateCommand) setNewState(newState order.Status) error {
	if err := newState.Validate(); err != nil {
		return err
	}

	c.newState = newState
	return nil
}
