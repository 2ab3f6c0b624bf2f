package commands

import (
	"errors"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

var ErrAddOrderCommentCommandIsNotConstructed = errors.New(
	"AddOrderCommentCommand must be created via NewAddOrderCommentCommand constructor",
)

// AddOrderCommentCommand represents a request to attach a free-form note to
// an order's history log without changing its state.
type AddOrderCommentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID
	message string

	guard guard.ConstructorGuard
}

// NewAddOrderCommentCommand creates a command to comment on an order.
// Validates the identifiers and that the message is not empty.
func NewAddOrderCommentCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	message string,
) (AddOrderCommentCommand, error) {
	commentCommand := AddOrderCommentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		commentCommand.setOrderID(orderID),
		commentCommand.setActorID(actorID),
		commentCommand.setMessage(message),
	); err != nil {
		return AddOrderCommentCommand{}, err
	}

	return commentCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddOrderCommentCommandIsNotConstructed if validation fails.
func (c AddOrderCommentCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderCommentCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being commented on.
func (c AddOrderCommentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the identifier of the commenting staff user.
func (c AddOrderCommentCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Message returns the comment text.
func (c AddOrderCommentCommand) Message() string {
	return c.message
}

func (c *AddOrderCommentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddOrderCommentCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *AddOrderCommentCommand) setMessage(message string) error {
	if message == "" {
		return errs.NewValueIsRequiredError("message")
	}

	c.message = message
	return nil
}
