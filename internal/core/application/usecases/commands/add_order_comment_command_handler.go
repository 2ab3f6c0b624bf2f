package commands

import (
	"context"
	"time"
)

// AddOrderCommentCommandHandler handles attaching informational notes to an
// order's history log.
type AddOrderCommentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddOrderCommentCommandHandler creates a handler for order comments.
// Requires an OrderUoWFactory for transactional persistence.
func NewAddOrderCommentCommandHandler(uowFactory OrderUoWFactory) AddOrderCommentCommandHandler {
	return AddOrderCommentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the comment command. The comment appends one history entry
// with no status, leaving the order's state untouched.
func (h *AddOrderCommentCommandHandler) Handle(ctx context.Context, cmd AddOrderCommentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.AddComment(cmd.ActorID(), cmd.Message(), time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
