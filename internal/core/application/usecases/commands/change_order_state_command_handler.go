package commands

import (
	"context"
	"time"
)

// ChangeOrderStateCommandHandler handles lifecycle transitions for existing
// orders. Loads the aggregate, applies the state change and optional comment,
// and persists the result in one transaction.
type ChangeOrderStateCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeOrderStateCommandHandler creates a handler for order state changes.
// Requires an OrderUoWFactory for transactional persistence.
func NewChangeOrderStateCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStateCommandHandler {
	return ChangeOrderStateCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the state change command. The state change and the
// optional comment each append one history entry; both are persisted
// atomically via Update.
func (h *ChangeOrderStateCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStateCommand) error {
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

	now := time.Now()
	if err = aggregate.ChangeState(cmd.ActorID(), cmd.NewState(), now); err != nil {
		return err
	}
	if comment := cmd.Comment(); comment != "" {
		if err = aggregate.AddComment(cmd.ActorID(), comment, now); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
