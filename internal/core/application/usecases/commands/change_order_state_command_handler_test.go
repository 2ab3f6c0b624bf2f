package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
)

func newStoredOrder(t *testing.T) *order.Order {
	t.Helper()

	customer, items, dueDate, dueTime := validOrderCommandParts(t)
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), customer, kernel.NewUUID(), dueDate, dueTime, dueTime.At(dueDate))
	require.NoError(t, err)
	require.NoError(t, o.SetItems(items))
	return o
}

func TestChangeOrderStateCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t)
	cmd, err := commands.NewChangeOrderStateCommand(stored.ID(), kernel.NewUUID(), order.Confirmed, "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		repo.On("Update", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStateCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.Equal(t, order.Confirmed, stored.Status())
	require.Len(t, stored.History(), 2)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestChangeOrderStateCommandHandler_Handle_WithComment(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t)
	cmd, err := commands.NewChangeOrderStateCommand(stored.ID(), kernel.NewUUID(), order.Problem, "oven broke down")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		repo.On("Update", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStateCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	history := stored.History()
	require.Len(t, history, 3)
	require.Nil(t, history[2].Status())
	require.Equal(t, "oven broke down", history[2].Message())
}

func TestChangeOrderStateCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ChangeOrderStateCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	h := commands.NewChangeOrderStateCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestChangeOrderStateCommandHandler_Handle_GetError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewChangeOrderStateCommand(kernel.NewUUID(), kernel.NewUUID(), order.Ready, "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, cmd.OrderID()).Return(nil, errors.New("not found")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStateCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestChangeOrderStateCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t)
	cmd, err := commands.NewChangeOrderStateCommand(stored.ID(), kernel.NewUUID(), order.Cancelled, "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		repo.On("Update", mock.Anything, stored).Return(errors.New("update error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStateCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

// The handler stamps both entries with the same wall-clock instant, so the
// comment never lands before the state change in the log.
func TestChangeOrderStateCommandHandler_CommentSharesTimestamp(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t)
	cmd, err := commands.NewChangeOrderStateCommand(stored.ID(), kernel.NewUUID(), order.Ready, "boxed and labeled")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(repo)
	repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil)
	repo.On("Update", mock.Anything, stored).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewChangeOrderStateCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	history := stored.History()
	require.Len(t, history, 3)
	require.True(t, history[2].Timestamp().Equal(history[1].Timestamp()))
}
