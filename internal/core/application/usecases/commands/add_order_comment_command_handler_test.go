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

func TestAddOrderCommentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t)
	cmd, err := commands.NewAddOrderCommentCommand(stored.ID(), kernel.NewUUID(), "gift wrap requested")
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

	h := commands.NewAddOrderCommentCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	history := stored.History()
	require.Len(t, history, 2)
	require.Nil(t, history[1].Status())
	require.Equal(t, "gift wrap requested", history[1].Message())
	require.Equal(t, order.New, stored.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAddOrderCommentCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AddOrderCommentCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	h := commands.NewAddOrderCommentCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestAddOrderCommentCommandHandler_Handle_GetError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddOrderCommentCommand(kernel.NewUUID(), kernel.NewUUID(), "note")
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

	h := commands.NewAddOrderCommentCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
