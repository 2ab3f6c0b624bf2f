package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
)

func validOrderCommandParts(t *testing.T) (order.Customer, []order.OrderItem, time.Time, kernel.TimeOfDay) {
	t.Helper()

	customer, err := order.NewCustomer("Jane Smith", "+1-555-0101", "")
	require.NoError(t, err)

	item, err := order.NewOrderItem(kernel.NewUUID(), 2, "")
	require.NoError(t, err)

	dueTime, err := kernel.NewTimeOfDay(12, 0)
	require.NoError(t, err)

	dueDate := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	return customer, []order.OrderItem{item}, dueDate, dueTime
}

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	customer, items, dueDate, dueTime := validOrderCommandParts(t)
	orderID := kernel.NewUUID()
	staffID := kernel.NewUUID()
	locationID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(orderID, staffID, customer, locationID, dueDate, dueTime, items)

	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
	assert.True(t, cmd.OrderID().IsEqual(orderID))
	assert.True(t, cmd.OrderedByID().IsEqual(staffID))
	assert.True(t, cmd.PickupLocationID().IsEqual(locationID))
	assert.Equal(t, customer, cmd.Customer())
	assert.True(t, cmd.DueDate().Equal(dueDate))
	assert.Equal(t, dueTime, cmd.DueTime())
	assert.Equal(t, items, cmd.Items())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	customer, items, dueDate, dueTime := validOrderCommandParts(t)

	_, err := commands.NewCreateOrderCommand(
		kernel.UUID{}, kernel.NewUUID(), customer, kernel.NewUUID(), dueDate, dueTime, items)

	require.Error(t, err)
}

func TestNewCreateOrderCommand_InvalidCustomer(t *testing.T) {
	_, items, dueDate, dueTime := validOrderCommandParts(t)

	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), order.Customer{}, kernel.NewUUID(), dueDate, dueTime, items)

	require.Error(t, err)
}

func TestNewCreateOrderCommand_ZeroDueDate(t *testing.T) {
	customer, items, _, dueTime := validOrderCommandParts(t)

	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), customer, kernel.NewUUID(), time.Time{}, dueTime, items)

	require.Error(t, err)
}

func TestNewCreateOrderCommand_EmptyItems(t *testing.T) {
	customer, _, dueDate, dueTime := validOrderCommandParts(t)

	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), customer, kernel.NewUUID(), dueDate, dueTime, nil)

	require.ErrorIs(t, err, commands.ErrOrderItemsAreRequired)
}

func TestCreateOrderCommand_Validate_WhenNotConstructed_ShouldReturnError(t *testing.T) {
	var cmd commands.CreateOrderCommand

	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
