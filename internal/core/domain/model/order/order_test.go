package order_test

import (
	"testing"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCustomer(t *testing.T) order.Customer {
	t.Helper()
	customer, err := order.NewCustomer("Amanda Carter", "+1-555-0042", "")
	require.NoError(t, err)
	return customer
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()

	dueDate := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	dueTime, err := kernel.NewTimeOfDay(12, 0)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		newTestCustomer(t),
		kernel.NewUUID(),
		dueDate,
		dueTime,
		dueDate.AddDate(0, 0, -3).Add(9*time.Hour),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("starts in New status with a placed history entry", func(t *testing.T) {
		o := newTestOrder(t)

		assert.Equal(t, order.New, o.Status())

		history := o.History()
		require.Len(t, history, 1)
		assert.Equal(t, "Order placed", history[0].Message())
		require.NotNil(t, history[0].Status())
		assert.Equal(t, order.New, *history[0].Status())
	})

	t.Run("rejects invalid inputs", func(t *testing.T) {
		dueDate := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
		dueTime, err := kernel.NewTimeOfDay(8, 0)
		require.NoError(t, err)

		_, err = order.NewOrder(
			kernel.UUID{}, // invalid id
			kernel.NewUUID(),
			newTestCustomer(t),
			kernel.NewUUID(),
			dueDate,
			dueTime,
			dueDate,
		)
		require.Error(t, err)

		_, err = order.NewOrder(
			kernel.NewUUID(),
			kernel.NewUUID(),
			order.Customer{}, // not constructed
			kernel.NewUUID(),
			dueDate,
			dueTime,
			dueDate,
		)
		require.Error(t, err)

		_, err = order.NewOrder(
			kernel.NewUUID(),
			kernel.NewUUID(),
			newTestCustomer(t),
			kernel.NewUUID(),
			time.Time{}, // no due date
			dueTime,
			dueDate,
		)
		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("constructed order is valid", func(t *testing.T) {
		require.NoError(t, newTestOrder(t).Validate())
	})

	t.Run("zero value order is invalid", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil order is invalid", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_ChangeState(t *testing.T) {
	t.Run("appends exactly one history entry per change", func(t *testing.T) {
		o := newTestOrder(t)
		actor := kernel.NewUUID()
		at := o.DueAt().Add(-24 * time.Hour)

		require.NoError(t, o.ChangeState(actor, order.Confirmed, at))

		assert.Equal(t, order.Confirmed, o.Status())
		history := o.History()
		require.Len(t, history, 2)
		assert.Equal(t, "Order confirmed", history[1].Message())
		assert.Equal(t, actor, history[1].ActorID())
		require.NotNil(t, history[1].Status())
		assert.Equal(t, order.Confirmed, *history[1].Status())
		assert.Equal(t, at, history[1].Timestamp())
	})

	t.Run("does not validate transition reachability", func(t *testing.T) {
		o := newTestOrder(t)

		// New -> Delivered is contextually odd but deliberately allowed.
		require.NoError(t, o.ChangeState(kernel.NewUUID(), order.Delivered, o.DueAt()))
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("rejects undefined statuses", func(t *testing.T) {
		o := newTestOrder(t)

		require.Error(t, o.ChangeState(kernel.NewUUID(), order.Unknown, o.DueAt()))
		require.Error(t, o.ChangeState(kernel.NewUUID(), order.Status(42), o.DueAt()))
		assert.Equal(t, order.New, o.Status())
		assert.Len(t, o.History(), 1)
	})
}

func TestOrder_AddComment(t *testing.T) {
	o := newTestOrder(t)
	actor := kernel.NewUUID()

	require.NoError(t, o.AddComment(actor, "Customer called to ask about allergens", o.DueAt()))

	history := o.History()
	require.Len(t, history, 2)
	assert.Nil(t, history[1].Status())
	assert.Equal(t, order.New, o.Status())
}

func TestOrder_SetItems(t *testing.T) {
	t.Run("accepts distinct products", func(t *testing.T) {
		o := newTestOrder(t)

		itemA, err := order.NewOrderItem(kernel.NewUUID(), 2, "")
		require.NoError(t, err)
		itemB, err := order.NewOrderItem(kernel.NewUUID(), 1, "Gluten free")
		require.NoError(t, err)

		require.NoError(t, o.SetItems([]order.OrderItem{itemA, itemB}))
		assert.Len(t, o.Items(), 2)
	})

	t.Run("rejects duplicate product references", func(t *testing.T) {
		o := newTestOrder(t)
		productID := kernel.NewUUID()

		itemA, err := order.NewOrderItem(productID, 2, "")
		require.NoError(t, err)
		itemB, err := order.NewOrderItem(productID, 5, "")
		require.NoError(t, err)

		err = o.SetItems([]order.OrderItem{itemA, itemB})
		require.ErrorIs(t, err, order.ErrDuplicateProduct)
	})

	t.Run("rejects unconstructed items", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.SetItems([]order.OrderItem{{}})
		require.Error(t, err)
	})

	t.Run("returned items are a copy", func(t *testing.T) {
		o := newTestOrder(t)
		item, err := order.NewOrderItem(kernel.NewUUID(), 1, "")
		require.NoError(t, err)
		require.NoError(t, o.SetItems([]order.OrderItem{item}))

		items := o.Items()
		items[0] = order.OrderItem{}

		assert.NotEqual(t, items[0], o.Items()[0])
	})
}

func TestOrder_SetHistory(t *testing.T) {
	actor := kernel.NewUUID()
	base := time.Date(2024, time.June, 12, 9, 0, 0, 0, time.UTC)

	entry := func(t *testing.T, s order.Status, at time.Time) order.HistoryItem {
		t.Helper()
		status := s
		item, err := order.NewHistoryItem(actor, s.HistoryMessage(), &status, at)
		require.NoError(t, err)
		return item
	}

	t.Run("accepts entries sorted by timestamp", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.SetHistory([]order.HistoryItem{
			entry(t, order.New, base),
			entry(t, order.Confirmed, base.Add(4*time.Hour)),
			entry(t, order.Ready, base.Add(30*time.Hour)),
		})

		require.NoError(t, err)
		assert.Len(t, o.History(), 3)
	})

	t.Run("rejects empty history", func(t *testing.T) {
		o := newTestOrder(t)
		require.ErrorIs(t, o.SetHistory(nil), order.ErrHistoryIsEmpty)
	})

	t.Run("rejects unsorted history", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.SetHistory([]order.HistoryItem{
			entry(t, order.Confirmed, base.Add(4*time.Hour)),
			entry(t, order.New, base),
		})

		require.ErrorIs(t, err, order.ErrHistoryIsNotSorted)
	})

	t.Run("allows equal timestamps", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.SetHistory([]order.HistoryItem{
			entry(t, order.New, base),
			entry(t, order.Cancelled, base),
		})

		require.NoError(t, err)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("round trips a built-up order", func(t *testing.T) {
		o := newTestOrder(t)
		item, err := order.NewOrderItem(kernel.NewUUID(), 3, "Lactose free")
		require.NoError(t, err)
		require.NoError(t, o.SetItems([]order.OrderItem{item}))
		require.NoError(t, o.ChangeState(kernel.NewUUID(), order.Confirmed, o.DueAt()))

		restored, err := order.RestoreOrder(
			o.ID(),
			o.OrderedBy(),
			o.Customer(),
			o.PickupLocation(),
			o.DueDate(),
			o.DueTime(),
			o.Status(),
			o.Items(),
			o.History(),
		)

		require.NoError(t, err)
		assert.True(t, o.IsEqual(restored))
		assert.Equal(t, o.Status(), restored.Status())
		assert.Equal(t, o.Items(), restored.Items())
		assert.Equal(t, o.History(), restored.History())
	})

	t.Run("rejects empty history", func(t *testing.T) {
		o := newTestOrder(t)

		_, err := order.RestoreOrder(
			o.ID(), o.OrderedBy(), o.Customer(), o.PickupLocation(),
			o.DueDate(), o.DueTime(), o.Status(), nil, nil,
		)

		require.ErrorIs(t, err, order.ErrHistoryIsEmpty)
	})
}

func TestNewCustomer(t *testing.T) {
	t.Run("requires full name and phone", func(t *testing.T) {
		_, err := order.NewCustomer("", "+1-555-0001", "")
		require.Error(t, err)

		_, err = order.NewCustomer("Ori Chen", "", "")
		require.Error(t, err)
	})

	t.Run("details are optional", func(t *testing.T) {
		customer, err := order.NewCustomer("Ori Chen", "+1-555-0001", "Very important customer")
		require.NoError(t, err)
		assert.Equal(t, "Very important customer", customer.Details())
	})
}

func TestNewOrderItem(t *testing.T) {
	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := order.NewOrderItem(kernel.NewUUID(), 0, "")
		require.Error(t, err)

		_, err = order.NewOrderItem(kernel.NewUUID(), -1, "")
		require.Error(t, err)
	})

	t.Run("rejects invalid product reference", func(t *testing.T) {
		_, err := order.NewOrderItem(kernel.UUID{}, 1, "")
		require.Error(t, err)
	})
}

func TestNewHistoryItem(t *testing.T) {
	actor := kernel.NewUUID()
	at := time.Date(2024, time.June, 15, 8, 0, 0, 0, time.UTC)

	t.Run("status is copied, not aliased", func(t *testing.T) {
		status := order.Ready
		item, err := order.NewHistoryItem(actor, "Order ready for pickup", &status, at)
		require.NoError(t, err)

		status = order.Cancelled

		require.NotNil(t, item.Status())
		assert.Equal(t, order.Ready, *item.Status())
	})

	t.Run("requires message and timestamp", func(t *testing.T) {
		_, err := order.NewHistoryItem(actor, "", nil, at)
		require.Error(t, err)

		_, err = order.NewHistoryItem(actor, "Order placed", nil, time.Time{})
		require.Error(t, err)
	})

	t.Run("rejects invalid status values", func(t *testing.T) {
		bad := order.Status(42)
		_, err := order.NewHistoryItem(actor, "Order updated", &bad, at)
		require.Error(t, err)
	})
}
