package order

import (
	"errors"
	"fmt"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrDuplicateProduct is returned when two items on the same order reference
	// the same product.
	ErrDuplicateProduct = errors.New("order items must reference distinct products")

	// ErrHistoryIsEmpty is returned when an order's history log would end up empty.
	ErrHistoryIsEmpty = errors.New("order history must contain at least one entry")

	// ErrHistoryIsNotSorted is returned when history entries are not ordered by
	// non-decreasing timestamp.
	ErrHistoryIsNotSorted = errors.New("order history must be sorted by timestamp ascending")
)

// Order is the aggregate root for a bakery purchase. It owns the customer
// contact details, references a pickup location and the ordering actor,
// carries the product lines, and keeps an append-only audit log of state
// changes ordered by timestamp.
//
// Invariants:
//   - Every state change appends exactly one history entry recording the new
//     status, the acting user, and a message.
//   - History is ordered by non-decreasing timestamp and never empty.
//   - No two items reference the same product.
//
// State transitions are not validated for reachability: ChangeState accepts
// any defined status, matching the permissive lifecycle contract of the
// order screens built on top of it.
type Order struct {
	id               kernel.UUID
	orderedByID      kernel.UUID
	customer         Customer
	pickupLocationID kernel.UUID
	dueDate          time.Time
	dueTime          kernel.TimeOfDay
	status           Status
	items            []OrderItem
	history          []HistoryItem

	guard guard.ConstructorGuard
}

// NewOrder creates an order in New status with an initial "Order placed"
// history entry recorded for the ordering actor at placedAt. Items are
// attached separately via SetItems.
func NewOrder(
	id kernel.UUID,
	orderedByID kernel.UUID,
	customer Customer,
	pickupLocationID kernel.UUID,
	dueDate time.Time,
	dueTime kernel.TimeOfDay,
	placedAt time.Time,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderedByID(orderedByID),
		o.setCustomer(customer),
		o.setPickupLocationID(pickupLocationID),
		o.setDueDate(dueDate),
		o.setDueTime(dueTime),
	); err != nil {
		return nil, err
	}

	o.status = New
	placed, err := NewHistoryItem(orderedByID, New.HistoryMessage(), statusRef(New), placedAt)
	if err != nil {
		return nil, err
	}
	o.history = []HistoryItem{placed}

	return o, nil
}

// RestoreOrder rehydrates an order from persistence. All invariants are
// re-checked so that invalid rows cannot produce an invalid aggregate.
func RestoreOrder(
	id kernel.UUID,
	orderedByID kernel.UUID,
	customer Customer,
	pickupLocationID kernel.UUID,
	dueDate time.Time,
	dueTime kernel.TimeOfDay,
	status Status,
	items []OrderItem,
	history []HistoryItem,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderedByID(orderedByID),
		o.setCustomer(customer),
		o.setPickupLocationID(pickupLocationID),
		o.setDueDate(dueDate),
		o.setDueTime(dueTime),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	if err := o.SetItems(items); err != nil {
		return nil, err
	}
	if err := o.SetHistory(history); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderedBy returns the identifier of the user who placed the order.
func (o *Order) OrderedBy() kernel.UUID {
	return o.orderedByID
}

// Customer returns the embedded customer contact details.
func (o *Order) Customer() Customer {
	return o.customer
}

// PickupLocation returns the identifier of the referenced pickup location.
func (o *Order) PickupLocation() kernel.UUID {
	return o.pickupLocationID
}

// DueDate returns the calendar day the order is due.
func (o *Order) DueDate() time.Time {
	return o.dueDate
}

// DueTime returns the wall-clock time the order is due.
func (o *Order) DueTime() kernel.TimeOfDay {
	return o.dueTime
}

// DueAt returns the due time anchored on the due date.
func (o *Order) DueAt() time.Time {
	return o.dueTime.At(o.dueDate)
}

// Status returns the current lifecycle status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Items returns a copy of the order's product lines.
func (o *Order) Items() []OrderItem {
	items := make([]OrderItem, len(o.items))
	copy(items, o.items)
	return items
}

// History returns a copy of the order's audit log, sorted by timestamp.
func (o *Order) History() []HistoryItem {
	history := make([]HistoryItem, len(o.history))
	copy(history, o.history)
	return history
}

// ChangeState moves the order to newStatus and appends exactly one history
// entry recording the acting user, the status message, and the given time.
// Reachability of the transition is deliberately not checked.
func (o *Order) ChangeState(actorID kernel.UUID, newStatus Status, at time.Time) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	entry, err := NewHistoryItem(actorID, newStatus.HistoryMessage(), statusRef(newStatus), at)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.history = append(o.history, entry)
	return nil
}

// AddComment appends an informational history entry that does not change the
// order's status.
func (o *Order) AddComment(actorID kernel.UUID, message string, at time.Time) error {
	entry, err := NewHistoryItem(actorID, message, nil, at)
	if err != nil {
		return err
	}

	o.history = append(o.history, entry)
	return nil
}

// SetDueTime reschedules the wall-clock time the order is due.
func (o *Order) SetDueTime(dueTime kernel.TimeOfDay) error {
	return o.setDueTime(dueTime)
}

// SetItems replaces the order's product lines. Each item must be valid and
// no two items may reference the same product.
func (o *Order) SetItems(items []OrderItem) error {
	seen := make(map[kernel.UUID]struct{}, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if _, ok := seen[item.ProductID()]; ok {
			return fmt.Errorf("%w: product %s", ErrDuplicateProduct, item.ProductID())
		}
		seen[item.ProductID()] = struct{}{}
	}

	o.items = make([]OrderItem, len(items))
	copy(o.items, items)
	return nil
}

// SetHistory replaces the order's audit log wholesale. It exists for
// persistence rehydration and for the demo-data synthesizer, which rebuilds
// backdated histories; entries must be valid, non-empty, and sorted by
// non-decreasing timestamp.
func (o *Order) SetHistory(history []HistoryItem) error {
	if len(history) == 0 {
		return ErrHistoryIsEmpty
	}

	for i, entry := range history {
		if err := entry.Validate(); err != nil {
			return err
		}
		if i > 0 && entry.Timestamp().Before(history[i-1].Timestamp()) {
			return ErrHistoryIsNotSorted
		}
	}

	o.history = make([]HistoryItem, len(history))
	copy(o.history, history)
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderedByID(orderedByID kernel.UUID) error {
	if err := orderedByID.Validate(); err != nil {
		return err
	}
	o.orderedByID = orderedByID
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setPickupLocationID(pickupLocationID kernel.UUID) error {
	if err := pickupLocationID.Validate(); err != nil {
		return err
	}
	o.pickupLocationID = pickupLocationID
	return nil
}

func (o *Order) setDueDate(dueDate time.Time) error {
	if dueDate.IsZero() {
		return errs.NewValueIsRequiredError("dueDate")
	}
	o.dueDate = dueDate
	return nil
}

func (o *Order) setDueTime(dueTime kernel.TimeOfDay) error {
	if err := dueTime.Validate(); err != nil {
		return err
	}
	o.dueTime = dueTime
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// statusRef returns a pointer to a copy of s, for history entries.
func statusRef(s Status) *Status {
	return &s
}
