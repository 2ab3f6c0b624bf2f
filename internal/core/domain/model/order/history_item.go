package order

import (
	"errors"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

// ErrHistoryItemIsNotConstructed is returned when a HistoryItem instance was
// not created through the NewHistoryItem factory function.
var ErrHistoryItemIsNotConstructed = errors.New("HistoryItem must be created via NewHistoryItem constructor")

// HistoryItem is one immutable entry in an order's audit log: who did what,
// when, and which status (if any) the order entered as a result. An entry
// with a nil status is purely informational, e.g. a comment left on the
// order.
type HistoryItem struct { //nolint:recvcheck //using for validation
	actorID   kernel.UUID
	message   string
	status    *Status
	timestamp time.Time

	guard guard.ConstructorGuard
}

// NewHistoryItem creates a history entry. The actor and message are required
// and the timestamp must be non-zero. Pass a nil status for informational
// entries that do not change the order's state.
func NewHistoryItem(actorID kernel.UUID, message string, status *Status, timestamp time.Time) (HistoryItem, error) {
	item := HistoryItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setActorID(actorID),
		item.setMessage(message),
		item.setStatus(status),
		item.setTimestamp(timestamp),
	); err != nil {
		return HistoryItem{}, err
	}

	return item, nil
}

// Validate ensures the HistoryItem was created through NewHistoryItem.
func (h HistoryItem) Validate() error {
	return h.guard.Validate(ErrHistoryItemIsNotConstructed)
}

// ActorID returns the identifier of the user who caused the entry.
func (h HistoryItem) ActorID() kernel.UUID {
	return h.actorID
}

// Message returns the human-readable description of the event.
func (h HistoryItem) Message() string {
	return h.message
}

// Status returns the status the order entered with this event, or nil for a
// purely informational entry.
func (h HistoryItem) Status() *Status {
	if h.status == nil {
		return nil
	}
	s := *h.status
	return &s
}

// Timestamp returns when the event occurred.
func (h HistoryItem) Timestamp() time.Time {
	return h.timestamp
}

func (h *HistoryItem) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	h.actorID = actorID
	return nil
}

func (h *HistoryItem) setMessage(message string) error {
	if message == "" {
		return errs.NewValueIsRequiredError("message")
	}
	h.message = message
	return nil
}

func (h *HistoryItem) setStatus(status *Status) error {
	if status == nil {
		return nil
	}
	if err := status.Validate(); err != nil {
		return err
	}
	s := *status
	h.status = &s
	return nil
}

func (h *HistoryItem) setTimestamp(timestamp time.Time) error {
	if timestamp.IsZero() {
		return errs.NewValueIsRequiredError("timestamp")
	}
	h.timestamp = timestamp
	return nil
}
