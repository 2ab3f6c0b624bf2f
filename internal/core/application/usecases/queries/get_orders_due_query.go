package queries

import (
	"errors"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

var ErrGetOrdersDueQueryIsNotConstructed = errors.New(
	"GetOrdersDueQuery must be created via NewGetOrdersDueQuery constructor",
)

// GetOrdersDueQuery retrieves a pickup-desk work list: every order due on a
// given calendar day, sorted by due time.
//
// Example:
//
//	query, err := queries.NewGetOrdersDueQuery(time.Now())
//	if err != nil {
//	    return err
//	}
//
//	dueOrders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get due orders: %w", err)
//	}
//	for _, o := range dueOrders {
//	    fmt.Printf("%s %s (%s)\n", o.DueTime, o.CustomerFullName, o.Status)
//	}
type GetOrdersDueQuery struct {
	day time.Time

	guard guard.ConstructorGuard
}

// NewGetOrdersDueQuery creates a query for orders due on the given day.
// The time-of-day portion is ignored; only the calendar date matters.
func NewGetOrdersDueQuery(day time.Time) (GetOrdersDueQuery, error) {
	if day.IsZero() {
		return GetOrdersDueQuery{}, errs.NewValueIsRequiredError("day")
	}

	return GetOrdersDueQuery{
		day:   time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location()),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersDueQueryIsNotConstructed if validation fails.
func (q GetOrdersDueQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersDueQueryIsNotConstructed)
}

// Day returns the day being queried, truncated to midnight.
func (q GetOrdersDueQuery) Day() time.Time {
	return q.day
}

// GetOrdersDueQueryResponse represents one row of the pickup-desk work list.
type GetOrdersDueQueryResponse struct {
	ID                 kernel.UUID
	CustomerFullName   string
	CustomerPhone      string
	DueTime            kernel.TimeOfDay
	Status             order.Status
	PickupLocationName string
}
