// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

var ErrGetDeliveryStatsQueryIsNotConstructed = errors.New(
	"GetDeliveryStatsQuery must be created via NewGetDeliveryStatsQuery constructor",
)

// GetDeliveryStatsQuery retrieves the dashboard counters for a given calendar
// day: deliveries completed, orders due, and orders at risk.
//
// Example:
//
//	query, err := queries.NewGetDeliveryStatsQuery(time.Now())
//	if err != nil {
//	    return err
//	}
//
//	stats, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get delivery stats: %w", err)
//	}
//	fmt.Printf("%d orders due today, %d not available\n", stats.DueToday, stats.NotAvailableToday)
type GetDeliveryStatsQuery struct {
	today time.Time

	guard guard.ConstructorGuard
}

// NewGetDeliveryStatsQuery creates a query anchored on the given day.
// The time-of-day portion is ignored; only the calendar date matters.
func NewGetDeliveryStatsQuery(today time.Time) (GetDeliveryStatsQuery, error) {
	if today.IsZero() {
		return GetDeliveryStatsQuery{}, errs.NewValueIsRequiredError("today")
	}

	return GetDeliveryStatsQuery{
		today: time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location()),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDeliveryStatsQueryIsNotConstructed if validation fails.
func (q GetDeliveryStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryStatsQueryIsNotConstructed)
}

// Today returns the day the counters are anchored on, truncated to midnight.
func (q GetDeliveryStatsQuery) Today() time.Time {
	return q.today
}

// GetDeliveryStatsQueryResponse carries the dashboard counters.
//
// NotAvailableToday counts orders due today that are neither ready for pickup
// nor already delivered, so the front desk can chase them.
type GetDeliveryStatsQueryResponse struct {
	DeliveredToday    int
	DueToday          int
	DueTomorrow       int
	NotAvailableToday int
	NewOrders         int
}
