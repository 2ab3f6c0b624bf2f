package queries

import (
	"context"

	"gorm.io/gorm"

	"bakery/internal/core/domain/model/order"
)

// GetDeliveryStatsQueryHandler computes the dashboard counters straight from
// the orders table, bypassing the aggregate layer for read efficiency.
//
// Example:
//
//	handler := NewGetDeliveryStatsQueryHandler(db)
//	query, _ := NewGetDeliveryStatsQuery(time.Now())
//
//	stats, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get delivery stats: %v", err)
//	    return err
//	}
type GetDeliveryStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryStatsQueryHandler creates a handler for dashboard counter queries.
// Requires a GORM database connection for query execution.
func NewGetDeliveryStatsQueryHandler(db *gorm.DB) GetDeliveryStatsQueryHandler {
	return GetDeliveryStatsQueryHandler{db: db}
}

// Handle executes the counter query. All five counters are computed in a
// single scan over the orders table.
func (h GetDeliveryStatsQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryStatsQuery,
) (GetDeliveryStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryStatsQueryResponse{}, err
	}

	today := query.Today()
	tomorrow := today.AddDate(0, 0, 1)

	var response GetDeliveryStatsQueryResponse
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) FILTER (WHERE due_date = ? AND status = ?)             AS delivered_today,
			COUNT(*) FILTER (WHERE due_date = ?)                            AS due_today,
			COUNT(*) FILTER (WHERE due_date = ?)                            AS due_tomorrow,
			COUNT(*) FILTER (WHERE due_date = ? AND status NOT IN (?, ?))   AS not_available_today,
			COUNT(*) FILTER (WHERE status = ?)                              AS new_orders
		FROM orders
	`,
		today, order.Delivered,
		today,
		tomorrow,
		today, order.Ready, order.Delivered,
		order.New,
	).Row()

	if err := row.Scan(
		&response.DeliveredToday,
		&response.DueToday,
		&response.DueTomorrow,
		&response.NotAvailableToday,
		&response.NewOrders,
	); err != nil {
		return GetDeliveryStatsQueryResponse{}, err
	}

	return response, nil
}
