package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
)

// GetOrdersDueQueryHandler retrieves the day's order work list from the
// database, joining in the pickup location name for display.
//
// Example:
//
//	handler := NewGetOrdersDueQueryHandler(db)
//	query, _ := NewGetOrdersDueQuery(time.Now())
//
//	dueOrders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get due orders: %v", err)
//	    return err
//	}
//
//	if len(dueOrders) > 0 {
//	    fmt.Printf("%d orders due\n", len(dueOrders))
//	}
type GetOrdersDueQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersDueQueryHandler creates a handler for due-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersDueQueryHandler(db *gorm.DB) GetOrdersDueQueryHandler {
	return GetOrdersDueQueryHandler{db: db}
}

// Handle executes the query for every order due on the requested day.
// Results are sorted by due time, then by order ID for stable output.
func (h GetOrdersDueQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersDueQuery,
) ([]GetOrdersDueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	dueOrders := make([]GetOrdersDueQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_full_name,
			o.customer_phone_number,
			o.due_time_minutes,
			o.status,
			p.name
		FROM orders o
		JOIN pickup_locations p ON p.id = o.pickup_location_id
		WHERE o.due_date = ?
		ORDER BY o.due_time_minutes, o.id
	`, query.Day()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetOrdersDueQueryResponse
		var id uuid.UUID
		var dueMinutes int
		var status int

		err = rows.Scan(
			&id,
			&orderResp.CustomerFullName,
			&orderResp.CustomerPhone,
			&dueMinutes,
			&status,
			&orderResp.PickupLocationName,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID

		dueTime, timeErr := kernel.TimeOfDayFromMinutes(dueMinutes)
		if timeErr != nil {
			return nil, timeErr
		}
		orderResp.DueTime = dueTime

		orderResp.Status = order.Status(status)
		if err = orderResp.Status.Validate(); err != nil {
			return nil, err
		}

		dueOrders = append(dueOrders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return dueOrders, nil
}
