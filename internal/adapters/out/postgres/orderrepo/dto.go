// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by due date and status.
type OrderDTO struct {
	ID               uuid.UUID   `gorm:"type:uuid;primaryKey"`
	OrderedByID      uuid.UUID   `gorm:"type:uuid"`
	Customer         CustomerDTO `gorm:"embedded;embeddedPrefix:customer_"`
	PickupLocationID uuid.UUID   `gorm:"type:uuid;index"`
	DueDate          time.Time   `gorm:"index"`
	DueTimeMinutes   int         `gorm:"type:smallint"`
	Status           int         `gorm:"index"`

	Items   []OrderItemDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	History []HistoryItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// CustomerDTO represents the embedded customer contact columns within the order table.
type CustomerDTO struct {
	FullName    string
	PhoneNumber string
	Details     string
}

// OrderItemDTO represents one product line of an order.
type OrderItemDTO struct {
	ID        uint      `gorm:"primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	ProductID uuid.UUID `gorm:"type:uuid"`
	Quantity  int
	Comment   string
}

// TableName specifies the database table name for order item rows.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// HistoryItemDTO represents one entry of an order's audit log. Status is nil
// for informational comments that did not change the order's state.
type HistoryItemDTO struct {
	ID        uint      `gorm:"primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	ActorID   uuid.UUID `gorm:"type:uuid"`
	Message   string
	Status    *int
	Timestamp time.Time
}

// TableName specifies the database table name for order history rows.
func (HistoryItemDTO) TableName() string {
	return "order_history"
}

// fromDomain converts an order domain aggregate to its database representation,
// including its item and history child rows.
func fromDomain(aggregate *order.Order) OrderDTO {
	id := aggregate.ID().Bytes()

	items := aggregate.Items()
	itemDTOs := make([]OrderItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, OrderItemDTO{
			OrderID:   id,
			ProductID: item.ProductID().Bytes(),
			Quantity:  item.Quantity(),
			Comment:   item.Comment(),
		})
	}

	history := aggregate.History()
	historyDTOs := make([]HistoryItemDTO, 0, len(history))
	for _, entry := range history {
		var status *int
		if s := entry.Status(); s != nil {
			raw := int(*s)
			status = &raw
		}

		historyDTOs = append(historyDTOs, HistoryItemDTO{
			OrderID:   id,
			ActorID:   entry.ActorID().Bytes(),
			Message:   entry.Message(),
			Status:    status,
			Timestamp: entry.Timestamp(),
		})
	}

	customer := aggregate.Customer()
	return OrderDTO{
		ID:          id,
		OrderedByID: aggregate.OrderedBy().Bytes(),
		Customer: CustomerDTO{
			FullName:    customer.FullName(),
			PhoneNumber: customer.PhoneNumber(),
			Details:     customer.Details(),
		},
		PickupLocationID: aggregate.PickupLocation().Bytes(),
		DueDate:          aggregate.DueDate(),
		DueTimeMinutes:   aggregate.DueTime().Minutes(),
		Status:           int(aggregate.Status()),
		Items:            itemDTOs,
		History:          historyDTOs,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including items and history using RestoreOrder;
// history rows must already be sorted by timestamp.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderedByID, err := kernel.UUIDFromBytes(dto.OrderedByID[:])
	if err != nil {
		return nil, err
	}

	pickupLocationID, err := kernel.UUIDFromBytes(dto.PickupLocationID[:])
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(dto.Customer.FullName, dto.Customer.PhoneNumber, dto.Customer.Details)
	if err != nil {
		return nil, err
	}

	dueTime, err := kernel.TimeOfDayFromMinutes(dto.DueTimeMinutes)
	if err != nil {
		return nil, err
	}

	items := make([]order.OrderItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, itemErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewOrderItem(productID, itemDTO.Quantity, itemDTO.Comment)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	history := make([]order.HistoryItem, 0, len(dto.History))
	for _, entryDTO := range dto.History {
		actorID, entryErr := kernel.UUIDFromBytes(entryDTO.ActorID[:])
		if entryErr != nil {
			return nil, entryErr
		}

		var status *order.Status
		if entryDTO.Status != nil {
			s := order.Status(*entryDTO.Status)
			status = &s
		}

		entry, entryErr := order.NewHistoryItem(actorID, entryDTO.Message, status, entryDTO.Timestamp)
		if entryErr != nil {
			return nil, entryErr
		}
		history = append(history, entry)
	}

	return order.RestoreOrder(
		id, orderedByID, customer, pickupLocationID,
		dto.DueDate, dueTime, order.Status(dto.Status), items, history)
}
