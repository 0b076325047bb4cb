// Package orderrepo implements order persistence with GORM, mapping the
// order aggregate and its line items to relational tables.
package orderrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Statuses are stored as their canonical strings so the read
// side can filter without decoding enums.
type OrderDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID          uuid.UUID `gorm:"type:uuid;index"`
	RestaurantID        uuid.UUID `gorm:"type:uuid;index"`
	Status              string    `gorm:"type:varchar(16);index"`
	PaymentStatus       string    `gorm:"type:varchar(16)"`
	TotalAmount         decimal.Decimal `gorm:"type:numeric(12,2)"`
	DeliveryAddress     string
	SpecialInstructions string
	Items               []LineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO represents one menu item snapshot within an order.
type LineItemDTO struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	MenuItemID uuid.UUID `gorm:"type:uuid"`
	Name       string
	Quantity   int
	UnitPrice  decimal.Decimal `gorm:"type:numeric(12,2)"`
	Subtotal   decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for line items.
func (LineItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()
	itemDTOs := make([]LineItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, LineItemDTO{
			OrderID:    aggregate.ID().Bytes(),
			MenuItemID: item.MenuItemID().Bytes(),
			Name:       item.Name(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice(),
			Subtotal:   item.Subtotal(),
		})
	}

	return OrderDTO{
		ID:                  aggregate.ID().Bytes(),
		CustomerID:          aggregate.CustomerID().Bytes(),
		RestaurantID:        aggregate.RestaurantID().Bytes(),
		Status:              aggregate.Status().String(),
		PaymentStatus:       aggregate.PaymentStatus().String(),
		TotalAmount:         aggregate.TotalAmount(),
		DeliveryAddress:     aggregate.DeliveryAddress(),
		SpecialInstructions: aggregate.SpecialInstructions(),
		Items:               itemDTOs,
		CreatedAt:           aggregate.CreatedAt(),
		UpdatedAt:           aggregate.UpdatedAt(),
	}
}

// toDomain reconstructs an order aggregate from its database
// representation using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	paymentStatus, err := order.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		menuItemID, itemErr := kernel.UUIDFromBytes(itemDTO.MenuItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.RestoreLineItem(menuItemID, itemDTO.Name, itemDTO.Quantity, itemDTO.UnitPrice, itemDTO.Subtotal)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id, customerID, restaurantID,
		status, paymentStatus, dto.TotalAmount,
		dto.DeliveryAddress, dto.SpecialInstructions,
		items, dto.CreatedAt, dto.UpdatedAt,
	)
}
