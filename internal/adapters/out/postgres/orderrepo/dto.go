// Package orderrepo maps backend sales orders, their lines and their
// delivery pickings to the order aggregate.
package orderrepo

import (
	"time"

	"dispatch/internal/core/domain/model/identity"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/picking"
)

// OrderDTO is a sales order row. The delivery address is flattened into the
// order table; an order whose address columns are all empty has no address.
type OrderDTO struct {
	ID          int64          `gorm:"primaryKey;autoIncrement:false"`
	Name        string         `gorm:"not null"`
	DateOrder   time.Time      `gorm:"not null;index"`
	State       string         `gorm:"not null;default:draft"`
	AmountTotal float64        `gorm:"not null;default:0"`
	Delivery    AddressDTO     `gorm:"embedded;embeddedPrefix:delivery_"`
	Lines       []OrderLineDTO `gorm:"foreignKey:OrderID"`
	Pickings    []PickingDTO   `gorm:"foreignKey:OrderID"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type AddressDTO struct {
	Street  string
	Street2 string
	Zip     string
	City    string
	State   string
	Country string
}

type OrderLineDTO struct {
	ID        int64 `gorm:"primaryKey"`
	OrderID   int64 `gorm:"not null;index"`
	Product   string
	Quantity  float64
	PriceUnit float64
}

func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// PickingDTO is a stock picking row. AssigneeID is NULL when nobody holds
// the picking; the bot user is stored like any other user.
type PickingDTO struct {
	ID         int64  `gorm:"primaryKey;autoIncrement:false"`
	OrderID    int64  `gorm:"not null;index"`
	State      string `gorm:"not null;default:''"`
	AssigneeID *int64 `gorm:"index"`
}

func (PickingDTO) TableName() string {
	return "pickings"
}

func assigneeToColumn(a identity.Assignee) *int64 {
	id, ok := a.UserID()
	if !ok {
		return nil
	}
	raw := id.Int64()
	return &raw
}

func toDomain(dto OrderDTO, botID kernel.ObjectID) (*order.Order, error) {
	lines := make([]order.Line, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		lines = append(lines, order.Line{Product: l.Product, Quantity: l.Quantity, PriceUnit: l.PriceUnit})
	}

	var address *order.Address
	if dto.Delivery != (AddressDTO{}) {
		address = &order.Address{
			Street:  dto.Delivery.Street,
			Street2: dto.Delivery.Street2,
			Zip:     dto.Delivery.Zip,
			City:    dto.Delivery.City,
			State:   dto.Delivery.State,
			Country: dto.Delivery.Country,
		}
	}

	pickings := make([]*picking.Picking, 0, len(dto.Pickings))
	for _, p := range dto.Pickings {
		var userID *kernel.ObjectID
		if p.AssigneeID != nil {
			id := kernel.ObjectID(*p.AssigneeID)
			userID = &id
		}
		restored, err := picking.RestorePicking(
			kernel.ObjectID(p.ID),
			picking.State(p.State),
			identity.AssigneeFromUserID(userID, botID),
		)
		if err != nil {
			return nil, err
		}
		pickings = append(pickings, restored)
	}

	return order.RestoreOrder(
		kernel.ObjectID(dto.ID),
		dto.Name,
		dto.DateOrder,
		order.State(dto.State),
		lines,
		address,
		dto.AmountTotal,
		pickings,
	)
}
