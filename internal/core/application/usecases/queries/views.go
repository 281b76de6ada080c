package queries

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/picking"
)

// OrderView is an order as shown in the job listing.
type OrderView struct {
	ID              kernel.ObjectID
	DisplayName     string
	OrderDate       time.Time
	State           order.State
	PickingState    picking.State
	Lines           []order.Line
	DeliveryAddress *order.Address
	AmountTotal     float64
}

func newOrderView(o *order.Order) OrderView {
	return OrderView{
		ID:              o.ID(),
		DisplayName:     o.DisplayName(),
		OrderDate:       o.OrderDate(),
		State:           o.State(),
		PickingState:    o.DerivedState(),
		Lines:           o.Lines(),
		DeliveryAddress: o.DeliveryAddress(),
		AmountTotal:     o.AmountTotal(),
	}
}
