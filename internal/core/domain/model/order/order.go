package order

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/picking"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created via RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via RestoreOrder constructor")
	// ErrOrderNotFound is returned when an order does not exist, is not visible
	// to the caller, or has no picking.
	ErrOrderNotFound = errors.New("order not found")
)

// Line is one product line of an order.
type Line struct {
	Product   string
	Quantity  float64
	PriceUnit float64
}

// Address is the delivery address of an order.
type Address struct {
	Street  string
	Street2 string
	Zip     string
	City    string
	State   string
	Country string
}

// Order is a sales order owned by the backend. This service only reads it
// and changes it through its delivery picking.
//
// Invariants:
//   - id is a valid backend id and state a known sales state
//   - only the first picking (the delivery leg) takes part in job assignment
//   - an order without pickings is invisible to every job operation
type Order struct {
	id          kernel.ObjectID
	displayName string
	orderDate   time.Time
	state       State
	lines       []Line
	address     *Address
	amountTotal float64
	pickings    []*picking.Picking

	guard guard.ConstructorGuard
}

// RestoreOrder rebuilds an order read from the backend store.
//
// Example:
//
//	p, _ := picking.RestorePicking(7, picking.Assigned, identity.NoAssignee())
//	o, err := order.RestoreOrder(42, "S00042", time.Now(), order.Sale, lines, addr, 120.5, []*picking.Picking{p})
func RestoreOrder(
	id kernel.ObjectID,
	displayName string,
	orderDate time.Time,
	state State,
	lines []Line,
	address *Address,
	amountTotal float64,
	pickings []*picking.Picking,
) (*Order, error) {
	errList := []error{id.Validate(), state.Validate()}
	for _, p := range pickings {
		errList = append(errList, p.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return &Order{
		id:          id,
		displayName: displayName,
		orderDate:   orderDate,
		state:       state,
		lines:       append([]Line(nil), lines...),
		address:     address,
		amountTotal: amountTotal,
		pickings:    pickings,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the order was built by RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) ID() kernel.ObjectID { return o.id }

func (o *Order) DisplayName() string { return o.displayName }

func (o *Order) OrderDate() time.Time { return o.orderDate }

func (o *Order) State() State { return o.state }

// Lines returns a copy of the order lines.
func (o *Order) Lines() []Line {
	return append([]Line(nil), o.lines...)
}

// DeliveryAddress returns nil when the customer has no delivery address.
func (o *Order) DeliveryAddress() *Address { return o.address }

func (o *Order) AmountTotal() float64 { return o.amountTotal }

// HasPicking reports whether the order takes part in job assignment.
func (o *Order) HasPicking() bool {
	return len(o.pickings) > 0
}

// Picking returns the delivery picking, or ErrOrderNotFound when the order has none.
func (o *Order) Picking() (*picking.Picking, error) {
	if !o.HasPicking() {
		return nil, ErrOrderNotFound
	}
	return o.pickings[0], nil
}

// Pickings returns all pickings attached to the order.
func (o *Order) Pickings() []*picking.Picking {
	return o.pickings
}

// DerivedState returns the display state of the delivery picking, the value
// shown in listings. Orders without picking report picking.Unassigned.
func (o *Order) DerivedState() picking.State {
	p, err := o.Picking()
	if err != nil {
		return picking.Unassigned
	}
	return p.DerivedState()
}

// Cancel cancels the order on behalf of the picking assignee. The picking is
// cancelled with it.
func (o *Order) Cancel(caller kernel.ObjectID) error {
	p, err := o.Picking()
	if err != nil {
		return err
	}
	if err = p.Cancel(caller); err != nil {
		return err
	}
	o.state = Cancelled
	return nil
}
