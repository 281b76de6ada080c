package services

import (
	"slices"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/picking"
)

// DefaultListStates is the state filter applied when a listing request names none.
var DefaultListStates = []picking.State{picking.Assigned}

// OrderFilter selects the orders shown to a driver in the job listing.
//
// Business rules:
//   - Orders without picking are never listed
//   - An order in an explicitly requested state is listed only to its assignee
//   - When the pseudo-state Unassigned is requested, every unassigned order
//     is listed regardless of the caller
//   - Each order is listed at most once, in the order the backend returned it
//
// Example usage:
//
//	filter := services.NewOrderFilter()
//	visible := filter.Apply(orders, caller.ID(), []picking.State{picking.Assigned, picking.Unassigned})
type OrderFilter struct{}

func NewOrderFilter() OrderFilter {
	return OrderFilter{}
}

// Apply filters orders for caller. An empty states slice means DefaultListStates.
func (f OrderFilter) Apply(orders []*order.Order, caller kernel.ObjectID, states []picking.State) []*order.Order {
	explicit, showUnassigned := f.splitStates(states)

	seen := make(map[kernel.ObjectID]struct{}, len(orders))
	result := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		p, err := o.Picking()
		if err != nil {
			continue
		}
		if _, ok := seen[o.ID()]; ok {
			continue
		}

		derived := p.DerivedState()
		switch {
		case derived == picking.Unassigned && showUnassigned:
		case slices.Contains(explicit, derived) && p.IsHeldBy(caller):
		default:
			continue
		}

		seen[o.ID()] = struct{}{}
		result = append(result, o)
	}
	return result
}

// splitStates separates the Unassigned pseudo-state from the states stored by the backend.
func (f OrderFilter) splitStates(states []picking.State) ([]picking.State, bool) {
	if len(states) == 0 {
		states = DefaultListStates
	}
	explicit := make([]picking.State, 0, len(states))
	showUnassigned := false
	for _, s := range states {
		if s == picking.Unassigned {
			showUnassigned = true
			continue
		}
		explicit = append(explicit, s)
	}
	return explicit, showUnassigned
}
