package picking

import (
	"fmt"

	"dispatch/internal/core/domain/model/identity"
	"dispatch/internal/pkg/errs"
)

// State is the backend wire value of a picking's state, plus the derived
// Unassigned pseudo-state used only for filtering and display.
//
// Transitions driven by this service:
//
//	(any open state) ──accept──> same state, assignee = caller
//	assigned ──cancel-job──> assigned, assignee = none
//	assigned ──cancel-order──> cancelled
//	(any open state) ──drop-off──> done
type State string

const (
	// Empty is the raw state of a picking the backend has not scheduled yet.
	Empty     State = ""
	Waiting   State = "waiting"
	Confirmed State = "confirmed"
	Assigned  State = "assigned"
	Done      State = "done"
	Cancelled State = "cancelled"

	// Unassigned is derived, never stored. See DeriveState.
	Unassigned State = "unassigned"
)

// FilterStates lists every value accepted by the order listing filter, in
// documentation order.
var FilterStates = []State{Assigned, Waiting, Confirmed, Done, Cancelled, Unassigned}

// DeriveState computes the display state of a picking: Unassigned when the
// raw state is empty, or when it is Assigned and nobody holds it. The bot
// counts as a holder here; only an empty assignee makes an assigned picking
// unassigned.
func DeriveState(raw State, assignee identity.Assignee) State {
	if raw == Empty || (raw == Assigned && assignee.IsNone()) {
		return Unassigned
	}
	return raw
}

// ParseFilterState validates a state received in a listing filter.
func ParseFilterState(s string) (State, error) {
	st := State(s)
	for _, allowed := range FilterStates {
		if st == allowed {
			return st, nil
		}
	}
	return "", errs.NewValueIsInvalidErrorWithCause("state", fmt.Errorf("%q is not a valid state", s))
}

// Validate accepts the values the backend may store: Empty and the five
// named states. Unassigned is rejected because it is never persisted.
func (s State) Validate() error {
	switch s {
	case Empty, Waiting, Confirmed, Assigned, Done, Cancelled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("picking state", fmt.Errorf("%q is not a stored state", string(s)))
	}
}

// IsClosed reports whether the picking reached a final state.
func (s State) IsClosed() bool {
	return s == Done || s == Cancelled
}

func (s State) String() string {
	return string(s)
}
