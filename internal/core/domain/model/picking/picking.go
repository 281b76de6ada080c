package picking

import (
	"errors"

	"dispatch/internal/core/domain/model/identity"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrPickingIsNotConstructed is returned when a Picking was not created via RestorePicking.
	ErrPickingIsNotConstructed = errors.New("Picking must be created via RestorePicking constructor")

	// ErrAlreadyAssigned is returned by Accept when another real user holds the picking.
	ErrAlreadyAssigned = errors.New("picking is already assigned")
	// ErrAlreadyAssignedToCaller is returned by Accept when the caller already holds the picking.
	ErrAlreadyAssignedToCaller = errors.New("picking is already assigned to caller")
	// ErrNotAssignee is returned when the caller does not hold the picking.
	ErrNotAssignee = errors.New("caller is not the picking assignee")
	// ErrNotCancellable is returned when the picking is not in the assigned state.
	ErrNotCancellable = errors.New("picking is not cancellable")
	// ErrPickingClosed is returned when the picking is already done or cancelled.
	ErrPickingClosed = errors.New("picking is closed")
)

// Picking is the delivery leg of an order. Its state and assignee drive the
// job lifecycle; they change only through the methods below.
type Picking struct {
	id       kernel.ObjectID
	state    State
	assignee identity.Assignee

	guard guard.ConstructorGuard
}

// RestorePicking rebuilds a picking read from the backend store.
func RestorePicking(id kernel.ObjectID, state State, assignee identity.Assignee) (*Picking, error) {
	if err := errors.Join(id.Validate(), state.Validate()); err != nil {
		return nil, err
	}
	return &Picking{
		id:       id,
		state:    state,
		assignee: assignee,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the picking was built by RestorePicking.
func (p *Picking) Validate() error {
	if p == nil {
		return ErrPickingIsNotConstructed
	}
	return p.guard.Validate(ErrPickingIsNotConstructed)
}

func (p *Picking) ID() kernel.ObjectID { return p.id }

// State returns the raw stored state.
func (p *Picking) State() State { return p.state }

func (p *Picking) Assignee() identity.Assignee { return p.assignee }

// DerivedState returns the display state, see DeriveState.
func (p *Picking) DerivedState() State {
	return DeriveState(p.state, p.assignee)
}

// IsHeldBy reports whether the given user is the current assignee.
func (p *Picking) IsHeldBy(userID kernel.ObjectID) bool {
	return p.assignee.Is(userID)
}

// Accept makes caller the assignee. The picking must be vacant (no assignee
// or the bot) and open.
func (p *Picking) Accept(caller kernel.ObjectID) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	if p.assignee.Is(caller) {
		return ErrAlreadyAssignedToCaller
	}
	if !p.assignee.IsVacant() {
		return ErrAlreadyAssigned
	}
	if p.state.IsClosed() {
		return ErrPickingClosed
	}
	p.assignee = identity.UserAssignee(caller)
	return nil
}

// DropOff validates the delivery: the picking becomes Done. Only the
// assignee may drop off an open picking.
func (p *Picking) DropOff(caller kernel.ObjectID) error {
	if !p.assignee.Is(caller) {
		return ErrNotAssignee
	}
	if p.state.IsClosed() {
		return ErrPickingClosed
	}
	p.state = Done
	return nil
}

// ReleaseJob clears the assignee so any driver can accept the job again.
func (p *Picking) ReleaseJob(caller kernel.ObjectID) error {
	if err := p.ValidateCancellable(caller); err != nil {
		return err
	}
	p.assignee = identity.NoAssignee()
	return nil
}

// Cancel moves the picking to Cancelled.
func (p *Picking) Cancel(caller kernel.ObjectID) error {
	if err := p.ValidateCancellable(caller); err != nil {
		return err
	}
	p.state = Cancelled
	return nil
}

// ValidateCancellable checks that caller holds the picking and that it is in
// the Assigned state. It has no side effects.
func (p *Picking) ValidateCancellable(caller kernel.ObjectID) error {
	if !p.assignee.Is(caller) {
		return ErrNotAssignee
	}
	if p.state != Assigned {
		return ErrNotCancellable
	}
	return nil
}
