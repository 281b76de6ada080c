package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// State is the sales state of an order as stored by the backend.
type State string

const (
	Draft     State = "draft"
	Sent      State = "sent"
	Sale      State = "sale"
	Done      State = "done"
	Cancelled State = "cancel"
)

// Validate accepts the backend sales states.
func (s State) Validate() error {
	switch s {
	case Draft, Sent, Sale, Done, Cancelled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("order state", fmt.Errorf("%q is not a valid state", string(s)))
	}
}

func (s State) String() string {
	return string(s)
}
