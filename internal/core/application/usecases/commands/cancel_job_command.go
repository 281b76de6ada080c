package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/identity"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrCancelJobCommandIsNotConstructed = errors.New(
	"CancelJobCommand must be created via NewCancelJobCommand constructor",
)

// CancelJobCommand hands a delivery back: the order stays open and any
// driver may accept it again.
type CancelJobCommand struct {
	jobTarget
	reason string

	guard guard.ConstructorGuard
}

func NewCancelJobCommand(orderID kernel.ObjectID, caller *identity.Identity, reason string) (CancelJobCommand, error) {
	target, targetErr := newJobTarget(orderID, caller)
	reason, reasonErr := normalizeReason(reason)
	if err := errors.Join(targetErr, reasonErr); err != nil {
		return CancelJobCommand{}, err
	}
	return CancelJobCommand{jobTarget: target, reason: reason, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelJobCommand) Validate() error {
	return c.guard.Validate(ErrCancelJobCommandIsNotConstructed)
}

func (c CancelJobCommand) Reason() string { return c.reason }
