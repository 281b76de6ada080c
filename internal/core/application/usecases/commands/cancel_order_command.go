package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/identity"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand cancels the whole sales order on behalf of its driver.
type CancelOrderCommand struct {
	jobTarget
	reason string

	guard guard.ConstructorGuard
}

func NewCancelOrderCommand(orderID kernel.ObjectID, caller *identity.Identity, reason string) (CancelOrderCommand, error) {
	target, targetErr := newJobTarget(orderID, caller)
	reason, reasonErr := normalizeReason(reason)
	if err := errors.Join(targetErr, reasonErr); err != nil {
		return CancelOrderCommand{}, err
	}
	return CancelOrderCommand{jobTarget: target, reason: reason, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) Reason() string { return c.reason }
