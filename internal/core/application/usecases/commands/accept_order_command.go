package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/identity"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand asks to make the caller the driver of an order's
// delivery.
//
// Example:
//
//	cmd, err := NewAcceptOrderCommand(42, principal.Identity)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type AcceptOrderCommand struct {
	jobTarget

	guard guard.ConstructorGuard
}

func NewAcceptOrderCommand(orderID kernel.ObjectID, caller *identity.Identity) (AcceptOrderCommand, error) {
	target, err := newJobTarget(orderID, caller)
	if err != nil {
		return AcceptOrderCommand{}, err
	}
	return AcceptOrderCommand{jobTarget: target, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}
