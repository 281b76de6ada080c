// Package guard provides ConstructorGuard, a marker embedded in commands,
// queries and value objects so that zero values can be told apart from
// instances built by their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guard is a zero
// value and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether its owner was created through a constructor.
//
// Example usage:
//
//	type AcceptOrderCommand struct {
//	    orderID kernel.ObjectID
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewAcceptOrderCommand(id kernel.ObjectID) AcceptOrderCommand {
//	    return AcceptOrderCommand{orderID: id, guard: guard.NewConstructorGuard()}
//	}
//
//	func (c AcceptOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero value it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
