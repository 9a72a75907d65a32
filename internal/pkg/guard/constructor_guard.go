// Package guard holds the constructor guard used by value objects, commands
// and queries to reject zero values that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as built by its constructor. Embed it as a
// private field and set it with NewConstructorGuard; the zero value fails Validate.
//
// Example:
//
//	type SetTrackingStatusCommand struct {
//	    orderID kernel.UUID
//	    status  order.Status
//	    guard   guard.ConstructorGuard
//	}
//
//	func (c SetTrackingStatusCommand) Validate() error {
//	    return c.guard.Validate(ErrSetTrackingStatusCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that passes validation.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
