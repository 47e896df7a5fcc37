// Package guard provides the constructor guard used by commands, queries and
// value objects to reject zero values that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as built through its constructor.
//
// Embed it as a private field, set it with NewConstructorGuard inside the
// constructor, and call Validate from the struct's own Validate method:
//
//	type CheckoutCommand struct {
//	    actor kernel.Actor
//	    guard guard.ConstructorGuard
//	}
//
//	func (c CheckoutCommand) Validate() error {
//	    return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
