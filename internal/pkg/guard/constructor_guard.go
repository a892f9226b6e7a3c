// Package guard provides a constructor guard for value objects, commands,
// and queries. Embedding a ConstructorGuard lets a type detect whether it
// was created through its designated constructor or as a zero value, so
// validation can reject improperly constructed instances.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is provided for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its constructor.
// The zero value fails validation, which prevents accidental use of
// directly-instantiated structs that bypassed invariant checks.
//
// Example:
//
//	type ConfirmDeliveryCommand struct {
//	    deliveryID kernel.UUID
//	    guard      guard.ConstructorGuard
//	}
//
//	func NewConfirmDeliveryCommand(...) (ConfirmDeliveryCommand, error) {
//	    cmd := ConfirmDeliveryCommand{guard: guard.NewConstructorGuard()}
//	    // field validation...
//	    return cmd, nil
//	}
//
//	func (c ConfirmDeliveryCommand) Validate() error {
//	    return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// properly constructed. Call it in the object's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the object was created through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
