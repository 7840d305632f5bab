// Package guard implements the constructor-guard pattern used by value objects,
// entities, and commands to detect zero-value instances that bypassed their
// constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil validation
// error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its designated
// constructor. Embed it as a private field and set it with
// NewConstructorGuard inside the constructor; a zero-value instance of the
// owning struct then fails Validate.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the owning object as properly
// constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the owning object was created through its
// constructor. Otherwise it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
