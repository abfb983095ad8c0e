// Package guard provides ConstructorGuard, a marker that lets value objects,
// commands and queries tell a constructor-built instance from a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when the
// caller passes a nil validation error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in structs that must only be created through their
// constructor. The zero value reports "not constructed".
//
// Example usage:
//
//	var ErrCorridorIsNotConstructed = errors.New("Corridor must be created via NewCorridor")
//
//	type Corridor struct {
//	    start, end kernel.Location
//	    capacity   int
//	    guard      guard.ConstructorGuard
//	}
//
//	func (c Corridor) Validate() error {
//	    return c.guard.Validate(ErrCorridorIsNotConstructed)
//	}
//
// The guard is a single bool, so structs embedding it stay comparable and can be
// used as map keys.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed. Call it from the
// constructor of the guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard and validationError otherwise.
// A nil validationError is replaced by ErrDefaultConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
