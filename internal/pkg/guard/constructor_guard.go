// Package guard provides ConstructorGuard, a marker embedded in value objects
// and entities to tell a constructed instance from a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the enclosing struct was built by its constructor.
// The zero value is "not constructed".
//
// Example:
//
//	var ErrRangeIsNotConstructed = errors.New("range must be created via NewRange")
//
//	type Range struct {
//	    start, end int
//	    guard      guard.ConstructorGuard
//	}
//
//	func NewRange(start, end int) (Range, error) {
//	    if start > end {
//	        return Range{}, errors.New("start is after end")
//	    }
//	    return Range{start: start, end: end, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (r Range) Validate() error {
//	    return r.guard.Validate(ErrRangeIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
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
