// Package validate implements input checks on top of the arraylike wrappers.
//
// Every check accepts any array-like value, wraps it once with arraylike.Wrap
// (a no-op for values that are already wrapped) and reports failures as
// sentinel errors wrapped with the argument name, so callers match them with
// errors.Is. Inputs that are not array-like at all surface as
// arraylike.ErrInvalidArray.
package validate

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFinite is returned when an element is NaN or ±Inf.
	ErrNotFinite = errors.New("validate: must have finite values")

	// ErrNotReal is returned for boolean input where real numbers are required.
	ErrNotReal = errors.New("validate: must have real numbers")

	// ErrNotInteger is returned when an element is not a whole number, or,
	// in strict mode, when the element type is not integer.
	ErrNotInteger = errors.New("validate: must have integer values")

	// ErrOutOfRange is returned when an element violates a lower or upper bound.
	ErrOutOfRange = errors.New("validate: values out of range")

	// ErrBadBounds is returned when a range passed to a check is itself invalid.
	ErrBadBounds = errors.New("validate: invalid bounds")

	// ErrNotSorted is returned when elements are not in the required order.
	ErrNotSorted = errors.New("validate: values not sorted")

	// ErrShapeMismatch is returned when the shape matches none of the allowed shapes.
	ErrShapeMismatch = errors.New("validate: shape mismatch")

	// ErrNDimMismatch is returned when the number of dimensions is not allowed.
	ErrNDimMismatch = errors.New("validate: ndim mismatch")

	// ErrLengthMismatch is returned when the length is outside the allowed values.
	ErrLengthMismatch = errors.New("validate: length mismatch")

	// ErrDTypeMismatch is returned when the element type is not allowed.
	ErrDTypeMismatch = errors.New("validate: dtype mismatch")

	// ErrNotAllowed is returned when an item is not one of the allowed values.
	ErrNotAllowed = errors.New("validate: value not allowed")
)

// checkErrorf tags err with the argument name and a detail message.
func checkErrorf(name string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", name, err, fmt.Sprintf(format, args...))
}
