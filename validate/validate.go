// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package validate provides input checks for array-like values.
//
// Every function accepts anything arraylike.Wrap accepts, including an
// existing arraylike.Wrapper. Failures are sentinel errors tagged with the
// argument name; match them with errors.Is.
//
// Example:
//
//	if err := validate.CheckRange(radius, [2]float64{0, math.Inf(1)}, false, false, "radius"); err != nil {
//	    return err
//	}
//	origin, err := validate.ValidateArray3(origin, "origin")
package validate

import (
	"github.com/born-ml/arraylike/internal/validate"
	"github.com/born-ml/arraylike/tensor"
)

// Sentinel errors.
var (
	ErrNotFinite      = validate.ErrNotFinite
	ErrNotReal        = validate.ErrNotReal
	ErrNotInteger     = validate.ErrNotInteger
	ErrOutOfRange     = validate.ErrOutOfRange
	ErrBadBounds      = validate.ErrBadBounds
	ErrNotSorted      = validate.ErrNotSorted
	ErrShapeMismatch  = validate.ErrShapeMismatch
	ErrNDimMismatch   = validate.ErrNDimMismatch
	ErrLengthMismatch = validate.ErrLengthMismatch
	ErrDTypeMismatch  = validate.ErrDTypeMismatch
	ErrNotAllowed     = validate.ErrNotAllowed
)

// ArrayConfig configures ValidateArray.
type ArrayConfig = validate.ArrayConfig

// ReturnType selects the representation ValidateArray returns.
type ReturnType = validate.ReturnType

// Return representations.
const (
	ReturnList    ReturnType = validate.ReturnList
	ReturnTuple   ReturnType = validate.ReturnTuple
	ReturnDense   ReturnType = validate.ReturnDense
	ReturnWrapper ReturnType = validate.ReturnWrapper
)

// DefaultArrayConfig returns a configuration with every check disabled.
func DefaultArrayConfig() ArrayConfig {
	return validate.DefaultArrayConfig()
}

// Checks

// CheckFinite checks that no element is NaN or ±Inf.
func CheckFinite(v any, name string) error {
	return validate.CheckFinite(v, name)
}

// CheckReal checks that the elements are integers or floats, not bools.
func CheckReal(v any, name string) error {
	return validate.CheckReal(v, name)
}

// CheckInteger checks for whole numbers; strict also requires an integer dtype.
func CheckInteger(v any, strict bool, name string) error {
	return validate.CheckInteger(v, strict, name)
}

// CheckNonnegative checks that every element is >= 0.
func CheckNonnegative(v any, name string) error {
	return validate.CheckNonnegative(v, name)
}

// CheckGreaterThan checks that every element is > bound (strict) or >= bound.
func CheckGreaterThan(v any, bound float64, strict bool, name string) error {
	return validate.CheckGreaterThan(v, bound, strict, name)
}

// CheckLessThan checks that every element is < bound (strict) or <= bound.
func CheckLessThan(v any, bound float64, strict bool, name string) error {
	return validate.CheckLessThan(v, bound, strict, name)
}

// CheckRange checks that every element lies within rng.
func CheckRange(v any, rng [2]float64, strictLower, strictUpper bool, name string) error {
	return validate.CheckRange(v, rng, strictLower, strictUpper, name)
}

// CheckSorted checks element order along the last axis.
func CheckSorted(v any, ascending, strict bool, name string) error {
	return validate.CheckSorted(v, ascending, strict, name)
}

// CheckShape checks that the shape matches one of shapes (-1 matches any length).
func CheckShape(v any, name string, shapes ...tensor.Shape) error {
	return validate.CheckShape(v, name, shapes...)
}

// CheckNDim checks that the number of dimensions is one of ndims.
func CheckNDim(v any, name string, ndims ...int) error {
	return validate.CheckNDim(v, name, ndims...)
}

// CheckLength checks that the first axis has exactly n elements.
func CheckLength(v any, n int, name string) error {
	return validate.CheckLength(v, n, name)
}

// CheckLengthBetween checks the first-axis length against [lo, hi]; hi < 0 means no limit.
func CheckLengthBetween(v any, lo, hi int, name string) error {
	return validate.CheckLengthBetween(v, lo, hi, name)
}

// CheckSubDType checks that the element type is one of dtypes.
func CheckSubDType(v any, name string, dtypes ...tensor.DataType) error {
	return validate.CheckSubDType(v, name, dtypes...)
}

// CheckContains checks that item is one of allowed.
func CheckContains[T comparable](item T, name string, allowed ...T) error {
	return validate.CheckContains(item, name, allowed...)
}

// Validators

// ValidateArray runs the checks enabled in cfg and returns the value in the
// configured representation.
func ValidateArray(v any, cfg ArrayConfig) (any, error) {
	return validate.ValidateArray(v, cfg)
}

// ValidateNumber validates a single real number.
func ValidateNumber(v any, name string) (float64, error) {
	return validate.ValidateNumber(v, name)
}

// ValidateArray3 validates a 3-vector, broadcasting a single number.
func ValidateArray3(v any, name string) ([3]float64, error) {
	return validate.ValidateArray3(v, name)
}

// ValidateArrayN validates a vector of any length.
func ValidateArrayN(v any, name string) ([]float64, error) {
	return validate.ValidateArrayN(v, name)
}

// ValidateArrayNUintLike validates a vector of nonnegative whole numbers.
func ValidateArrayNUintLike(v any, name string) ([]int, error) {
	return validate.ValidateArrayNUintLike(v, name)
}

// ValidateArrayNx3 validates an array of 3-vectors.
func ValidateArrayNx3(v any, name string) ([][3]float64, error) {
	return validate.ValidateArrayNx3(v, name)
}

// ValidateDataRange validates a (lower, upper) pair.
func ValidateDataRange(v any, name string) ([2]float64, error) {
	return validate.ValidateDataRange(v, name)
}

// ValidateTransform3x3 validates a 3x3 matrix.
func ValidateTransform3x3(v any, name string) ([3][3]float64, error) {
	return validate.ValidateTransform3x3(v, name)
}

// ValidateTransform4x4 validates a 4x4 (or 3x3, embedded) transformation matrix.
func ValidateTransform4x4(v any, name string) ([4][4]float64, error) {
	return validate.ValidateTransform4x4(v, name)
}
