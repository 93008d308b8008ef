// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/arraylike/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for the Go types a dense array can store:
// bool, int64 and float64.
type DType = tensor.DType

// DataType represents the element type of an array-like value.
type DataType = tensor.DataType

// Data type constants.
const (
	Bool  DataType = tensor.Bool
	Int   DataType = tensor.Int
	Float DataType = tensor.Float
)

// Shape represents the dimensions of an array-like value.
// Example: Shape{2, 3} is a 2×3 array; Shape{} is a scalar.
type Shape = tensor.Shape

// Creation functions

// NewRaw creates a zero-filled dense array with the given shape and dtype.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype)
}

// FromSlice creates a dense array from a row-major Go slice.
//
// Example:
//
//	raw, err := tensor.FromSlice([]int64{1, 2, 3}, tensor.Shape{3})
func FromSlice[T DType](data []T, shape Shape) (*RawTensor, error) {
	return tensor.FromSlice(data, shape)
}

// Utility functions

// Cast converts a dense array to another element type.
// The result never shares memory with x.
func Cast(x *RawTensor, dtype DataType) (*RawTensor, error) {
	return tensor.Cast(x, dtype)
}

// Promote returns the least specific element type covering both a and b.
//
// Example:
//
//	tensor.Promote(tensor.Bool, tensor.Int) // Int
func Promote(a, b DataType) DataType {
	return tensor.Promote(a, b)
}
