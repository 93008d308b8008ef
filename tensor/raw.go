// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/arraylike/internal/tensor"
)

// RawTensor is the dense array representation.
//
// RawTensor provides:
//   - Shape and type information via Shape(), DType(), NDim()
//   - Type-safe data access via AsBool(), AsInt64(), AsFloat64()
//   - Row-major element access via At(), AtFlat() and Elements()
//   - Deep copies via Clone()
//
// A RawTensor is never retyped in place; Cast builds a new buffer.
//
// Example:
//
//	raw, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float)
//	data := raw.AsFloat64() // zero-copy view
//	clone := raw.Clone()    // independent buffer
type RawTensor = tensor.RawTensor
