// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package arraylike normalizes heterogeneous array-like inputs behind one
// interface.
//
// # Overview
//
// Wrap accepts:
//   - a bare number: bool, any integer or float type
//   - a flat sequence of numbers: []float64, [3]int, []any{1, 2.5, true}
//   - a rectangular nested sequence: [][]float64, [][3]float64
//   - anything coercible to a dense array: *tensor.RawTensor, gonum
//     mat.Matrix and mat.Vector, go-cty values, deeper or mixed nesting
//
// and returns a Wrapper exposing Shape, NDim, Size, DType, row-major
// iteration and conversion to slice form (ToList), array form (ToTuple) and
// dense form (ToDense). The caller's value is referenced, not copied.
//
// # Basic Usage
//
//	w, err := arraylike.Wrap([]any{1, 2.5, 3})
//	if err != nil {
//	    return err // *arraylike.InvalidArrayError
//	}
//	w.Shape() // (3,)
//	w.DType() // float
//
// # Element Types
//
// The element type is the least specific of bool < int < float covering every
// element. Sequences stored as []any are scanned once and the result cached;
// an empty []any is float.
//
// # Idempotence
//
// Wrapping a Wrapper returns it unchanged, so validation helpers can wrap
// their inputs without checking first.
//
// # Mutation
//
// ChangeElementType is the only mutating operation. Sequence wrappers rewrite
// []any storage in place and rebind to a new container otherwise. Dense
// wrappers always build a new buffer and never modify the caller's array.
package arraylike
