// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the dense array and element type definitions used
// by the arraylike wrappers.
//
// # Overview
//
// This package provides:
//   - RawTensor: dense, row-major numeric buffer with shape and dtype metadata
//   - Shape: array dimensions, with NumElements, Matches and tuple formatting
//   - DataType: element type, ordered Bool < Int < Float by promotion rank
//
// # Basic Usage
//
//	import "github.com/born-ml/arraylike/tensor"
//
//	func main() {
//	    raw, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(raw.Shape(), raw.DType()) // (2, 3) float
//	    fmt.Println(raw.At(1, 2))             // 6
//	}
//
// # Supported Data Types
//
// Dense arrays store one of three element types:
//   - Bool, stored as bool
//   - Int, stored as int64
//   - Float, stored as float64
//
// # Memory Management
//
// Views returned by AsBool, AsInt64 and AsFloat64 share the array's memory.
// Clone and Cast always allocate a new buffer, so an array handed to a
// wrapper is never retyped in place.
package tensor
