// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/born-ml/arraylike/tensor"
)

// TestRawTensorAPI verifies RawTensor type alias exposes expected API.
func TestRawTensorAPI(t *testing.T) {
	raw, err := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}

	// Test Shape() method.
	shape := raw.Shape()
	if !shape.Equal(tensor.Shape{2, 3}) {
		t.Errorf("Shape() = %v, want (2, 3)", shape)
	}

	// Test DType() method.
	if dtype := raw.DType(); dtype != tensor.Float {
		t.Errorf("DType() = %v, want float", dtype)
	}

	// Test NumElements() method.
	if n := raw.NumElements(); n != 6 {
		t.Errorf("NumElements() = %d, want 6", n)
	}

	// Test ByteSize() method.
	byteSize := raw.ByteSize()
	expected := 6 * 8 // 6 elements * 8 bytes (float64)
	if byteSize != expected {
		t.Errorf("ByteSize() = %d, want %d", byteSize, expected)
	}

	// Test Data() method.
	if data := raw.Data(); len(data) != byteSize {
		t.Errorf("Data() length = %d, want %d", len(data), byteSize)
	}

	// Test AsFloat64() method.
	f64 := raw.AsFloat64()
	if len(f64) != 6 {
		t.Errorf("AsFloat64() length = %d, want 6", len(f64))
	}

	// Test Clone() method.
	f64[0] = 1
	clone := raw.Clone()
	clone.AsFloat64()[0] = 2
	if raw.AsFloat64()[0] != 1 {
		t.Error("Clone() shares memory with the original")
	}
}

// TestFromSliceAndCast verifies the creation and conversion functions.
func TestFromSliceAndCast(t *testing.T) {
	raw, err := tensor.FromSlice([]int64{0, 1, 2}, tensor.Shape{3})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	asBool, err := tensor.Cast(raw, tensor.Bool)
	if err != nil {
		t.Fatalf("Cast failed: %v", err)
	}
	got := asBool.AsBool()
	if got[0] || !got[1] || !got[2] {
		t.Errorf("Cast to bool = %v, want [false true true]", got)
	}
}

// TestDataTypeConstants verifies all data type constants are accessible.
func TestDataTypeConstants(t *testing.T) {
	dtypes := []struct {
		name  string
		dtype tensor.DataType
	}{
		{"bool", tensor.Bool},
		{"int", tensor.Int},
		{"float", tensor.Float},
	}

	for _, d := range dtypes {
		t.Run(d.name, func(t *testing.T) {
			if str := d.dtype.String(); str != d.name {
				t.Errorf("DataType.String() = %q, want %q", str, d.name)
			}
		})
	}

	if got := tensor.Promote(tensor.Bool, tensor.Float); got != tensor.Float {
		t.Errorf("Promote(bool, float) = %v, want float", got)
	}
}
