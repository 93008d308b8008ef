// Package arraylike normalizes heterogeneous array-like inputs behind a single
// Wrapper interface.
//
// An array-like input is a bare number, a flat sequence of numbers, a
// rectangular sequence of sequences of numbers, or anything that can be
// coerced into a dense numeric array. Wrap selects one of four variants for
// the input, keeping a reference to the caller's value rather than a copy.
package arraylike

import (
	"fmt"
	"iter"
	"math"
	"reflect"

	"github.com/born-ml/arraylike/internal/tensor"
)

// Wrapper is the uniform view over an array-like value.
//
// Exactly four implementations exist, one per Kind. Wrappers are transient
// and not safe for concurrent use while ChangeElementType runs.
type Wrapper interface {
	// Shape returns the dimensions; len(Shape()) == NDim().
	Shape() tensor.Shape
	// NDim returns the number of dimensions.
	NDim() int
	// Size returns the number of elements, the product of Shape().
	Size() int
	// DType returns the element type. Sequence variants infer it on first
	// use and cache the result.
	DType() tensor.DataType
	// Kind returns which variant this is.
	Kind() Kind

	// AsIterable returns a restartable row-major iterator over the scalar
	// elements. A scalar yields itself once.
	AsIterable() iter.Seq[any]
	// All reports whether pred holds for every element. It stops at the
	// first element that fails.
	All(pred func(any) bool) bool

	// ToList returns the value in Go slice form. If the backing value is
	// already a slice of that form it is returned as-is unless copy is set,
	// in which case a deep copy is returned. Scalars return themselves.
	ToList(copy bool) any
	// ToTuple returns the value in Go array form ([N]T, [N][M]T) with the
	// same copy rules as ToList.
	ToTuple(copy bool) any
	// ToDense returns the value as a dense array. The caller's own array is
	// returned when copy is false.
	ToDense(copy bool) *tensor.RawTensor

	// ChangeElementType converts every element to dt.
	//
	// Sequence variants rewrite []any storage in place and otherwise rebind
	// to a new container; the dense variant always builds a new buffer and
	// leaves the caller's array untouched. It is a no-op when DType() == dt.
	ChangeElementType(dt tensor.DataType) error

	// Value returns the current backing value.
	Value() any

	fmt.Stringer

	isWrapper()
}

// Wrap returns the Wrapper for raw. If raw is already a Wrapper it is returned
// unchanged.
//
// Inputs that are not scalars or numeric sequences of depth 1 or 2 are coerced
// into a dense array; if that fails, an *InvalidArrayError is returned.
//
// Example:
//
//	w, err := arraylike.Wrap([][]float64{{1, 2}, {3, 4}})
//	w.Shape() // (2, 2)
//	w.DType() // float
func Wrap(raw any) (Wrapper, error) {
	if w, ok := raw.(Wrapper); ok {
		return w, nil
	}

	kind := classify(raw)
	if kind != Dense && !fitsIntStorage(reflect.ValueOf(raw)) {
		return nil, reject(raw, "unsigned value overflows int64")
	}

	switch kind {
	case FlatSequence:
		return &sequenceWrapper{array: raw}, nil
	case NestedSequence:
		rows, cols, _ := rectangularShape(reflect.ValueOf(raw))
		return &nestedWrapper{array: raw, rows: rows, cols: cols}, nil
	case Scalar:
		return &scalarWrapper{value: raw}, nil
	default:
		logger().Debug("arraylike: coercing input to dense array",
			"kind", kind, "type", fmt.Sprintf("%T", raw))
	}

	arr, callerOwned, err := coerceDense(raw)
	if err != nil {
		return nil, reject(raw, err.Error())
	}
	return &denseWrapper{array: arr, callerOwned: callerOwned}, nil
}

func reject(raw any, reason string) *InvalidArrayError {
	invalid := newInvalidArrayError(raw)
	logger().Debug("arraylike: rejected input",
		"type", fmt.Sprintf("%T", raw), "reason", reason, "preview", invalid.Preview)
	return invalid
}

// fitsIntStorage reports whether every unsigned integer in v fits the int64
// storage used for Int elements. Only element types that can hold values
// above math.MaxInt64 are visited.
func fitsIntStorage(v reflect.Value) bool {
	v = unwrap(v)
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		return v.Uint() <= math.MaxInt64
	case reflect.Slice, reflect.Array:
		if !mayHoldWideUnsigned(v.Type().Elem()) {
			return true
		}
		for i := 0; i < v.Len(); i++ {
			if !fitsIntStorage(v.Index(i)) {
				return false
			}
		}
	}
	return true
}

func mayHoldWideUnsigned(t reflect.Type) bool {
	for t.Kind() == reflect.Slice || t.Kind() == reflect.Array {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Uint, reflect.Uint64, reflect.Uintptr, reflect.Interface:
		return true
	}
	return false
}

// MustWrap is like Wrap but panics if raw is not array-like.
func MustWrap(raw any) Wrapper {
	w, err := Wrap(raw)
	if err != nil {
		panic(err)
	}
	return w
}

// allOf implements Wrapper.All for any element iterator.
func allOf(elements iter.Seq[any], pred func(any) bool) bool {
	for e := range elements {
		if !pred(e) {
			return false
		}
	}
	return true
}

// denseFrom builds a fresh dense array from row-major elements.
func denseFrom(shape tensor.Shape, dtype tensor.DataType, elements iter.Seq[any]) *tensor.RawTensor {
	arr, err := tensor.NewRaw(shape, dtype)
	if err != nil {
		panic(err) // shapes of builtin sequences are never negative
	}
	i := 0
	for e := range elements {
		arr.SetFlat(i, e)
		i++
	}
	return arr
}

// checkDataType rejects values outside the supported element types.
func checkDataType(dt tensor.DataType) error {
	if !dt.Valid() {
		return fmt.Errorf("arraylike: unsupported element type %s", dt)
	}
	return nil
}
