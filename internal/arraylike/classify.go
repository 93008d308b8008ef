package arraylike

import (
	"reflect"

	"github.com/born-ml/arraylike/internal/tensor"
)

// Kind identifies which wrapper variant represents an input.
type Kind int

// Input kinds, in the order the classifier tries them.
const (
	Scalar Kind = iota
	FlatSequence
	NestedSequence
	Dense
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case Scalar:
		return "Scalar"
	case FlatSequence:
		return "FlatSequence"
	case NestedSequence:
		return "NestedSequence"
	case Dense:
		return "Dense"
	default:
		return "Unknown"
	}
}

// classify determines the kind of raw. It never fails: anything that is not a
// scalar or a flat/rectangular nested sequence is Dense.
func classify(raw any) Kind {
	rv := reflect.ValueOf(raw)
	switch {
	case isFlatSequence(rv):
		return FlatSequence
	case isNestedSequence(rv):
		return NestedSequence
	case tensor.IsScalar(raw):
		return Scalar
	default:
		return Dense
	}
}

// isSequence reports whether v is a Go slice or array.
func isSequence(v reflect.Value) bool {
	if !v.IsValid() {
		return false
	}
	k := v.Kind()
	return k == reflect.Slice || k == reflect.Array
}

// unwrap strips interface boxing from sequence elements.
func unwrap(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

// isScalarValue reports whether v holds a bool, integer or float.
func isScalarValue(v reflect.Value) bool {
	if !v.IsValid() {
		return false
	}
	_, ok := tensor.KindDataType(v.Kind())
	return ok
}

// staticDataType returns the element type of a sequence when its Go element
// type already fixes it, without visiting the elements.
func staticDataType(t reflect.Type) (tensor.DataType, bool) {
	return tensor.KindDataType(t.Elem().Kind())
}

// isFlatSequence reports whether v is a depth-1 sequence of numeric scalars.
func isFlatSequence(v reflect.Value) bool {
	if !isSequence(v) {
		return false
	}
	if _, ok := staticDataType(v.Type()); ok {
		return true
	}
	if v.Type().Elem().Kind() != reflect.Interface {
		return false
	}
	for i := 0; i < v.Len(); i++ {
		if !isScalarValue(unwrap(v.Index(i))) {
			return false
		}
	}
	return true
}

// rectangularShape returns (rows, cols) when v is a non-empty sequence of
// flat sequences that all have the same length.
func rectangularShape(v reflect.Value) (rows, cols int, ok bool) {
	if !isSequence(v) || v.Len() == 0 {
		return 0, 0, false
	}
	rows = v.Len()
	for i := 0; i < rows; i++ {
		row := unwrap(v.Index(i))
		if !isFlatSequence(row) {
			return 0, 0, false
		}
		if i == 0 {
			cols = row.Len()
		} else if row.Len() != cols {
			return 0, 0, false
		}
	}
	return rows, cols, true
}

func isNestedSequence(v reflect.Value) bool {
	_, _, ok := rectangularShape(v)
	return ok
}
