// Package tensor provides the dense array type and element type metadata
// shared by the array-like wrappers.
package tensor

import (
	"fmt"
	"reflect"
)

// DType is a constraint for the Go types a dense array can store.
type DType interface {
	~bool | ~int64 | ~float64
}

// DataType is the element type of an array-like value.
//
// Values are ordered by promotion rank: Bool < Int < Float.
type DataType int

// Supported element types.
const (
	Bool DataType = iota
	Int
	Float
)

// Size returns the byte size of one element in a dense buffer.
func (dt DataType) Size() int {
	switch dt {
	case Bool:
		return 1
	case Int, Float:
		return 8
	default:
		panic("unknown data type")
	}
}

// Rank returns the promotion rank of the data type.
func (dt DataType) Rank() int {
	return int(dt)
}

// Valid reports whether dt is one of the supported element types.
func (dt DataType) Valid() bool {
	return dt >= Bool && dt <= Float
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	default:
		return fmt.Sprintf("DataType(%d)", int(dt))
	}
}

// Promote returns the least specific type able to represent both a and b.
func Promote(a, b DataType) DataType {
	if a.Rank() >= b.Rank() {
		return a
	}
	return b
}

// inferDataType infers DataType from a generic type T.
func inferDataType[T DType](dummy T) DataType {
	dt, ok := KindDataType(reflect.TypeOf(dummy).Kind())
	if !ok {
		panic("unsupported type")
	}
	return dt
}
