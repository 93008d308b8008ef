package tensor

import (
	"fmt"
	"reflect"

	"github.com/born-ml/arraylike/internal/parallel"
)

// KindDataType maps a reflect.Kind to the element type it represents.
// Returns false for kinds that are not numeric scalars (complex numbers
// included, since they have no ordering).
func KindDataType(k reflect.Kind) (DataType, bool) {
	switch k {
	case reflect.Bool:
		return Bool, true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Int, true
	case reflect.Float32, reflect.Float64:
		return Float, true
	default:
		return 0, false
	}
}

// ScalarDataType returns the element type of a Go numeric scalar.
func ScalarDataType(v any) (DataType, bool) {
	switch v.(type) {
	case bool:
		return Bool, true
	case int, int64, int32, int16, int8, uint, uint64, uint32, uint16, uint8, uintptr:
		return Int, true
	case float64, float32:
		return Float, true
	case nil:
		return 0, false
	}
	return KindDataType(reflect.TypeOf(v).Kind())
}

// IsScalar reports whether v is a bool, integer or float (including named types).
func IsScalar(v any) bool {
	_, ok := ScalarDataType(v)
	return ok
}

// ToFloat64 converts a numeric scalar to float64.
// Panics if v is not a numeric scalar.
func ToFloat64(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case bool:
		if x {
			return 1
		}
		return 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		if rv.Bool() {
			return 1
		}
		return 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	default:
		panic(fmt.Sprintf("tensor: %T is not a numeric scalar", v))
	}
}

// ToInt64 converts a numeric scalar to int64, truncating floats toward zero.
// Unsigned values above math.MaxInt64 wrap; callers reject them first.
// Panics if v is not a numeric scalar.
func ToInt64(v any) int64 {
	switch x := v.(type) {
	case int64:
		return x
	case int:
		return int64(x)
	case float64:
		return int64(x)
	case bool:
		if x {
			return 1
		}
		return 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		if rv.Bool() {
			return 1
		}
		return 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return int64(rv.Uint()) //nolint:gosec // range checked by callers
	case reflect.Float32, reflect.Float64:
		return int64(rv.Float())
	default:
		panic(fmt.Sprintf("tensor: %T is not a numeric scalar", v))
	}
}

// ToBool converts a numeric scalar to bool (non-zero is true).
// Panics if v is not a numeric scalar.
func ToBool(v any) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Bool {
		return rv.Bool()
	}
	return ToFloat64(v) != 0
}

// Canonical converts a numeric scalar to the canonical Go value of dtype:
// bool, int or float64.
func Canonical(v any, dtype DataType) any {
	switch dtype {
	case Bool:
		return ToBool(v)
	case Int:
		return int(ToInt64(v))
	case Float:
		return ToFloat64(v)
	default:
		panic("unknown data type")
	}
}

// CanonicalType returns the Go type used for dtype in builtin sequences.
func CanonicalType(dtype DataType) reflect.Type {
	switch dtype {
	case Bool:
		return reflect.TypeFor[bool]()
	case Int:
		return reflect.TypeFor[int]()
	case Float:
		return reflect.TypeFor[float64]()
	default:
		panic("unknown data type")
	}
}

// StorageType returns the Go type a RawTensor uses to store dtype.
func StorageType(dtype DataType) reflect.Type {
	switch dtype {
	case Bool:
		return reflect.TypeFor[bool]()
	case Int:
		return reflect.TypeFor[int64]()
	case Float:
		return reflect.TypeFor[float64]()
	default:
		panic("unknown data type")
	}
}

// Cast converts an array to a different data type.
// The result never shares memory with x.
func Cast(x *RawTensor, dtype DataType) (*RawTensor, error) {
	if x == nil {
		return nil, fmt.Errorf("Cast: input array is nil")
	}

	if x.dtype == dtype {
		return x.Clone(), nil
	}

	result, err := NewRaw(x.shape, dtype)
	if err != nil {
		return nil, fmt.Errorf("Cast: %w", err)
	}

	switch x.dtype {
	case Bool:
		castFromBool(x.AsBool(), result, dtype)
	case Int:
		castFromInt64(x.AsInt64(), result, dtype)
	case Float:
		castFromFloat64(x.AsFloat64(), result, dtype)
	default:
		return nil, fmt.Errorf("Cast: unsupported source dtype %v", x.dtype)
	}

	return result, nil
}

// castConfig controls how casts of large arrays are split across goroutines.
var castConfig = parallel.DefaultConfig()

func castFromBool(in []bool, out *RawTensor, dtype DataType) {
	switch dtype {
	case Int:
		castChunks(in, out.AsInt64(), func(v bool) int64 {
			if v {
				return 1
			}
			return 0
		})
	case Float:
		castChunks(in, out.AsFloat64(), func(v bool) float64 {
			if v {
				return 1
			}
			return 0
		})
	}
}

func castFromInt64(in []int64, out *RawTensor, dtype DataType) {
	switch dtype {
	case Bool:
		castChunks(in, out.AsBool(), func(v int64) bool { return v != 0 })
	case Float:
		castChunks(in, out.AsFloat64(), func(v int64) float64 { return float64(v) })
	}
}

func castFromFloat64(in []float64, out *RawTensor, dtype DataType) {
	switch dtype {
	case Bool:
		castChunks(in, out.AsBool(), func(v float64) bool { return v != 0 })
	case Int:
		castChunks(in, out.AsInt64(), func(v float64) int64 { return int64(v) })
	}
}

// castChunks converts in into dst element by element; dst has len(in) elements.
func castChunks[S, D any](in []S, dst []D, conv func(S) D) {
	parallel.ForChunks(len(in), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = conv(in[i])
		}
	}, castConfig)
}
