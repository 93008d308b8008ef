package tensor

import (
	"fmt"
	"iter"
	"unsafe"
)

// RawTensor is a dense, homogeneous, row-major numeric buffer with its own
// shape and element type metadata.
//
// A RawTensor is never resized or retyped in place: Cast and Clone always
// allocate a new buffer, so an array can be shared read-only once built.
type RawTensor struct {
	data   []byte   // Element storage
	shape  Shape    // Array dimensions
	stride []int    // Element strides (row-major)
	dtype  DataType // Runtime type information
}

// NewRaw creates a new RawTensor with the given shape and type.
// Memory is allocated and zeroed.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if !dtype.Valid() {
		return nil, fmt.Errorf("invalid data type: %s", dtype)
	}

	byteSize := shape.NumElements() * dtype.Size()

	return &RawTensor{
		data:   make([]byte, byteSize),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  dtype,
	}, nil
}

// FromSlice creates a RawTensor from a Go slice laid out in row-major order.
// The slice is copied into the array's memory.
//
// Example:
//
//	raw, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
func FromSlice[T DType](data []T, shape Shape) (*RawTensor, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	var dummy T
	raw, err := NewRaw(shape, inferDataType(dummy))
	if err != nil {
		return nil, err
	}

	switch src := any(data).(type) {
	case []bool:
		copy(raw.AsBool(), src)
	case []int64:
		copy(raw.AsInt64(), src)
	case []float64:
		copy(raw.AsFloat64(), src)
	default:
		// Named element types (~bool, ~int64, ~float64).
		for i, v := range data {
			raw.SetFlat(i, any(v))
		}
	}
	return raw, nil
}

// Shape returns the array's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Strides returns the array's element strides.
func (r *RawTensor) Strides() []int {
	return r.stride
}

// DType returns the array's element type.
func (r *RawTensor) DType() DataType {
	return r.dtype
}

// NDim returns the number of dimensions.
func (r *RawTensor) NDim() int {
	return len(r.shape)
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return r.shape.NumElements()
}

// ByteSize returns the total memory size in bytes.
func (r *RawTensor) ByteSize() int {
	return r.NumElements() * r.dtype.Size()
}

// Data returns the raw byte slice.
// WARNING: Direct access to underlying memory. Use with caution.
func (r *RawTensor) Data() []byte {
	return r.data
}

// AsBool interprets the data as []bool.
// Panics if the array's dtype is not Bool.
func (r *RawTensor) AsBool() []bool {
	if r.dtype != Bool {
		panic(fmt.Sprintf("array dtype is %s, not bool", r.dtype))
	}
	if len(r.data) == 0 {
		return []bool{}
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*bool)(unsafe.Pointer(&r.data[0])), r.NumElements())
}

// AsInt64 interprets the data as []int64.
// Panics if the array's dtype is not Int.
func (r *RawTensor) AsInt64() []int64 {
	if r.dtype != Int {
		panic(fmt.Sprintf("array dtype is %s, not int", r.dtype))
	}
	if len(r.data) == 0 {
		return []int64{}
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*int64)(unsafe.Pointer(&r.data[0])), r.NumElements())
}

// AsFloat64 interprets the data as []float64.
// Panics if the array's dtype is not Float.
func (r *RawTensor) AsFloat64() []float64 {
	if r.dtype != Float {
		panic(fmt.Sprintf("array dtype is %s, not float", r.dtype))
	}
	if len(r.data) == 0 {
		return []float64{}
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*float64)(unsafe.Pointer(&r.data[0])), r.NumElements())
}

// AtFlat returns the element at row-major position i as bool, int64 or float64.
func (r *RawTensor) AtFlat(i int) any {
	switch r.dtype {
	case Bool:
		return r.AsBool()[i]
	case Int:
		return r.AsInt64()[i]
	case Float:
		return r.AsFloat64()[i]
	default:
		panic("unknown data type")
	}
}

// SetFlat stores v at row-major position i, converting it to the array's dtype.
// Panics if v is not a bool, integer or float.
func (r *RawTensor) SetFlat(i int, v any) {
	switch r.dtype {
	case Bool:
		r.AsBool()[i] = ToBool(v)
	case Int:
		r.AsInt64()[i] = ToInt64(v)
	case Float:
		r.AsFloat64()[i] = ToFloat64(v)
	default:
		panic("unknown data type")
	}
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
//
// Example:
//
//	raw, _ := tensor.NewRaw(Shape{3, 4}, tensor.Float)
//	value := raw.At(1, 2) // Row 1, column 2
func (r *RawTensor) At(indices ...int) any {
	if len(indices) != len(r.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(r.shape), len(indices)))
	}

	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= r.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, r.shape[i]))
		}
		offset += idx * r.stride[i]
	}
	return r.AtFlat(offset)
}

// Elements returns a restartable row-major iterator over the elements.
func (r *RawTensor) Elements() iter.Seq[any] {
	return func(yield func(any) bool) {
		n := r.NumElements()
		for i := 0; i < n; i++ {
			if !yield(r.AtFlat(i)) {
				return
			}
		}
	}
}

// Clone creates a deep copy of the RawTensor.
func (r *RawTensor) Clone() *RawTensor {
	return &RawTensor{
		data:   append([]byte(nil), r.data...),
		shape:  r.shape.Clone(),
		stride: append([]int(nil), r.stride...),
		dtype:  r.dtype,
	}
}

// String returns a human-readable representation of the array.
func (r *RawTensor) String() string {
	return fmt.Sprintf("RawTensor[%s]%v", r.dtype, r.shape)
}
