package arraylike

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/born-ml/arraylike/internal/tensor"
)

// nestedWrapper wraps a rectangular sequence of flat numeric sequences.
//
// rows and cols are fixed by the classifier's rectangularity check when the
// wrapper is built, so the shape never depends on the first row alone.
type nestedWrapper struct {
	array      any
	rows, cols int
	dtype      tensor.DataType
	dtypeKnown bool
}

func (*nestedWrapper) isWrapper() {}

func (*nestedWrapper) Kind() Kind { return NestedSequence }

func (w *nestedWrapper) rv() reflect.Value { return reflect.ValueOf(w.array) }

func (w *nestedWrapper) row(i int) reflect.Value { return unwrap(w.rv().Index(i)) }

func (w *nestedWrapper) Shape() tensor.Shape { return tensor.Shape{w.rows, w.cols} }

func (*nestedWrapper) NDim() int { return 2 }

func (w *nestedWrapper) Size() int { return w.rows * w.cols }

func (w *nestedWrapper) DType() tensor.DataType {
	if !w.dtypeKnown {
		w.dtype = w.inferDType()
		w.dtypeKnown = true
	}
	return w.dtype
}

// inferDType promotes the static element types of typed rows and scans only
// rows stored as []any.
func (w *nestedWrapper) inferDType() tensor.DataType {
	dtype := tensor.Bool
	for i := 0; i < w.rows; i++ {
		dt, ok := staticDataType(w.row(i).Type())
		if !ok {
			return inferDType(w.AsIterable())
		}
		dtype = tensor.Promote(dtype, dt)
	}
	return dtype
}

func (w *nestedWrapper) AsIterable() iter.Seq[any] {
	return func(yield func(any) bool) {
		for i := 0; i < w.rows; i++ {
			row := w.row(i)
			for j := 0; j < row.Len(); j++ {
				if !yield(unwrap(row.Index(j)).Interface()) {
					return
				}
			}
		}
	}
}

func (w *nestedWrapper) All(pred func(any) bool) bool {
	return allOf(w.AsIterable(), pred)
}

// hasForm reports whether the outer container and every row are of kind k.
func (w *nestedWrapper) hasForm(k reflect.Kind) bool {
	if w.rv().Kind() != k {
		return false
	}
	for i := 0; i < w.rows; i++ {
		if w.row(i).Kind() != k {
			return false
		}
	}
	return true
}

// rebuild creates a fresh nested container whose rows are built by mkRow.
func (w *nestedWrapper) rebuild(rowType reflect.Type, asArray bool, mkRow func(reflect.Value) reflect.Value) reflect.Value {
	var out reflect.Value
	if asArray {
		out = reflect.New(reflect.ArrayOf(w.rows, rowType)).Elem()
	} else {
		out = reflect.MakeSlice(reflect.SliceOf(rowType), w.rows, w.rows)
	}
	for i := 0; i < w.rows; i++ {
		out.Index(i).Set(mkRow(w.row(i)))
	}
	return out
}

func (w *nestedWrapper) convert(asArray bool) any {
	et := nestedElemType(w.rv())
	var rowType reflect.Type
	if asArray {
		rowType = reflect.ArrayOf(w.cols, et)
	} else {
		rowType = reflect.SliceOf(et)
	}
	return w.rebuild(rowType, asArray, func(row reflect.Value) reflect.Value {
		return flatTo(row, et, asArray)
	}).Interface()
}

func (w *nestedWrapper) ToList(copy bool) any {
	if w.hasForm(reflect.Slice) {
		if copy {
			return deepCopy(w.rv()).Interface()
		}
		return w.array
	}
	return w.convert(false)
}

func (w *nestedWrapper) ToTuple(copy bool) any {
	if w.hasForm(reflect.Array) {
		if copy {
			return deepCopy(w.rv()).Interface()
		}
		return w.array
	}
	return w.convert(true)
}

func (w *nestedWrapper) ToDense(bool) *tensor.RawTensor {
	return denseFrom(w.Shape(), w.DType(), w.AsIterable())
}

// ChangeElementType rewrites rows in place when the outer container is a
// slice and every row is a slice of interfaces; otherwise it rebuilds the
// value, keeping the outer container kind and the kind of the first row.
func (w *nestedWrapper) ChangeElementType(dt tensor.DataType) error {
	if err := checkDataType(dt); err != nil {
		return err
	}
	if w.DType() == dt {
		return nil
	}

	if w.rv().Kind() == reflect.Slice && w.rowsAcceptInPlace(dt) {
		for i := 0; i < w.rows; i++ {
			rewriteInPlace(w.row(i), dt)
		}
	} else {
		rowsAsArray := w.rows > 0 && w.row(0).Kind() == reflect.Array
		et := tensor.CanonicalType(dt)
		rowType := reflect.SliceOf(et)
		if rowsAsArray {
			rowType = reflect.ArrayOf(w.cols, et)
		}
		w.array = w.rebuild(rowType, w.rv().Kind() == reflect.Array, func(row reflect.Value) reflect.Value {
			return canonicalFlat(row, dt, rowsAsArray)
		}).Interface()
	}
	w.dtype = dt
	return nil
}

func (w *nestedWrapper) rowsAcceptInPlace(dt tensor.DataType) bool {
	for i := 0; i < w.rows; i++ {
		if !acceptsInPlace(w.row(i), dt) {
			return false
		}
	}
	return true
}

func (w *nestedWrapper) Value() any { return w.array }

func (w *nestedWrapper) String() string {
	return fmt.Sprintf("NestedSequence(%v)", w.array)
}
