package arraylike

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/born-ml/arraylike/internal/tensor"
)

// sequenceWrapper wraps a flat Go slice or array of numeric scalars.
type sequenceWrapper struct {
	array      any
	dtype      tensor.DataType
	dtypeKnown bool
}

func (*sequenceWrapper) isWrapper() {}

func (*sequenceWrapper) Kind() Kind { return FlatSequence }

func (w *sequenceWrapper) rv() reflect.Value { return reflect.ValueOf(w.array) }

func (w *sequenceWrapper) Shape() tensor.Shape { return tensor.Shape{w.rv().Len()} }

func (*sequenceWrapper) NDim() int { return 1 }

func (w *sequenceWrapper) Size() int { return w.rv().Len() }

func (w *sequenceWrapper) DType() tensor.DataType {
	if !w.dtypeKnown {
		if dt, ok := staticDataType(w.rv().Type()); ok {
			w.dtype = dt
		} else {
			w.dtype = inferDType(w.AsIterable())
		}
		w.dtypeKnown = true
	}
	return w.dtype
}

func (w *sequenceWrapper) AsIterable() iter.Seq[any] {
	return func(yield func(any) bool) {
		v := w.rv()
		for i := 0; i < v.Len(); i++ {
			if !yield(unwrap(v.Index(i)).Interface()) {
				return
			}
		}
	}
}

func (w *sequenceWrapper) All(pred func(any) bool) bool {
	return allOf(w.AsIterable(), pred)
}

func (w *sequenceWrapper) ToList(copy bool) any {
	v := w.rv()
	if v.Kind() == reflect.Slice {
		if copy {
			return deepCopy(v).Interface()
		}
		return w.array
	}
	return flatTo(v, elemTypeOf(v), false).Interface()
}

func (w *sequenceWrapper) ToTuple(copy bool) any {
	v := w.rv()
	if v.Kind() == reflect.Array {
		if copy {
			return deepCopy(v).Interface()
		}
		return w.array
	}
	return flatTo(v, elemTypeOf(v), true).Interface()
}

func (w *sequenceWrapper) ToDense(bool) *tensor.RawTensor {
	return denseFrom(w.Shape(), w.DType(), w.AsIterable())
}

func (w *sequenceWrapper) ChangeElementType(dt tensor.DataType) error {
	if err := checkDataType(dt); err != nil {
		return err
	}
	if w.DType() == dt {
		return nil
	}
	v := w.rv()
	if acceptsInPlace(v, dt) {
		rewriteInPlace(v, dt)
	} else {
		w.array = canonicalFlat(v, dt, v.Kind() == reflect.Array).Interface()
	}
	w.dtype = dt
	return nil
}

func (w *sequenceWrapper) Value() any { return w.array }

func (w *sequenceWrapper) String() string {
	return fmt.Sprintf("FlatSequence(%v)", w.array)
}
