package arraylike

import (
	"fmt"
	"iter"

	"github.com/born-ml/arraylike/internal/tensor"
)

// scalarWrapper wraps a single bool, integer or float.
type scalarWrapper struct {
	value any
}

func (*scalarWrapper) isWrapper() {}

func (*scalarWrapper) Kind() Kind { return Scalar }

func (*scalarWrapper) Shape() tensor.Shape { return tensor.Shape{} }

func (*scalarWrapper) NDim() int { return 0 }

func (*scalarWrapper) Size() int { return 1 }

// DType is the runtime type of the value; no inference is needed.
func (w *scalarWrapper) DType() tensor.DataType {
	dt, ok := tensor.ScalarDataType(w.value)
	if !ok {
		panic(fmt.Sprintf("arraylike: scalar wrapper holds %T", w.value))
	}
	return dt
}

func (w *scalarWrapper) AsIterable() iter.Seq[any] {
	return func(yield func(any) bool) {
		yield(w.value)
	}
}

func (w *scalarWrapper) All(pred func(any) bool) bool {
	return pred(w.value)
}

func (w *scalarWrapper) ToList(bool) any { return w.value }

func (w *scalarWrapper) ToTuple(bool) any { return w.value }

func (w *scalarWrapper) ToDense(bool) *tensor.RawTensor {
	return denseFrom(tensor.Shape{}, w.DType(), w.AsIterable())
}

func (w *scalarWrapper) ChangeElementType(dt tensor.DataType) error {
	if err := checkDataType(dt); err != nil {
		return err
	}
	if w.DType() == dt {
		return nil
	}
	w.value = tensor.Canonical(w.value, dt)
	return nil
}

func (w *scalarWrapper) Value() any { return w.value }

func (w *scalarWrapper) String() string {
	return fmt.Sprintf("Scalar(%v)", w.value)
}
