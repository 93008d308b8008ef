package arraylike

import (
	"iter"

	"github.com/born-ml/arraylike/internal/tensor"
)

// denseWrapper wraps a dense array. Shape, dtype and iteration come from the
// array's own metadata.
type denseWrapper struct {
	array *tensor.RawTensor
	// callerOwned is set when array is the very value passed to Wrap, as
	// opposed to one built by coercion or ChangeElementType.
	callerOwned bool
}

func (*denseWrapper) isWrapper() {}

func (*denseWrapper) Kind() Kind { return Dense }

func (w *denseWrapper) Shape() tensor.Shape { return w.array.Shape() }

func (w *denseWrapper) NDim() int { return w.array.NDim() }

func (w *denseWrapper) Size() int { return w.array.NumElements() }

func (w *denseWrapper) DType() tensor.DataType { return w.array.DType() }

func (w *denseWrapper) AsIterable() iter.Seq[any] { return w.array.Elements() }

func (w *denseWrapper) All(pred func(any) bool) bool {
	return allOf(w.array.Elements(), pred)
}

func (w *denseWrapper) ToList(bool) any { return denseNested(w.array, false) }

func (w *denseWrapper) ToTuple(bool) any { return denseNested(w.array, true) }

func (w *denseWrapper) ToDense(copy bool) *tensor.RawTensor {
	if copy && w.callerOwned {
		return w.array.Clone()
	}
	return w.array
}

// ChangeElementType swaps in a newly cast buffer; the previous array,
// possibly owned by the caller, is left unchanged.
func (w *denseWrapper) ChangeElementType(dt tensor.DataType) error {
	if err := checkDataType(dt); err != nil {
		return err
	}
	if w.array.DType() == dt {
		return nil
	}
	cast, err := tensor.Cast(w.array, dt)
	if err != nil {
		return err
	}
	w.array = cast
	w.callerOwned = false
	return nil
}

func (w *denseWrapper) Value() any { return w.array }

func (w *denseWrapper) String() string {
	return "Dense(" + w.array.String() + ")"
}
