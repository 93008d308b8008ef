package validate

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/arraylike/internal/arraylike"
	"github.com/born-ml/arraylike/internal/tensor"
)

// wrap normalizes v, tagging an invalid input with the argument name.
func wrap(v any, name string) (arraylike.Wrapper, error) {
	w, err := arraylike.Wrap(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return w, nil
}

// floatsOf returns the elements of w as float64 in row-major order.
func floatsOf(w arraylike.Wrapper) []float64 {
	out := make([]float64, 0, w.Size())
	for e := range w.AsIterable() {
		out = append(out, tensor.ToFloat64(e))
	}
	return out
}

// bounds returns min and max of w's elements for error messages.
func bounds(w arraylike.Wrapper) (lo, hi float64) {
	vals := floatsOf(w)
	if len(vals) == 0 {
		return math.NaN(), math.NaN()
	}
	return floats.Min(vals), floats.Max(vals)
}

func isFinite(e any) bool {
	f := tensor.ToFloat64(e)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// CheckFinite checks that every element is neither NaN nor ±Inf.
func CheckFinite(v any, name string) error {
	w, err := wrap(v, name)
	if err != nil {
		return err
	}
	return checkFinite(w, name)
}

func checkFinite(w arraylike.Wrapper, name string) error {
	if w.DType() != tensor.Float || w.All(isFinite) {
		return nil
	}
	vals := floatsOf(w)
	if floats.HasNaN(vals) {
		return checkErrorf(name, ErrNotFinite, "contains NaN")
	}
	return checkErrorf(name, ErrNotFinite, "contains Inf")
}

// CheckReal checks that the element type is integer or float, not bool.
func CheckReal(v any, name string) error {
	w, err := wrap(v, name)
	if err != nil {
		return err
	}
	return checkReal(w, name)
}

func checkReal(w arraylike.Wrapper, name string) error {
	if w.DType() == tensor.Bool {
		return checkErrorf(name, ErrNotReal, "got dtype %s", w.DType())
	}
	return nil
}

// CheckInteger checks that every element is a whole number. In strict mode
// the element type itself must be integer.
func CheckInteger(v any, strict bool, name string) error {
	w, err := wrap(v, name)
	if err != nil {
		return err
	}
	return checkInteger(w, strict, name)
}

func checkInteger(w arraylike.Wrapper, strict bool, name string) error {
	switch w.DType() {
	case tensor.Int:
		return nil
	case tensor.Bool:
		return checkErrorf(name, ErrNotInteger, "got dtype %s", w.DType())
	}
	if strict {
		return checkErrorf(name, ErrNotInteger, "got dtype %s", w.DType())
	}
	whole := w.All(func(e any) bool {
		f := tensor.ToFloat64(e)
		return !math.IsInf(f, 0) && f == math.Trunc(f)
	})
	if !whole {
		return checkErrorf(name, ErrNotInteger, "has non-integer values")
	}
	return nil
}

// CheckNonnegative checks that every element is >= 0.
func CheckNonnegative(v any, name string) error {
	return CheckGreaterThan(v, 0, false, name)
}

// CheckGreaterThan checks that every element is > bound (strict) or >= bound.
func CheckGreaterThan(v any, bound float64, strict bool, name string) error {
	w, err := wrap(v, name)
	if err != nil {
		return err
	}
	return checkGreaterThan(w, bound, strict, name)
}

func checkGreaterThan(w arraylike.Wrapper, bound float64, strict bool, name string) error {
	if math.IsNaN(bound) {
		return checkErrorf(name, ErrBadBounds, "bound is NaN")
	}
	ok := w.All(func(e any) bool {
		f := tensor.ToFloat64(e)
		if strict {
			return f > bound
		}
		return f >= bound
	})
	if ok {
		return nil
	}
	lo, _ := bounds(w)
	op := ">="
	if strict {
		op = ">"
	}
	return checkErrorf(name, ErrOutOfRange, "values must all be %s %v, got minimum %v", op, bound, lo)
}

// CheckLessThan checks that every element is < bound (strict) or <= bound.
func CheckLessThan(v any, bound float64, strict bool, name string) error {
	w, err := wrap(v, name)
	if err != nil {
		return err
	}
	return checkLessThan(w, bound, strict, name)
}

func checkLessThan(w arraylike.Wrapper, bound float64, strict bool, name string) error {
	if math.IsNaN(bound) {
		return checkErrorf(name, ErrBadBounds, "bound is NaN")
	}
	ok := w.All(func(e any) bool {
		f := tensor.ToFloat64(e)
		if strict {
			return f < bound
		}
		return f <= bound
	})
	if ok {
		return nil
	}
	_, hi := bounds(w)
	op := "<="
	if strict {
		op = "<"
	}
	return checkErrorf(name, ErrOutOfRange, "values must all be %s %v, got maximum %v", op, bound, hi)
}

// CheckRange checks that every element lies within rng. Each end is
// exclusive when the matching strict flag is set.
func CheckRange(v any, rng [2]float64, strictLower, strictUpper bool, name string) error {
	w, err := wrap(v, name)
	if err != nil {
		return err
	}
	return checkRange(w, rng, strictLower, strictUpper, name)
}

func checkRange(w arraylike.Wrapper, rng [2]float64, strictLower, strictUpper bool, name string) error {
	if rng[0] > rng[1] {
		return checkErrorf(name, ErrBadBounds, "lower bound %v exceeds upper bound %v", rng[0], rng[1])
	}
	if err := checkGreaterThan(w, rng[0], strictLower, name); err != nil {
		return err
	}
	return checkLessThan(w, rng[1], strictUpper, name)
}

// CheckSorted checks element order. Arrays with two or more dimensions are
// checked along their last axis.
func CheckSorted(v any, ascending, strict bool, name string) error {
	w, err := wrap(v, name)
	if err != nil {
		return err
	}
	return checkSorted(w, ascending, strict, name)
}

func checkSorted(w arraylike.Wrapper, ascending, strict bool, name string) error {
	if w.NDim() == 0 || w.Size() == 0 {
		return nil
	}
	shape := w.Shape()
	rowLen := shape[len(shape)-1]
	vals := floatsOf(w)
	for start := 0; start < len(vals); start += rowLen {
		row := vals[start : start+rowLen]
		for i := 1; i < len(row); i++ {
			prev, cur := row[i-1], row[i]
			if !ascending {
				prev, cur = cur, prev
			}
			// NaN compares false both ways, so it never counts as in order.
			inOrder := prev <= cur
			if strict {
				inOrder = prev < cur
			}
			if !inOrder {
				order := "ascending"
				if !ascending {
					order = "descending"
				}
				if strict {
					order = "strictly " + order
				}
				return checkErrorf(name, ErrNotSorted, "must be sorted in %s order", order)
			}
		}
	}
	return nil
}

// CheckShape checks that the shape matches at least one of shapes.
// A -1 in a pattern accepts any length along that axis.
func CheckShape(v any, name string, shapes ...tensor.Shape) error {
	w, err := wrap(v, name)
	if err != nil {
		return err
	}
	return checkShape(w, name, shapes...)
}

func checkShape(w arraylike.Wrapper, name string, shapes ...tensor.Shape) error {
	for _, s := range shapes {
		if w.Shape().Matches(s) {
			return nil
		}
	}
	return checkErrorf(name, ErrShapeMismatch, "got shape %v, expected one of %v", w.Shape(), shapes)
}

// CheckNDim checks that the number of dimensions is one of ndims.
func CheckNDim(v any, name string, ndims ...int) error {
	w, err := wrap(v, name)
	if err != nil {
		return err
	}
	return checkNDim(w, name, ndims...)
}

func checkNDim(w arraylike.Wrapper, name string, ndims ...int) error {
	if slices.Contains(ndims, w.NDim()) {
		return nil
	}
	return checkErrorf(name, ErrNDimMismatch, "got ndim %d, expected one of %v", w.NDim(), ndims)
}

// length is the extent of the first axis; a scalar has length 1.
func length(w arraylike.Wrapper) int {
	if w.NDim() == 0 {
		return 1
	}
	return w.Shape()[0]
}

// CheckLength checks that the first axis has exactly n elements.
func CheckLength(v any, n int, name string) error {
	return CheckLengthBetween(v, n, n, name)
}

// CheckLengthBetween checks that the first axis has between lo and hi
// elements inclusive. A negative hi means no upper limit.
func CheckLengthBetween(v any, lo, hi int, name string) error {
	w, err := wrap(v, name)
	if err != nil {
		return err
	}
	return checkLength(w, lo, hi, name)
}

func checkLength(w arraylike.Wrapper, lo, hi int, name string) error {
	if hi >= 0 && lo > hi {
		return checkErrorf(name, ErrBadBounds, "minimum length %d exceeds maximum length %d", lo, hi)
	}
	n := length(w)
	switch {
	case lo == hi && n != lo:
		return checkErrorf(name, ErrLengthMismatch, "must have length %d, got %d", lo, n)
	case n < lo:
		return checkErrorf(name, ErrLengthMismatch, "must have a minimum length of %d, got %d", lo, n)
	case hi >= 0 && n > hi:
		return checkErrorf(name, ErrLengthMismatch, "must have a maximum length of %d, got %d", hi, n)
	}
	return nil
}

// CheckSubDType checks that the element type is one of dtypes.
func CheckSubDType(v any, name string, dtypes ...tensor.DataType) error {
	w, err := wrap(v, name)
	if err != nil {
		return err
	}
	return checkDType(w, name, dtypes...)
}

func checkDType(w arraylike.Wrapper, name string, dtypes ...tensor.DataType) error {
	if slices.Contains(dtypes, w.DType()) {
		return nil
	}
	return checkErrorf(name, ErrDTypeMismatch, "got dtype %s, expected one of %v", w.DType(), dtypes)
}

// CheckContains checks that item is one of allowed.
func CheckContains[T comparable](item T, name string, allowed ...T) error {
	if slices.Contains(allowed, item) {
		return nil
	}
	return checkErrorf(name, ErrNotAllowed, "%v is not in %v", item, allowed)
}
