package validate

import (
	"fmt"
	"reflect"

	"github.com/born-ml/arraylike/internal/arraylike"
	"github.com/born-ml/arraylike/internal/tensor"
)

// ValidateArray runs the checks enabled in cfg and returns the value in the
// configured representation.
//
// Checks run in a fixed order: shape, ndim, length, dtype, real, integer,
// finite, nonnegative, range, sorted. The first failure is returned.
//
// Example:
//
//	cfg := validate.DefaultArrayConfig()
//	cfg.Name = "points"
//	cfg.MustHaveShape = []tensor.Shape{{-1, 3}}
//	cfg.MustBeFinite = true
//	out, err := validate.ValidateArray([][]float64{{0, 0, 0}, {1, 1, 1}}, cfg)
func ValidateArray(v any, cfg ArrayConfig) (any, error) {
	w, err := validateWrapped(v, cfg)
	if err != nil {
		return nil, err
	}

	switch cfg.ReturnType {
	case ReturnList:
		return w.ToList(cfg.CopyOnReturn), nil
	case ReturnTuple:
		return w.ToTuple(cfg.CopyOnReturn), nil
	case ReturnDense:
		return w.ToDense(cfg.CopyOnReturn), nil
	case ReturnWrapper:
		return w, nil
	default:
		return nil, fmt.Errorf("validate: unsupported return type %s", cfg.ReturnType)
	}
}

func validateWrapped(v any, cfg ArrayConfig) (arraylike.Wrapper, error) {
	name := cfg.Name
	w, err := wrap(v, name)
	if err != nil {
		return nil, err
	}

	if len(cfg.MustHaveShape) > 0 {
		if err := checkShape(w, name, cfg.MustHaveShape...); err != nil {
			return nil, err
		}
	}
	if len(cfg.MustHaveNDim) > 0 {
		if err := checkNDim(w, name, cfg.MustHaveNDim...); err != nil {
			return nil, err
		}
	}
	if cfg.MustHaveLength >= 0 {
		if err := checkLength(w, cfg.MustHaveLength, cfg.MustHaveLength, name); err != nil {
			return nil, err
		}
	}
	if len(cfg.MustHaveDType) > 0 {
		if err := checkDType(w, name, cfg.MustHaveDType...); err != nil {
			return nil, err
		}
	}
	if cfg.MustBeReal {
		if err := checkReal(w, name); err != nil {
			return nil, err
		}
	}
	if cfg.MustBeInteger {
		if err := checkInteger(w, false, name); err != nil {
			return nil, err
		}
	}
	if cfg.MustBeFinite {
		if err := checkFinite(w, name); err != nil {
			return nil, err
		}
	}
	if cfg.MustBeNonnegative {
		if err := checkGreaterThan(w, 0, false, name); err != nil {
			return nil, err
		}
	}
	if cfg.MustBeInRange != nil {
		if err := checkRange(w, *cfg.MustBeInRange, cfg.StrictLowerBound, cfg.StrictUpperBound, name); err != nil {
			return nil, err
		}
	}
	if cfg.MustBeSorted {
		if err := checkSorted(w, !cfg.Descending, cfg.StrictlySorted, name); err != nil {
			return nil, err
		}
	}

	if cfg.CopyOnReturn {
		w = detach(w)
	}
	if cfg.DTypeOut != nil {
		if err := w.ChangeElementType(*cfg.DTypeOut); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}
	return w, nil
}

// detach returns a wrapper whose storage shares nothing mutable with w, so
// a later ChangeElementType cannot reach the caller's value or wrapper.
func detach(w arraylike.Wrapper) arraylike.Wrapper {
	switch w.Kind() {
	case arraylike.Dense:
		return arraylike.MustWrap(w.ToDense(true))
	case arraylike.Scalar:
		return arraylike.MustWrap(w.Value())
	}
	if reflect.ValueOf(w.Value()).Kind() == reflect.Array {
		return arraylike.MustWrap(w.ToTuple(true))
	}
	return arraylike.MustWrap(w.ToList(true))
}

// ValidateNumber validates a single real number. Inputs of size 1 in any
// shape, such as []float64{2} or [][]int{{2}}, are accepted.
func ValidateNumber(v any, name string) (float64, error) {
	w, err := wrap(v, name)
	if err != nil {
		return 0, err
	}
	if w.Size() != 1 {
		return 0, checkErrorf(name, ErrShapeMismatch, "must be a single number, got shape %v", w.Shape())
	}
	if err := checkReal(w, name); err != nil {
		return 0, err
	}
	return floatsOf(w)[0], nil
}

// ValidateArray3 validates a 3-vector. A single number is broadcast to all
// three components; shapes (3,), (1, 3) and (3, 1) are accepted.
func ValidateArray3(v any, name string) ([3]float64, error) {
	var out [3]float64
	w, err := wrap(v, name)
	if err != nil {
		return out, err
	}
	if err := checkReal(w, name); err != nil {
		return out, err
	}
	if w.NDim() == 0 {
		f := floatsOf(w)[0]
		return [3]float64{f, f, f}, nil
	}
	if err := checkShape(w, name, tensor.Shape{3}, tensor.Shape{1, 3}, tensor.Shape{3, 1}); err != nil {
		return out, err
	}
	copy(out[:], floatsOf(w))
	return out, nil
}

// vectorShapes are the shapes ValidateArrayN flattens to one dimension.
var vectorShapes = []tensor.Shape{{}, {-1}, {1, -1}, {-1, 1}}

// ValidateArrayN validates a vector of any length. A single number becomes a
// vector of length 1; row and column vectors of shape (1, N) and (N, 1) are
// flattened.
func ValidateArrayN(v any, name string) ([]float64, error) {
	w, err := wrap(v, name)
	if err != nil {
		return nil, err
	}
	if err := checkShape(w, name, vectorShapes...); err != nil {
		return nil, err
	}
	if err := checkReal(w, name); err != nil {
		return nil, err
	}
	return floatsOf(w), nil
}

// ValidateArrayNUintLike validates a vector of nonnegative whole numbers,
// accepting the same shapes as ValidateArrayN. Float elements are allowed
// when they hold integral values.
func ValidateArrayNUintLike(v any, name string) ([]int, error) {
	w, err := wrap(v, name)
	if err != nil {
		return nil, err
	}
	if err := checkShape(w, name, vectorShapes...); err != nil {
		return nil, err
	}
	if err := checkInteger(w, false, name); err != nil {
		return nil, err
	}
	if err := checkGreaterThan(w, 0, false, name); err != nil {
		return nil, err
	}
	out := make([]int, 0, w.Size())
	for e := range w.AsIterable() {
		out = append(out, int(tensor.ToInt64(e)))
	}
	return out, nil
}

// ValidateArrayNx3 validates an array of 3-vectors with shape (N, 3). A
// single 3-vector of shape (3,) is treated as (1, 3).
func ValidateArrayNx3(v any, name string) ([][3]float64, error) {
	w, err := wrap(v, name)
	if err != nil {
		return nil, err
	}
	if err := checkReal(w, name); err != nil {
		return nil, err
	}
	if err := checkShape(w, name, tensor.Shape{3}, tensor.Shape{-1, 3}); err != nil {
		return nil, err
	}
	vals := floatsOf(w)
	out := make([][3]float64, len(vals)/3)
	for i := range out {
		copy(out[i][:], vals[3*i:3*i+3])
	}
	return out, nil
}

// ValidateDataRange validates a (lower, upper) pair with lower <= upper.
func ValidateDataRange(v any, name string) ([2]float64, error) {
	var out [2]float64
	w, err := wrap(v, name)
	if err != nil {
		return out, err
	}
	if err := checkShape(w, name, tensor.Shape{2}); err != nil {
		return out, err
	}
	if err := checkReal(w, name); err != nil {
		return out, err
	}
	if err := checkSorted(w, true, false, name); err != nil {
		return out, err
	}
	copy(out[:], floatsOf(w))
	return out, nil
}

// ValidateTransform3x3 validates a 3x3 matrix such as a rotation. gonum
// matrices are accepted through dense coercion.
func ValidateTransform3x3(v any, name string) ([3][3]float64, error) {
	var out [3][3]float64
	w, err := wrap(v, name)
	if err != nil {
		return out, err
	}
	if err := checkShape(w, name, tensor.Shape{3, 3}); err != nil {
		return out, err
	}
	if err := checkReal(w, name); err != nil {
		return out, err
	}
	if err := checkFinite(w, name); err != nil {
		return out, err
	}
	vals := floatsOf(w)
	for i := range out {
		copy(out[i][:], vals[3*i:3*i+3])
	}
	return out, nil
}

// ValidateTransform4x4 validates a 4x4 transformation matrix. A 3x3 input is
// embedded in the upper-left block of the identity. gonum matrices are
// accepted through dense coercion.
func ValidateTransform4x4(v any, name string) ([4][4]float64, error) {
	out := [4][4]float64{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}}
	w, err := wrap(v, name)
	if err != nil {
		return out, err
	}
	if err := checkShape(w, name, tensor.Shape{3, 3}, tensor.Shape{4, 4}); err != nil {
		return out, err
	}
	if err := checkReal(w, name); err != nil {
		return out, err
	}
	if err := checkFinite(w, name); err != nil {
		return out, err
	}
	n := w.Shape()[0]
	vals := floatsOf(w)
	for i := 0; i < n; i++ {
		copy(out[i][:n], vals[i*n:(i+1)*n])
	}
	return out, nil
}
