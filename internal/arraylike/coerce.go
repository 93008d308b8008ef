package arraylike

import (
	"math/big"
	"reflect"

	"github.com/pkg/errors"
	"github.com/zclconf/go-cty/cty"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/arraylike/internal/tensor"
)

// maxCoerceDepth bounds the nesting depth accepted by dense coercion.
const maxCoerceDepth = 32

// coerceDense interprets raw as a dense numeric array.
//
// A *tensor.RawTensor is used as-is and reported as caller-owned. Everything
// else is copied into a new array: gonum vectors and matrices, cty values,
// and sequences of any depth whose leaves are scalars, dense arrays, gonum
// values or cty values. Siblings must have identical shapes; the first
// element of each sequence is the reference.
func coerceDense(raw any) (arr *tensor.RawTensor, callerOwned bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			arr, callerOwned, err = nil, false, errors.Errorf("coercion panicked: %v", r)
		}
	}()

	if x, ok := raw.(*tensor.RawTensor); ok {
		if x == nil {
			return nil, false, errors.New("nil dense array")
		}
		return x, true, nil
	}

	b := &denseBuilder{}
	shape, err := b.walk(reflect.ValueOf(raw), 0)
	if err != nil {
		return nil, false, errors.Wrapf(err, "cannot coerce %T to a dense array", raw)
	}

	dtype := tensor.Float
	if b.typed {
		dtype = b.dtype
	}
	arr, err = tensor.NewRaw(shape, dtype)
	if err != nil {
		return nil, false, errors.WithStack(err)
	}
	for i, leaf := range b.leaves {
		arr.SetFlat(i, leaf)
	}
	return arr, false, nil
}

// denseBuilder collects leaves in row-major order and promotes their types.
type denseBuilder struct {
	leaves []any
	dtype  tensor.DataType
	typed  bool
}

func (b *denseBuilder) promote(dt tensor.DataType) {
	if !b.typed {
		b.dtype, b.typed = dt, true
		return
	}
	b.dtype = tensor.Promote(b.dtype, dt)
}

func (b *denseBuilder) add(leaf any, dt tensor.DataType) {
	b.leaves = append(b.leaves, leaf)
	b.promote(dt)
}

func (b *denseBuilder) walk(v reflect.Value, depth int) (tensor.Shape, error) {
	v = unwrap(v)
	if !v.IsValid() {
		return nil, errors.New("nil element")
	}
	if depth > maxCoerceDepth {
		return nil, errors.Errorf("nesting deeper than %d levels", maxCoerceDepth)
	}
	if dt, ok := tensor.KindDataType(v.Kind()); ok {
		if !fitsIntStorage(v) {
			return nil, errors.Errorf("unsigned value %d overflows int64", v.Uint())
		}
		b.add(v.Interface(), dt)
		return tensor.Shape{}, nil
	}

	if v.CanInterface() {
		switch x := v.Interface().(type) {
		case *tensor.RawTensor:
			if x == nil {
				return nil, errors.New("nil dense array")
			}
			b.promote(x.DType())
			for e := range x.Elements() {
				b.leaves = append(b.leaves, e)
			}
			return x.Shape().Clone(), nil
		case mat.Vector:
			n := x.Len()
			b.promote(tensor.Float)
			for i := 0; i < n; i++ {
				b.leaves = append(b.leaves, x.AtVec(i))
			}
			return tensor.Shape{n}, nil
		case mat.Matrix:
			r, c := x.Dims()
			b.promote(tensor.Float)
			for i := 0; i < r; i++ {
				for j := 0; j < c; j++ {
					b.leaves = append(b.leaves, x.At(i, j))
				}
			}
			return tensor.Shape{r, c}, nil
		case cty.Value:
			return b.walkCty(x, depth)
		}
	}

	if !isSequence(v) {
		return nil, errors.Errorf("unsupported element type %s", v.Type())
	}
	if v.Len() == 0 {
		inner, err := b.staticLeaf(v.Type())
		if err != nil {
			return nil, err
		}
		return append(tensor.Shape{0}, inner...), nil
	}
	return b.stack(v.Len(), func(i int) (tensor.Shape, error) {
		return b.walk(v.Index(i), depth+1)
	})
}

// stack walks n children and prepends n to their common shape.
func (b *denseBuilder) stack(n int, child func(i int) (tensor.Shape, error)) (tensor.Shape, error) {
	var inner tensor.Shape
	for i := 0; i < n; i++ {
		s, err := child(i)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			inner = s
		} else if !inner.Equal(s) {
			return nil, errors.Errorf("sub-sequences have irregular shapes, found %v and %v", inner, s)
		}
	}
	return append(tensor.Shape{n}, inner...), nil
}

// staticLeaf inspects the element type of an empty sequence t. It returns the
// inner dimensions fixed by array element types, so [0][3]float64 has shape
// (0, 3). Numeric leaf types contribute their dtype; interface and pointer
// leaves carry no type information; anything else cannot hold numbers.
func (b *denseBuilder) staticLeaf(t reflect.Type) (tensor.Shape, error) {
	inner := tensor.Shape{}
	t = t.Elem()
	for t.Kind() == reflect.Array {
		inner = append(inner, t.Len())
		t = t.Elem()
	}
	for t.Kind() == reflect.Slice || t.Kind() == reflect.Array {
		t = t.Elem()
	}
	if dt, ok := tensor.KindDataType(t.Kind()); ok {
		b.promote(dt)
		return inner, nil
	}
	switch t.Kind() {
	case reflect.Interface, reflect.Pointer:
		return inner, nil
	}
	if t == reflect.TypeFor[cty.Value]() {
		return inner, nil
	}
	return nil, errors.Errorf("unsupported element type %s", t)
}

// walkCty handles configuration values decoded by go-cty: numbers, bools and
// lists, tuples or sets of them.
func (b *denseBuilder) walkCty(val cty.Value, depth int) (tensor.Shape, error) {
	val, _ = val.Unmark()
	if !val.IsKnown() || val.IsNull() {
		return nil, errors.New("unknown or null cty value")
	}

	ty := val.Type()
	switch {
	case ty == cty.Number:
		bf := val.AsBigFloat()
		if bf.IsInt() {
			if i, acc := bf.Int64(); acc == big.Exact {
				b.add(i, tensor.Int)
				return tensor.Shape{}, nil
			}
		}
		f, _ := bf.Float64()
		b.add(f, tensor.Float)
		return tensor.Shape{}, nil
	case ty == cty.Bool:
		b.add(val.True(), tensor.Bool)
		return tensor.Shape{}, nil
	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		n := val.LengthInt()
		if n == 0 {
			return tensor.Shape{0}, nil
		}
		elems := make([]cty.Value, 0, n)
		for it := val.ElementIterator(); it.Next(); {
			_, e := it.Element()
			elems = append(elems, e)
		}
		return b.stack(n, func(i int) (tensor.Shape, error) {
			if depth+1 > maxCoerceDepth {
				return nil, errors.Errorf("nesting deeper than %d levels", maxCoerceDepth)
			}
			return b.walkCty(elems[i], depth+1)
		})
	default:
		return nil, errors.Errorf("unsupported cty type %s", ty.FriendlyName())
	}
}
