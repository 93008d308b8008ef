package arraylike

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/arraylike/internal/tensor"
)

func TestCoerceDepthThree(t *testing.T) {
	w, err := Wrap([][][]int{{{1, 2}}, {{3, 4}}})
	require.NoError(t, err)

	assert.Equal(t, Dense, w.Kind())
	assert.Equal(t, tensor.Shape{2, 1, 2}, w.Shape())
	assert.Equal(t, tensor.Int, w.DType())
	if diff := cmp.Diff([][][]int64{{{1, 2}}, {{3, 4}}}, w.ToList(false)); diff != "" {
		t.Errorf("ToList mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([2][1][2]int64{{{1, 2}}, {{3, 4}}}, w.ToTuple(false)); diff != "" {
		t.Errorf("ToTuple mismatch (-want +got):\n%s", diff)
	}
}

func TestCoercePromotesLeaves(t *testing.T) {
	w, err := Wrap([]any{[]any{[]any{true}}, [][]float64{{2.5}}})
	require.NoError(t, err)
	assert.Equal(t, tensor.Float, w.DType())
	assert.Equal(t, []float64{1, 2.5}, w.ToDense(false).AsFloat64())
}

func TestCoerceGonum(t *testing.T) {
	m := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	w, err := Wrap(m)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 3}, w.Shape())
	assert.Equal(t, tensor.Float, w.DType())
	if diff := cmp.Diff([][]float64{{1, 2, 3}, {4, 5, 6}}, w.ToList(false)); diff != "" {
		t.Errorf("ToList mismatch (-want +got):\n%s", diff)
	}

	// The dense copy is independent of the matrix.
	m.Set(0, 0, 99)
	assert.Equal(t, 1.0, w.ToDense(false).At(0, 0))

	v := mat.NewVecDense(3, []float64{7, 8, 9})
	w, err = Wrap(v)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{3}, w.Shape())
	assert.Equal(t, []float64{7, 8, 9}, w.ToDense(false).AsFloat64())

	stacked, err := Wrap([]mat.Matrix{mat.NewDense(1, 2, []float64{1, 2}), mat.NewDense(1, 2, []float64{3, 4})})
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 1, 2}, stacked.Shape())
}

func TestCoerceGonumNilMatrix(t *testing.T) {
	_, err := Wrap((*mat.Dense)(nil))
	assert.ErrorIs(t, err, ErrInvalidArray)
}

func TestCoerceCty(t *testing.T) {
	tests := []struct {
		name  string
		in    cty.Value
		shape tensor.Shape
		dtype tensor.DataType
		want  []any
	}{
		{
			name:  "integral list",
			in:    cty.ListVal([]cty.Value{cty.NumberIntVal(1), cty.NumberIntVal(2)}),
			shape: tensor.Shape{2},
			dtype: tensor.Int,
			want:  []any{int64(1), int64(2)},
		},
		{
			name:  "mixed tuple",
			in:    cty.TupleVal([]cty.Value{cty.True, cty.NumberFloatVal(2.5)}),
			shape: tensor.Shape{2},
			dtype: tensor.Float,
			want:  []any{1.0, 2.5},
		},
		{
			name: "list of lists",
			in: cty.ListVal([]cty.Value{
				cty.ListVal([]cty.Value{cty.NumberIntVal(1), cty.NumberIntVal(2)}),
				cty.ListVal([]cty.Value{cty.NumberIntVal(3), cty.NumberIntVal(4)}),
			}),
			shape: tensor.Shape{2, 2},
			dtype: tensor.Int,
			want:  []any{int64(1), int64(2), int64(3), int64(4)},
		},
		{
			name:  "bool",
			in:    cty.False,
			shape: tensor.Shape{},
			dtype: tensor.Bool,
			want:  []any{false},
		},
		{
			name:  "marked number",
			in:    cty.NumberIntVal(3).Mark("sensitive"),
			shape: tensor.Shape{},
			dtype: tensor.Int,
			want:  []any{int64(3)},
		},
		{
			name:  "empty list",
			in:    cty.ListValEmpty(cty.Number),
			shape: tensor.Shape{0},
			dtype: tensor.Float,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := Wrap(tt.in)
			require.NoError(t, err)
			assert.Equal(t, Dense, w.Kind())
			assert.Equal(t, tt.shape, w.Shape())
			assert.Equal(t, tt.dtype, w.DType())
			assert.Equal(t, tt.want, collect(w))
		})
	}
}

func TestCoerceCtyRejects(t *testing.T) {
	for _, in := range []cty.Value{
		cty.StringVal("x"),
		cty.NullVal(cty.Number),
		cty.UnknownVal(cty.Number),
		cty.ListVal([]cty.Value{cty.StringVal("a")}),
		cty.TupleVal([]cty.Value{
			cty.ListVal([]cty.Value{cty.NumberIntVal(1)}),
			cty.ListVal([]cty.Value{cty.NumberIntVal(1), cty.NumberIntVal(2)}),
		}),
	} {
		_, err := Wrap(in)
		assert.ErrorIs(t, err, ErrInvalidArray, in.GoString())
	}
}

func TestCoerceGoSequenceOfCty(t *testing.T) {
	w, err := Wrap([]any{cty.NumberIntVal(1), 2.5})
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2}, w.Shape())
	assert.Equal(t, tensor.Float, w.DType())
}

func TestCoerceStacksDenseArrays(t *testing.T) {
	a, err := tensor.FromSlice([]int64{1, 2}, tensor.Shape{2})
	require.NoError(t, err)
	b, err := tensor.FromSlice([]int64{3, 4}, tensor.Shape{2})
	require.NoError(t, err)

	w, err := Wrap([]*tensor.RawTensor{a, b})
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 2}, w.Shape())
	assert.Equal(t, tensor.Int, w.DType())
	if diff := cmp.Diff([][]int64{{1, 2}, {3, 4}}, w.ToList(false)); diff != "" {
		t.Errorf("ToList mismatch (-want +got):\n%s", diff)
	}
}

func TestCoerceEmpty(t *testing.T) {
	tests := []struct {
		name  string
		in    any
		dtype tensor.DataType
	}{
		{"typed floats", [][]float64{}, tensor.Float},
		{"typed bools", [][]bool{}, tensor.Bool},
		{"untyped", [][]any{}, tensor.Float},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := Wrap(tt.in)
			require.NoError(t, err)
			assert.Equal(t, Dense, w.Kind())
			assert.Equal(t, tensor.Shape{0}, w.Shape())
			assert.Equal(t, tt.dtype, w.DType())
		})
	}
}

func TestCoerceEmptyArrayKeepsStaticDims(t *testing.T) {
	tests := []struct {
		name  string
		in    any
		shape tensor.Shape
	}{
		{"array of arrays", [0][3]float64{}, tensor.Shape{0, 3}},
		{"slice of arrays", [][2][4]int{}, tensor.Shape{0, 2, 4}},
		{"array of slices", [0][]float64{}, tensor.Shape{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := Wrap(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.shape, w.Shape())
			assert.Equal(t, 0, w.Size())
		})
	}
}

func TestCoerceEmptyTupleRoundTrip(t *testing.T) {
	arr, err := tensor.NewRaw(tensor.Shape{0, 3}, tensor.Float)
	require.NoError(t, err)

	tup := MustWrap(arr).ToTuple(false)
	require.IsType(t, [0][3]float64{}, tup)

	back := MustWrap(tup)
	assert.Equal(t, tensor.Shape{0, 3}, back.Shape())
	assert.Equal(t, tensor.Float, back.DType())
}

func TestCoerceRejects(t *testing.T) {
	deep := any(1)
	for range maxCoerceDepth + 5 {
		deep = []any{deep}
	}

	tests := []struct {
		name string
		in   any
	}{
		{"nil", nil},
		{"string", "abc"},
		{"map", map[string]int{"a": 1}},
		{"struct", struct{ X int }{1}},
		{"complex", complex(1, 2)},
		{"empty strings", []string{}},
		{"string element", []any{1, "a"}},
		{"nil element", []any{1, nil}},
		{"irregular", []any{[]int{1, 2}, [][]int{{1}}}},
		{"irregular gonum", []any{mat.NewVecDense(2, nil), []float64{1, 2, 3}}},
		{"nil dense array", (*tensor.RawTensor)(nil)},
		{"too deep", deep},
		{"unsigned beyond int64", [][][]uint64{{{1, math.MaxUint64}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := Wrap(tt.in)
			assert.Nil(t, w)
			assert.ErrorIs(t, err, ErrInvalidArray)
		})
	}
}

func TestCoerceDenseReportsReason(t *testing.T) {
	_, _, err := coerceDense([]any{[]int{1, 2}, []int{1}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "irregular shapes")

	_, _, err = coerceDense([]any{[]uint64{1}, []uint64{math.MaxUint64}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overflows int64")
}
