package arraylike

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/arraylike/internal/tensor"
)

func TestChangeElementTypeScalar(t *testing.T) {
	w := MustWrap(7)
	require.NoError(t, w.ChangeElementType(tensor.Float))

	assert.Equal(t, tensor.Float, w.DType())
	assert.Equal(t, 7.0, w.Value())

	require.NoError(t, w.ChangeElementType(tensor.Bool))
	assert.Equal(t, true, w.Value())
}

func TestChangeElementTypeRewritesAnySliceInPlace(t *testing.T) {
	s := []any{1, 2, true}
	w := MustWrap(s)
	require.Equal(t, tensor.Int, w.DType())

	require.NoError(t, w.ChangeElementType(tensor.Float))
	assert.Equal(t, tensor.Float, w.DType())
	assert.Equal(t, []any{1.0, 2.0, 1.0}, s)
	assert.Equal(t, s, w.Value())
}

func TestChangeElementTypeRebindsTypedSlice(t *testing.T) {
	s := []int{1, 2}
	w := MustWrap(s)

	require.NoError(t, w.ChangeElementType(tensor.Float))
	assert.Equal(t, []float64{1, 2}, w.Value())
	assert.Equal(t, []int{1, 2}, s)
	assert.Equal(t, tensor.Float, w.DType())
}

func TestChangeElementTypeKeepsArrayForm(t *testing.T) {
	w := MustWrap([3]int{0, 1, 2})
	require.NoError(t, w.ChangeElementType(tensor.Bool))
	assert.Equal(t, [3]bool{false, true, true}, w.Value())
}

func TestChangeElementTypeSameTypeIsNoOp(t *testing.T) {
	s := []float64{1, 2}
	w := MustWrap(s)
	require.NoError(t, w.ChangeElementType(tensor.Float))

	out := w.Value().([]float64)
	assert.Same(t, &s[0], &out[0])
}

func TestChangeElementTypeNested(t *testing.T) {
	tests := []struct {
		name string
		in   any
		dt   tensor.DataType
		want any
	}{
		{"slices", [][]int{{1, 2}, {3, 4}}, tensor.Float, [][]float64{{1, 2}, {3, 4}}},
		{"slice of arrays", [][2]int{{1, 0}}, tensor.Bool, [][2]bool{{true, false}}},
		{"array of arrays", [2][2]float64{{1.5, 2}, {3, 4.9}}, tensor.Int, [2][2]int{{1, 2}, {3, 4}}},
		{"mixed rows", []any{[]bool{true}, []int{2}}, tensor.Float, [][]float64{{1}, {2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := MustWrap(tt.in)
			require.NoError(t, w.ChangeElementType(tt.dt))
			assert.Equal(t, tt.dt, w.DType())
			if diff := cmp.Diff(tt.want, w.Value()); diff != "" {
				t.Errorf("Value mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestChangeElementTypeNestedInPlace(t *testing.T) {
	m := [][]any{{1, 2}, {3, true}}
	w := MustWrap(m)

	require.NoError(t, w.ChangeElementType(tensor.Float))
	assert.Equal(t, 1.0, m[1][1])
	assert.Equal(t, 3.0, m[1][0])
}

func TestChangeElementTypeDenseLeavesCallerArray(t *testing.T) {
	raw, err := tensor.FromSlice([]int64{0, 1, 2}, tensor.Shape{3})
	require.NoError(t, err)
	w := MustWrap(raw)

	require.NoError(t, w.ChangeElementType(tensor.Float))
	assert.Equal(t, tensor.Float, w.DType())
	assert.Equal(t, tensor.Int, raw.DType())
	assert.NotSame(t, raw, w.ToDense(false))
	assert.Equal(t, []float64{0, 1, 2}, w.ToDense(false).AsFloat64())

	// The cast buffer belongs to the wrapper, so copying is unnecessary.
	assert.Same(t, w.ToDense(false), w.ToDense(true))
}

func TestChangeElementTypeRejectsUnknownType(t *testing.T) {
	raw, err := tensor.FromSlice([]float64{1}, tensor.Shape{1})
	require.NoError(t, err)

	for _, in := range []any{1, []int{1}, [][]int{{1}}, raw} {
		w := MustWrap(in)
		assert.Error(t, w.ChangeElementType(tensor.DataType(9)), "%T", in)
	}
}

func TestChangeElementTypeIsIdempotent(t *testing.T) {
	for _, in := range []any{[]any{1, 2.5}, [][]int{{1}, {2}}, 3} {
		w := MustWrap(in)
		require.NoError(t, w.ChangeElementType(tensor.Int))
		first := w.ToList(true)
		require.NoError(t, w.ChangeElementType(tensor.Int))
		assert.Equal(t, first, w.ToList(true), "%T", in)
	}
}
