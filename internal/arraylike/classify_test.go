package arraylike

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/born-ml/arraylike/internal/tensor"
)

type meters float64

func TestClassify(t *testing.T) {
	raw, _ := tensor.NewRaw(tensor.Shape{2}, tensor.Float)

	tests := []struct {
		name string
		in   any
		want Kind
	}{
		{"int", 7, Scalar},
		{"bool", true, Scalar},
		{"float", 2.5, Scalar},
		{"uint8", uint8(3), Scalar},
		{"named float", meters(1.5), Scalar},

		{"empty typed slice", []int{}, FlatSequence},
		{"nil typed slice", []float64(nil), FlatSequence},
		{"empty any slice", []any{}, FlatSequence},
		{"mixed any slice", []any{1, true, 2.5}, FlatSequence},
		{"array", [3]float64{1, 2, 3}, FlatSequence},
		{"bytes", []byte{1, 2}, FlatSequence},
		{"named elements", []meters{1, 2}, FlatSequence},

		{"typed nested", [][]int{{1, 2}, {3, 4}}, NestedSequence},
		{"slice of arrays", [][3]float64{{1, 2, 3}}, NestedSequence},
		{"array of arrays", [2][2]int{{1, 2}, {3, 4}}, NestedSequence},
		{"mixed rows", []any{[]int{1, 2}, []float64{3, 4}}, NestedSequence},
		{"empty rows", [][]int{{}, {}}, NestedSequence},

		{"ragged", [][]int{{1, 2}, {3}}, Dense},
		{"depth 3", [][][]int{{{1}}}, Dense},
		{"empty nested", [][]int{}, Dense},
		{"string", "abc", Dense},
		{"strings", []string{"a", "b"}, Dense},
		{"non-numeric element", []any{1, "a"}, Dense},
		{"nil element", []any{nil}, Dense},
		{"nil", nil, Dense},
		{"complex", complex(1, 2), Dense},
		{"map", map[string]int{"a": 1}, Dense},
		{"dense array", raw, Dense},
		{"row mixing scalar and sequence", []any{[]int{1}, 2}, Dense},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.in))
		})
	}
}

func TestClassifyNestedRequiresEveryRowChecked(t *testing.T) {
	// The first row fixes the expected length; a later short row must
	// still disqualify the input.
	in := [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8}}
	assert.Equal(t, Dense, classify(in))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Scalar", Scalar.String())
	assert.Equal(t, "FlatSequence", FlatSequence.String())
	assert.Equal(t, "NestedSequence", NestedSequence.String())
	assert.Equal(t, "Dense", Dense.String())
	assert.Equal(t, "Unknown", Kind(42).String())
}
