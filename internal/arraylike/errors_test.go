package arraylike

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestPreview(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "<nil>"},
		{"string", "abc", `"abc"`},
		{"strings", []string{"a", "b"}, `["a" "b"]`},
		{"numbers", []any{1, 2.5, true}, "[1 2.5 true]"},
		{"nil slice", []int(nil), "[]"},
		{"nil element", []any{nil, 1}, "[<nil> 1]"},
		{"elided items", []int{1, 2, 3, 4, 5, 6, 7, 8}, "[1 2 3 4 5 6 ...]"},
		{"elided depth", []any{[]any{[]any{[]any{[]any{1}}}}}, "[[[[[...]]]]]"},
		{"map", map[string]int{"a": 1}, `map["a":1]`},
		{"map entries sorted", map[int]bool{2: false, 1: true}, "map[1:true 2:false]"},
		{"struct", struct{ X, y int }{1, 2}, "{1 2}"},
		{"elided fields", struct{ A, B, C, D, E, F, G int }{}, "{0 0 0 0 0 0 ...}"},
		{"nested struct depth", []any{[]any{[]any{[]any{struct{ X int }{1}}}}}, "[[[[{...}]]]]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, preview(tt.in))
		})
	}
}

func TestPreviewIsBounded(t *testing.T) {
	long := []string{strings.Repeat("x", 100)}
	got := preview(long)

	assert.Equal(t, PreviewLimit, utf8.RuneCountInString(got))
	assert.True(t, strings.HasPrefix(got, `["xxx`))
	assert.True(t, strings.HasSuffix(got, `xxx"]`))
	assert.Contains(t, got, "...")

	wide := []string{strings.Repeat("é", 200)}
	assert.Equal(t, PreviewLimit, utf8.RuneCountInString(preview(wide)))
}

func TestPreviewLargeMapRendersFewEntries(t *testing.T) {
	m := make(map[int]int, 10000)
	for i := range 10000 {
		m[i] = 0
	}
	got := preview(m)

	assert.True(t, strings.HasPrefix(got, "map["))
	assert.True(t, strings.HasSuffix(got, " ...]"))
	assert.Equal(t, maxPreviewItems+1, len(strings.Fields(strings.TrimSuffix(strings.TrimPrefix(got, "map["), "]"))))
}

func TestInvalidArrayErrorIs(t *testing.T) {
	err := error(&InvalidArrayError{Preview: "x"})
	assert.True(t, errors.Is(err, ErrInvalidArray))
	assert.False(t, errors.Is(err, errors.New("other")))
	assert.Equal(t, "arraylike: the following array is not valid:\n\tx", err.Error())
}
