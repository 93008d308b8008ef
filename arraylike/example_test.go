// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package arraylike_test

import (
	"errors"
	"fmt"

	"github.com/born-ml/arraylike/arraylike"
	"github.com/born-ml/arraylike/tensor"
)

func ExampleWrap() {
	w, err := arraylike.Wrap([][]int{{1, 2, 3}, {4, 5, 6}})
	if err != nil {
		panic(err)
	}
	fmt.Println(w.Kind(), w.Shape(), w.DType(), w.Size())
	// Output: NestedSequence (2, 3) int 6
}

func ExampleWrap_invalid() {
	_, err := arraylike.Wrap([]string{"a", "b"})
	fmt.Println(errors.Is(err, arraylike.ErrInvalidArray))

	var invalid *arraylike.InvalidArrayError
	if errors.As(err, &invalid) {
		fmt.Println(invalid.Preview)
	}
	// Output:
	// true
	// ["a" "b"]
}

func ExampleWrapper_ChangeElementType() {
	values := []any{1, 2.5, true}
	w := arraylike.MustWrap(values)
	fmt.Println(w.DType())

	if err := w.ChangeElementType(tensor.Int); err != nil {
		panic(err)
	}
	fmt.Println(values)
	// Output:
	// float
	// [1 2 1]
}

func ExampleWrapper_ToTuple() {
	w := arraylike.MustWrap([]float64{0.5, 1.5})
	fmt.Printf("%#v\n", w.ToTuple(false))
	// Output: [2]float64{0.5, 1.5}
}
