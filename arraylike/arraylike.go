// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package arraylike

import (
	"log/slog"

	"github.com/born-ml/arraylike/internal/arraylike"
)

// Wrapper is the uniform view over an array-like value.
//
// ToList, ToTuple and ToDense return the backing value itself when it is
// already in the requested form and copy is false, a deep copy when copy is
// true, and a freshly built value otherwise.
type Wrapper = arraylike.Wrapper

// Kind identifies which wrapper variant represents an input.
type Kind = arraylike.Kind

// Input kinds.
const (
	Scalar         Kind = arraylike.Scalar
	FlatSequence   Kind = arraylike.FlatSequence
	NestedSequence Kind = arraylike.NestedSequence
	Dense          Kind = arraylike.Dense
)

// InvalidArrayError reports an input that is not array-like.
// It matches ErrInvalidArray via errors.Is.
type InvalidArrayError = arraylike.InvalidArrayError

// ErrInvalidArray is matched by every InvalidArrayError.
var ErrInvalidArray = arraylike.ErrInvalidArray

// PreviewLimit bounds the input preview carried by InvalidArrayError.
const PreviewLimit = arraylike.PreviewLimit

// Wrap returns the Wrapper for raw, or raw itself if it is already a Wrapper.
//
// Example:
//
//	w, err := arraylike.Wrap([][]bool{{true, false}, {false, true}})
//	w.Shape() // (2, 2)
//	w.DType() // bool
func Wrap(raw any) (Wrapper, error) {
	return arraylike.Wrap(raw)
}

// MustWrap is like Wrap but panics if raw is not array-like.
func MustWrap(raw any) Wrapper {
	return arraylike.MustWrap(raw)
}

// SetLogger sets the logger used for coercion diagnostics (Debug level).
// A nil logger restores slog.Default().
func SetLogger(l *slog.Logger) {
	arraylike.SetLogger(l)
}
