package arraylike

import (
	"reflect"

	"github.com/born-ml/arraylike/internal/tensor"
)

var anyType = reflect.TypeFor[any]()

// deepCopy returns a structurally independent copy of nested slices and arrays.
// Scalars are copied by value.
func deepCopy(v reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Slice:
		if v.IsNil() {
			return v
		}
		out := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			setElem(out.Index(i), deepCopy(v.Index(i)))
		}
		return out
	case reflect.Array:
		out := reflect.New(v.Type()).Elem()
		for i := 0; i < v.Len(); i++ {
			setElem(out.Index(i), deepCopy(v.Index(i)))
		}
		return out
	case reflect.Interface:
		if v.IsNil() {
			return v
		}
		return deepCopy(v.Elem())
	default:
		return v
	}
}

// setElem assigns src to dst, leaving dst zero when src is an invalid or nil
// interface value.
func setElem(dst, src reflect.Value) {
	if !src.IsValid() || (src.Kind() == reflect.Interface && src.IsNil()) {
		return
	}
	dst.Set(src)
}

// elemTypeOf returns the Go type of the elements of a flat sequence, as seen
// after unwrapping interfaces. Mixed element types yield any.
func elemTypeOf(v reflect.Value) reflect.Type {
	t := v.Type().Elem()
	if t.Kind() != reflect.Interface {
		return t
	}
	var common reflect.Type
	for i := 0; i < v.Len(); i++ {
		et := unwrap(v.Index(i)).Type()
		if common == nil {
			common = et
		} else if common != et {
			return anyType
		}
	}
	if common == nil {
		return t
	}
	return common
}

// nestedElemType returns the common element type of every row of a nested
// sequence, or any if the rows disagree.
func nestedElemType(v reflect.Value) reflect.Type {
	var common reflect.Type
	for i := 0; i < v.Len(); i++ {
		et := elemTypeOf(unwrap(v.Index(i)))
		if common == nil {
			common = et
		} else if common != et {
			return anyType
		}
	}
	if common == nil {
		return anyType
	}
	return common
}

// fillFlat copies the scalars of the flat sequence src into the container dst,
// which must have the same length.
func fillFlat(dst, src reflect.Value) {
	et := dst.Type().Elem()
	for i := 0; i < src.Len(); i++ {
		e := unwrap(src.Index(i))
		if e.Type() != et && et.Kind() != reflect.Interface {
			e = e.Convert(et)
		}
		dst.Index(i).Set(e)
	}
}

// flatTo builds a new slice ([]T) or array ([n]T) of et from a flat sequence.
func flatTo(src reflect.Value, et reflect.Type, asArray bool) reflect.Value {
	var out reflect.Value
	if asArray {
		out = reflect.New(reflect.ArrayOf(src.Len(), et)).Elem()
	} else {
		out = reflect.MakeSlice(reflect.SliceOf(et), src.Len(), src.Len())
	}
	fillFlat(out, src)
	return out
}

// canonicalFlat builds a new flat container of the canonical Go type for dt.
func canonicalFlat(src reflect.Value, dt tensor.DataType, asArray bool) reflect.Value {
	et := tensor.CanonicalType(dt)
	var out reflect.Value
	if asArray {
		out = reflect.New(reflect.ArrayOf(src.Len(), et)).Elem()
	} else {
		out = reflect.MakeSlice(reflect.SliceOf(et), src.Len(), src.Len())
	}
	for i := 0; i < src.Len(); i++ {
		out.Index(i).Set(reflect.ValueOf(tensor.Canonical(unwrap(src.Index(i)).Interface(), dt)))
	}
	return out
}

// acceptsInPlace reports whether the elements of the slice v can be
// overwritten with canonical values of dt.
func acceptsInPlace(v reflect.Value, dt tensor.DataType) bool {
	if v.Kind() != reflect.Slice {
		return false
	}
	et := v.Type().Elem()
	return et.Kind() == reflect.Interface && tensor.CanonicalType(dt).AssignableTo(et)
}

// rewriteInPlace overwrites every element of the slice v with its canonical
// value for dt.
func rewriteInPlace(v reflect.Value, dt tensor.DataType) {
	for i := 0; i < v.Len(); i++ {
		e := unwrap(v.Index(i)).Interface()
		v.Index(i).Set(reflect.ValueOf(tensor.Canonical(e, dt)))
	}
}

// denseNested builds nested Go slices (or arrays) of the array's storage type
// from a dense array in row-major order. A 0-d array yields its single element.
func denseNested(arr *tensor.RawTensor, asArray bool) any {
	shape := arr.Shape()
	if len(shape) == 0 {
		return arr.AtFlat(0)
	}
	types := make([]reflect.Type, len(shape)+1)
	types[len(shape)] = tensor.StorageType(arr.DType())
	for d := len(shape) - 1; d >= 0; d-- {
		if asArray {
			types[d] = reflect.ArrayOf(shape[d], types[d+1])
		} else {
			types[d] = reflect.SliceOf(types[d+1])
		}
	}

	flat := 0
	var build func(d int) reflect.Value
	build = func(d int) reflect.Value {
		var out reflect.Value
		if asArray {
			out = reflect.New(types[d]).Elem()
		} else {
			out = reflect.MakeSlice(types[d], shape[d], shape[d])
		}
		for i := 0; i < shape[d]; i++ {
			if d == len(shape)-1 {
				out.Index(i).Set(reflect.ValueOf(arr.AtFlat(flat)))
				flat++
			} else {
				out.Index(i).Set(build(d + 1))
			}
		}
		return out
	}
	return build(0).Interface()
}
