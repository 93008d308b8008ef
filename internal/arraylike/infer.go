package arraylike

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/born-ml/arraylike/internal/tensor"
)

// inferDType returns the minimal element type covering every element:
// Float if any float is present, else Int if any non-bool integer is present,
// else Bool if all are bool. An empty stream is Float.
//
// Scanning stops at the first float. Elements other than bool, integer or
// float are a programming error: the classifier only lets numeric leaves
// reach this point.
func inferDType(elements iter.Seq[any]) tensor.DataType {
	var sawInt, sawBool bool
	for e := range elements {
		dt, ok := tensor.ScalarDataType(e)
		if !ok {
			panic(fmt.Sprintf("arraylike: unexpected element type %s, expected bool, integer or float", reflect.TypeOf(e)))
		}
		switch dt {
		case tensor.Float:
			return tensor.Float
		case tensor.Int:
			sawInt = true
		case tensor.Bool:
			sawBool = true
		}
	}
	switch {
	case sawInt:
		return tensor.Int
	case sawBool:
		return tensor.Bool
	default:
		return tensor.Float
	}
}
