package validate

import "github.com/born-ml/arraylike/internal/tensor"

// ReturnType selects the representation ValidateArray returns.
type ReturnType int

// Supported return representations.
const (
	ReturnList    ReturnType = iota // Go slice form (arraylike.Wrapper.ToList)
	ReturnTuple                     // Go array form (arraylike.Wrapper.ToTuple)
	ReturnDense                     // *tensor.RawTensor
	ReturnWrapper                   // the arraylike.Wrapper itself
)

// String returns a human-readable name for the return type.
func (rt ReturnType) String() string {
	switch rt {
	case ReturnList:
		return "list"
	case ReturnTuple:
		return "tuple"
	case ReturnDense:
		return "dense"
	case ReturnWrapper:
		return "wrapper"
	default:
		return "unknown"
	}
}

// ArrayConfig configures ValidateArray. Start from DefaultArrayConfig, which
// disables every check.
type ArrayConfig struct {
	// Name is used as the argument name in error messages.
	Name string

	// Shape checks
	MustHaveShape  []tensor.Shape // Allowed shapes; -1 matches any length. Empty = any.
	MustHaveNDim   []int          // Allowed ndim values. Empty = any.
	MustHaveLength int            // Exact first-axis length. -1 = any.

	// Type checks
	MustHaveDType []tensor.DataType // Allowed element types. Empty = any.
	MustBeReal    bool              // Reject bool elements.
	MustBeInteger bool              // Require whole-number values.
	MustBeFinite  bool              // Reject NaN and ±Inf.

	// Value checks
	MustBeNonnegative bool
	MustBeInRange     *[2]float64 // Inclusive unless a Strict*Bound flag is set. Nil = any.
	StrictLowerBound  bool
	StrictUpperBound  bool
	MustBeSorted      bool
	StrictlySorted    bool
	Descending        bool

	// Output
	DTypeOut     *tensor.DataType // Convert elements before returning. Nil = keep.
	ReturnType   ReturnType
	CopyOnReturn bool // Never hand back or mutate the caller's storage.
}

// DefaultArrayConfig returns a configuration with every check disabled that
// returns the value in list form.
func DefaultArrayConfig() ArrayConfig {
	return ArrayConfig{
		Name:           "Array",
		MustHaveLength: -1,
		ReturnType:     ReturnList,
	}
}
