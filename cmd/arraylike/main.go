// Package main provides the arraylike CLI.
//
// Usage:
//
//	arraylike version
//	arraylike inspect [flags] [file]
//
// inspect reads a JSON array (from file, or stdin when file is omitted or
// "-"), normalizes it, runs the requested checks and prints its kind, shape
// and element type. Decoded JSON is coerced into a dense array; with
// -sequence, arrays are kept as Go slices so one- and two-level inputs are
// reported as flat or nested sequences.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"

	"github.com/born-ml/arraylike/arraylike"
	"github.com/born-ml/arraylike/tensor"
	"github.com/born-ml/arraylike/validate"
)

const version = "v0.1.0-dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stdout)
		return 0
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "arraylike %s\n", version)
		return 0
	case "inspect":
		if err := inspect(args[1:], stdin, stdout, stderr); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		usage(stderr)
		return 2
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "arraylike - inspect and validate array-like JSON values")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version")
	fmt.Fprintln(w, "  inspect    Print kind, shape and dtype of a JSON array")
}

func inspect(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	fs.SetOutput(stderr)
	name := fs.String("name", "Array", "Argument name used in error messages")
	shape := fs.String("shape", "", "Required shape, comma separated; -1 matches any length (e.g. -1,3)")
	finite := fs.Bool("finite", false, "Reject NaN and Inf")
	nonneg := fs.Bool("nonnegative", false, "Reject negative values")
	sorted := fs.Bool("sorted", false, "Require ascending order along the last axis")
	rng := fs.String("range", "", "Inclusive bounds lo,hi")
	sequence := fs.Bool("sequence", false, "Keep JSON arrays as Go slices instead of a dense array")
	verbose := fs.Bool("v", false, "Log coercion diagnostics to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *verbose {
		arraylike.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer arraylike.SetLogger(nil)
	}

	data, err := readInput(fs.Arg(0), stdin)
	if err != nil {
		return err
	}
	ty, err := ctyjson.ImpliedType(data)
	if err != nil {
		return fmt.Errorf("parse JSON: %w", err)
	}
	val, err := ctyjson.Unmarshal(data, ty)
	if err != nil {
		return fmt.Errorf("parse JSON: %w", err)
	}
	var input any = val
	if *sequence {
		if input, err = goValue(val); err != nil {
			return err
		}
	}

	cfg := validate.DefaultArrayConfig()
	cfg.Name = *name
	cfg.MustBeFinite = *finite
	cfg.MustBeNonnegative = *nonneg
	cfg.MustBeSorted = *sorted
	cfg.ReturnType = validate.ReturnWrapper
	if *shape != "" {
		dims, err := parseCSVIntSlice(*shape)
		if err != nil {
			return fmt.Errorf("-shape: %w", err)
		}
		cfg.MustHaveShape = []tensor.Shape{dims}
	}
	if *rng != "" {
		bounds, err := parseCSVFloatSlice(*rng)
		if err != nil {
			return fmt.Errorf("-range: %w", err)
		}
		if len(bounds) != 2 {
			return fmt.Errorf("-range: expected lo,hi, got %d values", len(bounds))
		}
		cfg.MustBeInRange = &[2]float64{bounds[0], bounds[1]}
	}

	out, err := validate.ValidateArray(input, cfg)
	if err != nil {
		return err
	}
	w := out.(arraylike.Wrapper)
	fmt.Fprintf(stdout, "kind:  %s\n", w.Kind())
	fmt.Fprintf(stdout, "shape: %s\n", w.Shape())
	fmt.Fprintf(stdout, "dtype: %s\n", w.DType())
	fmt.Fprintf(stdout, "size:  %d\n", w.Size())
	return nil
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

// goValue converts a decoded JSON value to plain Go values: arrays become
// []any, integral numbers int, other numbers float64.
func goValue(val cty.Value) (any, error) {
	ty := val.Type()
	switch {
	case val.IsNull():
		return nil, nil
	case ty == cty.Number:
		bf := val.AsBigFloat()
		if i, acc := bf.Int64(); acc == big.Exact {
			return int(i), nil
		}
		f, _ := bf.Float64()
		return f, nil
	case ty == cty.Bool:
		return val.True(), nil
	case ty == cty.String:
		return val.AsString(), nil
	case ty.IsListType() || ty.IsTupleType():
		out := make([]any, 0, val.LengthInt())
		for it := val.ElementIterator(); it.Next(); {
			_, e := it.Element()
			g, err := goValue(e)
			if err != nil {
				return nil, err
			}
			out = append(out, g)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported JSON value of type %s", ty.FriendlyName())
	}
}

// parseCSVIntSlice parses a comma-separated list of ints.
func parseCSVIntSlice(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid int '%s': %w", p, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// parseCSVFloatSlice parses a comma-separated list of floats.
func parseCSVFloatSlice(s string) ([]float64, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid float '%s': %w", p, err)
		}
		out = append(out, v)
	}
	return out, nil
}
