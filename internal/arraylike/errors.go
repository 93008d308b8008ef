package arraylike

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

// PreviewLimit bounds the length, in runes, of the input preview carried by
// InvalidArrayError.
const PreviewLimit = 70

// maxPreviewItems is the number of sequence items rendered per level before
// the rest is elided.
const maxPreviewItems = 6

// maxPreviewDepth is the nesting depth rendered before elision.
const maxPreviewDepth = 4

// ErrInvalidArray is matched by every InvalidArrayError via errors.Is.
var ErrInvalidArray = errors.New("arraylike: invalid array")

// InvalidArrayError reports an input that cannot be interpreted as a scalar,
// a flat or nested numeric sequence, or a dense numeric array.
type InvalidArrayError struct {
	// Preview is a length-bounded rendering of the offending input.
	Preview string
}

func newInvalidArrayError(raw any) *InvalidArrayError {
	return &InvalidArrayError{Preview: preview(raw)}
}

// Error implements error.
func (e *InvalidArrayError) Error() string {
	return "arraylike: the following array is not valid:\n\t" + e.Preview
}

// Is reports whether target is ErrInvalidArray.
func (e *InvalidArrayError) Is(target error) bool {
	return target == ErrInvalidArray
}

// preview renders v in at most PreviewLimit runes, keeping the head and the
// tail of long renderings.
func preview(v any) string {
	var sb strings.Builder
	writePreview(&sb, reflect.ValueOf(v), 0)
	s := sb.String()
	if utf8.RuneCountInString(s) <= PreviewLimit {
		return s
	}
	r := []rune(s)
	head := (PreviewLimit - 3) / 2
	tail := PreviewLimit - 3 - head
	return string(r[:head]) + "..." + string(r[len(r)-tail:])
}

func writePreview(sb *strings.Builder, v reflect.Value, depth int) {
	if !v.IsValid() {
		sb.WriteString("<nil>")
		return
	}
	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			sb.WriteString("<nil>")
			return
		}
		writePreview(sb, v.Elem(), depth)
	case reflect.String:
		sb.WriteString(strconv.Quote(v.String()))
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.IsNil() {
			sb.WriteString("[]")
			return
		}
		if depth >= maxPreviewDepth {
			sb.WriteString("[...]")
			return
		}
		sb.WriteByte('[')
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				sb.WriteByte(' ')
			}
			if i == maxPreviewItems {
				sb.WriteString("...")
				break
			}
			writePreview(sb, v.Index(i), depth+1)
		}
		sb.WriteByte(']')
	case reflect.Map:
		if depth >= maxPreviewDepth {
			sb.WriteString("map[...]")
			return
		}
		// Only the first maxPreviewItems entries are rendered, sorted so
		// small maps preview deterministically.
		entries := make([]string, 0, min(v.Len(), maxPreviewItems))
		for it := v.MapRange(); it.Next() && len(entries) < maxPreviewItems; {
			var entry strings.Builder
			writePreview(&entry, it.Key(), depth+1)
			entry.WriteByte(':')
			writePreview(&entry, it.Value(), depth+1)
			entries = append(entries, entry.String())
		}
		slices.Sort(entries)
		if v.Len() > maxPreviewItems {
			entries = append(entries, "...")
		}
		sb.WriteString("map[" + strings.Join(entries, " ") + "]")
	case reflect.Struct:
		if depth >= maxPreviewDepth {
			sb.WriteString("{...}")
			return
		}
		sb.WriteByte('{')
		for i := 0; i < v.NumField(); i++ {
			if i > 0 {
				sb.WriteByte(' ')
			}
			if i == maxPreviewItems {
				sb.WriteString("...")
				break
			}
			writePreview(sb, v.Field(i), depth+1)
		}
		sb.WriteByte('}')
	default:
		// fmt reads the held value directly, unexported fields included.
		fmt.Fprint(sb, v)
	}
}
