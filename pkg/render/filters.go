package render

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/arthur-debert/foldergen/pkg/errors"
	"github.com/arthur-debert/foldergen/pkg/generator"
)

// FilterFunc transforms a placeholder value. Args are the parsed filter
// arguments: int for unsigned integer literals, string otherwise.
type FilterFunc func(value interface{}, args ...interface{}) (interface{}, error)

// Filters is a named filter registry. It is a plain value: renderers get
// their own copy and nothing is registered globally.
type Filters map[string]FilterFunc

// DefaultFilters returns a fresh registry holding the built-in filters
func DefaultFilters() Filters {
	return Filters{
		"pad":  padFilter,
		"slug": slugFilter,
	}
}

// Register adds or replaces a filter
func (f Filters) Register(name string, fn FilterFunc) {
	f[name] = fn
}

// Clone returns an independent copy of the registry
func (f Filters) Clone() Filters {
	out := make(Filters, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Names returns the registered filter names, sorted
func (f Filters) Names() []string {
	names := make([]string, 0, len(f))
	for k := range f {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// padFilter zero-pads the integer value of v to width args[0] (default 2)
func padFilter(v interface{}, args ...interface{}) (interface{}, error) {
	width := 2
	if len(args) > 0 {
		w, err := ToInt(args[0])
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFilterFailed, "pad: invalid width %v", args[0])
		}
		width = w
	}
	n, err := ToInt(v)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFilterFailed, "pad: value %q is not an integer", ToString(v))
	}
	return generator.ZeroFill(strconv.Itoa(n), width), nil
}

// slugFilter trims, lowercases and replaces spaces with underscores
func slugFilter(v interface{}, _ ...interface{}) (interface{}, error) {
	s := strings.ToLower(strings.TrimSpace(ToString(v)))
	return strings.ReplaceAll(s, " ", "_"), nil
}

// ToString formats a context value for substitution. Whole floats print
// without a fraction, as JSON numbers decode to float64.
func ToString(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// ToInt coerces a context value to an int, truncating floats
func ToInt(v interface{}) (int, error) {
	switch x := v.(type) {
	case int:
		return x, nil
	case int8:
		return int(x), nil
	case int16:
		return int(x), nil
	case int32:
		return int(x), nil
	case int64:
		return int(x), nil
	case uint:
		return int(x), nil
	case uint8:
		return int(x), nil
	case uint16:
		return int(x), nil
	case uint32:
		return int(x), nil
	case uint64:
		return int(x), nil
	case float32:
		return truncate(float64(x))
	case float64:
		return truncate(x)
	case bool:
		if x {
			return 1, nil
		}
		return 0, nil
	case string:
		return strconv.Atoi(strings.TrimSpace(x))
	default:
		return 0, fmt.Errorf("cannot convert %T to int", v)
	}
}

func truncate(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("cannot convert %v to int", f)
	}
	return int(f), nil
}
