package render

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/foldergen/pkg/errors"
	"github.com/arthur-debert/foldergen/pkg/types"
)

// Renderer substitutes {key|filter(args)} placeholders from a context
type Renderer struct {
	filters Filters
}

// NewRenderer creates a renderer over a copy of filters. A nil registry
// means DefaultFilters.
func NewRenderer(filters Filters) *Renderer {
	if filters == nil {
		filters = DefaultFilters()
	}
	return &Renderer{filters: filters.Clone()}
}

// Filters returns a copy of the renderer's registry
func (r *Renderer) Filters() Filters {
	return r.filters.Clone()
}

// Render replaces every placeholder in tpl. The first failure aborts and is
// returned: VARIABLE_MISSING for an absent key, FILTER_UNKNOWN for an
// unregistered filter and FILTER_FAILED when a filter rejects its input.
func (r *Renderer) Render(tpl string, ctx types.Context) (string, error) {
	found := FindPlaceholders(tpl)
	if len(found) == 0 {
		return tpl, nil
	}

	var b strings.Builder
	last := 0
	for _, ph := range found {
		b.WriteString(tpl[last:ph.Start])
		val, err := r.evaluate(ph.Body, ctx)
		if err != nil {
			return "", err
		}
		b.WriteString(val)
		last = ph.End
	}
	b.WriteString(tpl[last:])
	return b.String(), nil
}

func (r *Renderer) evaluate(body string, ctx types.Context) (string, error) {
	parts := strings.Split(strings.TrimSpace(body), "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	key := parts[0]
	val, ok := ctx[key]
	if !ok {
		return "", errors.Newf(errors.ErrVariableMissing, "missing variable: %s", key).
			WithDetail("key", key)
	}

	for _, call := range parts[1:] {
		name, args := parseFilterCall(call)
		fn, ok := r.filters[name]
		if !ok {
			return "", errors.Newf(errors.ErrFilterUnknown, "unknown filter: %s", name).
				WithDetail("filter", name)
		}
		out, err := fn(val, args...)
		if err != nil {
			if errors.GetErrorCode(err) == errors.ErrUnknown {
				err = errors.Wrapf(err, errors.ErrFilterFailed, "filter %s failed", name)
			}
			return "", err
		}
		val = out
	}
	return ToString(val), nil
}

// parseFilterCall splits "name(a, 'b', 3)" into its name and arguments
func parseFilterCall(call string) (string, []interface{}) {
	open := strings.Index(call, "(")
	if open < 0 || !strings.HasSuffix(call, ")") {
		return call, nil
	}
	name := strings.TrimSpace(call[:open])
	raw := strings.TrimSpace(call[open+1 : len(call)-1])
	if raw == "" {
		return name, nil
	}

	var args []interface{}
	for _, a := range strings.Split(raw, ",") {
		a = strings.TrimSpace(a)
		if isDigits(a) {
			if n, err := strconv.Atoi(a); err == nil {
				args = append(args, n)
				continue
			}
		}
		args = append(args, strings.Trim(a, `'"`))
	}
	return name, args
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
