package generator

import (
	"strconv"
	"strings"
)

// token is a parsed generator body: "type:key=value;key=value"
type token struct {
	kind   string
	params map[string]string
	raw    string
}

func parseToken(expr string) (*token, error) {
	expr = strings.TrimSpace(expr)
	typ, rest, ok := strings.Cut(expr, ":")
	if !ok {
		return nil, syntaxError(expr, "bad generator (missing type prefix like int/alpha/date/enum)")
	}

	params := make(map[string]string)
	for _, part := range strings.Split(rest, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		k, v, ok := strings.Cut(part, "=")
		if !ok {
			return nil, syntaxError(expr, "bad generator parameter %q (missing '=')", part)
		}
		k = strings.ToLower(strings.TrimSpace(k))
		v = strings.Trim(strings.TrimSpace(v), `'"`)
		params[k] = v
	}

	return &token{
		kind:   strings.ToLower(strings.TrimSpace(typ)),
		params: params,
		raw:    expr,
	}, nil
}

func (t *token) get(key string) (string, bool) {
	v, ok := t.params[key]
	return v, ok
}

// requiredInt parses a mandatory integer parameter
func (t *token) requiredInt(key string) (int, error) {
	v, ok := t.params[key]
	if !ok || v == "" {
		return 0, syntaxError(t.raw, "%s requires numeric %s", t.kind, key)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, syntaxError(t.raw, "%s requires numeric %s, got %q", t.kind, key, v)
	}
	return n, nil
}

// optionalInt parses an integer parameter, returning def when absent
func (t *token) optionalInt(key string, def int) (int, bool, error) {
	v, ok := t.params[key]
	if !ok {
		return def, false, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false, syntaxError(t.raw, "%s %s must be an integer, got %q", t.kind, key, v)
	}
	return n, true, nil
}
