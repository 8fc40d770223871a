package render

import (
	"regexp"
	"strings"
)

var placeholderPattern = regexp.MustCompile(`\{([^{}]+)\}`)

// Placeholder is one {key|filter(args)} span of a string
type Placeholder struct {
	Start, End int
	Body       string
}

// Key is the variable name before the first filter
func (p Placeholder) Key() string {
	key, _, _ := strings.Cut(p.Body, "|")
	return strings.TrimSpace(key)
}

// FindPlaceholders returns the placeholders of s in order. Spans directly
// adjacent to another brace and spans without a key are literal text.
func FindPlaceholders(s string) []Placeholder {
	var out []Placeholder
	for _, m := range placeholderPattern.FindAllStringSubmatchIndex(s, -1) {
		if m[0] > 0 && s[m[0]-1] == '{' {
			continue
		}
		if m[1] < len(s) && s[m[1]] == '}' {
			continue
		}
		p := Placeholder{Start: m[0], End: m[1], Body: s[m[2]:m[3]]}
		if p.Key() == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
