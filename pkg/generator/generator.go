package generator

import (
	"math"
	"regexp"

	"github.com/arthur-debert/foldergen/pkg/logging"
)

var tokenPattern = regexp.MustCompile(`\{\{([^{}]+)\}\}`)

// StripTokens removes every generator token from s
func StripTokens(s string) string {
	return tokenPattern.ReplaceAllString(s, "")
}

// segment is either literal text or a compiled generator
type segment struct {
	literal string
	seq     sequence
}

func compileString(s string) ([]segment, error) {
	matches := tokenPattern.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return []segment{{literal: s}}, nil
	}

	var segs []segment
	last := 0
	for _, m := range matches {
		if m[0] > last {
			segs = append(segs, segment{literal: s[last:m[0]]})
		}
		tok, err := parseToken(s[m[2]:m[3]])
		if err != nil {
			return nil, err
		}
		seq, err := compile(tok)
		if err != nil {
			return nil, err
		}
		segs = append(segs, segment{seq: seq})
		last = m[1]
	}
	if last < len(s) {
		segs = append(segs, segment{literal: s[last:]})
	}
	return segs, nil
}

// Expand returns every variant of s, in lexicographic order of the tokens
// from left to right. A string without tokens expands to itself. A token
// producing no values makes the whole result empty.
func Expand(s string) ([]string, error) {
	segs, err := compileString(s)
	if err != nil {
		return nil, err
	}

	out := []string{""}
	for _, seg := range segs {
		if seg.seq == nil {
			for i := range out {
				out[i] += seg.literal
			}
			continue
		}
		values := seg.seq.Values()
		next := make([]string, 0, len(out)*len(values))
		for _, prefix := range out {
			for _, v := range values {
				next = append(next, prefix+v)
			}
		}
		out = next
	}

	logger := logging.GetLogger("generator")
	if len(segs) > 1 || segs[0].seq != nil {
		logger.Trace().Str("input", s).Int("variants", len(out)).Msg("Expanded generators")
	}
	return out, nil
}

// EstimateCount returns the number of variants Expand would produce without
// producing them. It validates tokens exactly like Expand. The product
// saturates at math.MaxInt instead of wrapping.
func EstimateCount(s string) (int, error) {
	segs, err := compileString(s)
	if err != nil {
		return 0, err
	}

	total := 1
	for _, seg := range segs {
		if seg.seq == nil {
			continue
		}
		n := seg.seq.Count()
		if _, isEnum := seg.seq.(*enumList); isEnum && n < 1 {
			n = 1
		}
		total = MulCount(total, n)
		if total == math.MaxInt {
			break
		}
	}
	return total, nil
}

// MulCount multiplies two non-negative counts, saturating at math.MaxInt
func MulCount(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	if a > math.MaxInt/b {
		return math.MaxInt
	}
	return a * b
}
