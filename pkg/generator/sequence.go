package generator

import (
	"math"
	"strconv"
	"strings"
)

// sequence is a validated generator ready to be counted or enumerated.
// Count and Values always agree: len(Values()) == Count().
type sequence interface {
	Count() int
	Values() []string
}

// compile validates a token and returns its sequence
func compile(t *token) (sequence, error) {
	switch t.kind {
	case "int":
		return compileInt(t)
	case "alpha":
		return compileAlpha(t)
	case "date":
		return compileDate(t)
	case "enum":
		return compileEnum(t)
	default:
		return nil, unknownTypeError(t.kind, t.raw)
	}
}

// stepCount returns how many values start, start+step, ... stay within stop
// in the direction of step. step must not be zero. The distance is taken in
// uint64 so extreme ranges saturate at math.MaxInt instead of wrapping.
func stepCount(start, stop, step int) int {
	var dist, mag uint64
	if step > 0 {
		if start > stop {
			return 0
		}
		dist, mag = uint64(stop)-uint64(start), uint64(step)
	} else {
		if start < stop {
			return 0
		}
		dist, mag = uint64(start)-uint64(stop), uint64(-(step+1))+1
	}
	n := dist / mag
	if n >= math.MaxInt {
		return math.MaxInt
	}
	return int(n) + 1
}

type intRange struct {
	start, stop, step int
	pad               int
}

func compileInt(t *token) (sequence, error) {
	start, err := t.requiredInt("start")
	if err != nil {
		return nil, err
	}
	stop, err := t.requiredInt("stop")
	if err != nil {
		return nil, err
	}
	step, _, err := t.optionalInt("step", 1)
	if err != nil {
		return nil, err
	}
	if step == 0 {
		return nil, syntaxError(t.raw, "step cannot be 0")
	}
	pad, _, err := t.optionalInt("pad", 0)
	if err != nil {
		return nil, err
	}
	return &intRange{start: start, stop: stop, step: step, pad: pad}, nil
}

func (r *intRange) Count() int {
	return stepCount(r.start, r.stop, r.step)
}

func (r *intRange) Values() []string {
	n := r.Count()
	out := make([]string, 0, n)
	for i, v := 0, r.start; i < n; i, v = i+1, v+r.step {
		out = append(out, ZeroFill(strconv.Itoa(v), r.pad))
	}
	return out
}

type alphaRange struct {
	start, stop rune
	step        int
}

func compileAlpha(t *token) (sequence, error) {
	start, _ := t.get("start")
	stop, _ := t.get("stop")
	rs, re := []rune(start), []rune(stop)
	if len(rs) != 1 || len(re) != 1 {
		return nil, syntaxError(t.raw, "alpha start/stop must be single characters")
	}
	step, _, err := t.optionalInt("step", 1)
	if err != nil {
		return nil, err
	}
	if step == 0 {
		return nil, syntaxError(t.raw, "step cannot be 0")
	}
	return &alphaRange{start: rs[0], stop: re[0], step: step}, nil
}

func (r *alphaRange) Count() int {
	return stepCount(int(r.start), int(r.stop), r.step)
}

func (r *alphaRange) Values() []string {
	n := r.Count()
	out := make([]string, 0, n)
	for i, c := 0, int(r.start); i < n; i, c = i+1, c+r.step {
		out = append(out, string(rune(c)))
	}
	return out
}

type enumList struct {
	items []string
}

func compileEnum(t *token) (sequence, error) {
	raw, ok := t.get("items")
	if !ok || raw == "" {
		return nil, syntaxError(t.raw, "enum requires items")
	}
	sep, ok := t.get("sep")
	if !ok || sep == "" {
		sep = ","
	}
	// items are trimmed unless pad=false
	trim := true
	if pad, ok := t.get("pad"); ok && strings.EqualFold(pad, "false") {
		trim = false
	}

	var items []string
	for _, item := range strings.Split(raw, sep) {
		if trim {
			item = strings.TrimSpace(item)
		}
		if strings.TrimSpace(item) == "" {
			continue
		}
		items = append(items, item)
	}
	return &enumList{items: items}, nil
}

func (e *enumList) Count() int {
	return len(e.items)
}

func (e *enumList) Values() []string {
	out := make([]string, len(e.items))
	copy(out, e.items)
	return out
}

// ZeroFill left-pads the digits of s with zeros up to width, keeping a
// leading sign in front. Strings already at least width long are unchanged.
func ZeroFill(s string, width int) string {
	if len(s) >= width {
		return s
	}
	sign := ""
	if s != "" && (s[0] == '-' || s[0] == '+') {
		sign, s = s[:1], s[1:]
	}
	return sign + strings.Repeat("0", width-len(sign)-len(s)) + s
}
