package generator

import (
	"strconv"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
)

const (
	defaultDateFormat = "%Y%m%d"
	// maxDateSteps bounds date iteration for templates with absurd ranges
	maxDateSteps = 1_000_000
)

type dateRange struct {
	start, stop time.Time
	n           int
	unit        byte
	format      string
}

func compileDate(t *token) (sequence, error) {
	s, _ := t.get("start")
	e, _ := t.get("stop")
	step, _ := t.get("step")
	if s == "" || e == "" || step == "" {
		return nil, syntaxError(t.raw, "date requires start/stop/step, e.g. step=1m/7d/1y")
	}
	start, err := parseDay(s)
	if err != nil {
		return nil, syntaxError(t.raw, "invalid date start %q (want YYYY-MM-DD)", s)
	}
	stop, err := parseDay(e)
	if err != nil {
		return nil, syntaxError(t.raw, "invalid date stop %q (want YYYY-MM-DD)", e)
	}

	unit := strings.ToLower(step[len(step)-1:])[0]
	n, err := strconv.Atoi(step[:len(step)-1])
	if err != nil {
		return nil, syntaxError(t.raw, "invalid date step: %s", step)
	}
	if n == 0 {
		return nil, syntaxError(t.raw, "date step cannot be 0")
	}
	if unit != 'd' && unit != 'm' && unit != 'y' {
		return nil, syntaxError(t.raw, "unknown date step unit: %c", unit)
	}

	format, ok := t.get("fmt")
	if !ok || format == "" {
		format = defaultDateFormat
	}
	return &dateRange{start: start, stop: stop, n: n, unit: unit, format: format}, nil
}

// parseDay parses Y-M-D with unpadded fields allowed, rejecting invalid days
func parseDay(s string) (time.Time, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return time.Time{}, strconv.ErrSyntax
	}
	var ymd [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return time.Time{}, err
		}
		ymd[i] = v
	}
	d := time.Date(ymd[0], time.Month(ymd[1]), ymd[2], 0, 0, 0, 0, time.UTC)
	if d.Year() != ymd[0] || int(d.Month()) != ymd[1] || d.Day() != ymd[2] {
		return time.Time{}, strconv.ErrRange
	}
	return d, nil
}

func (r *dateRange) within(cur time.Time) bool {
	if r.n > 0 {
		return !cur.After(r.stop)
	}
	return !cur.Before(r.stop)
}

func (r *dateRange) next(cur time.Time) time.Time {
	switch r.unit {
	case 'd':
		return cur.AddDate(0, 0, r.n)
	case 'm':
		return addMonths(cur, r.n)
	default:
		return addMonths(cur, r.n*12)
	}
}

// each calls fn for every date in the range, stopping at maxDateSteps
func (r *dateRange) each(fn func(time.Time)) {
	for cur, i := r.start, 0; r.within(cur) && i < maxDateSteps; cur, i = r.next(cur), i+1 {
		fn(cur)
	}
}

func (r *dateRange) Count() int {
	n := 0
	r.each(func(time.Time) { n++ })
	return n
}

func (r *dateRange) Values() []string {
	var out []string
	r.each(func(d time.Time) {
		out = append(out, strftime.Format(r.format, d))
	})
	return out
}

// addMonths moves d by months calendar months, clamping the day to the
// length of the target month. Iteration continues from the clamped date,
// so Jan 31 +1m +1m gives Feb 29 then Mar 29 in a leap year.
func addMonths(d time.Time, months int) time.Time {
	total := int(d.Month()) - 1 + months
	y := d.Year() + floorDiv(total, 12)
	m := total - floorDiv(total, 12)*12 + 1
	day := d.Day()
	if last := daysIn(y, time.Month(m)); day > last {
		day = last
	}
	return time.Date(y, time.Month(m), day, 0, 0, 0, 0, time.UTC)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
