package audit

import (
	"sort"
	"strings"

	"github.com/arthur-debert/foldergen/pkg/errors"
)

// PortableMode selects the name portability rules applied to planned paths
type PortableMode string

const (
	PortableAuto    PortableMode = "auto"
	PortableWindows PortableMode = "windows"
	PortablePosix   PortableMode = "posix"
	PortableMac     PortableMode = "mac"
	PortableAll     PortableMode = "all"
	PortableNone    PortableMode = "none"
)

// PortableModes lists every accepted mode
func PortableModes() []PortableMode {
	return []PortableMode{PortableAuto, PortableWindows, PortablePosix, PortableMac, PortableAll, PortableNone}
}

// ParsePortableMode validates a mode name
func ParsePortableMode(s string) (PortableMode, error) {
	m := PortableMode(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range PortableModes() {
		if m == known {
			return m, nil
		}
	}
	return "", errors.Newf(errors.ErrInvalidInput, "unknown portable mode: %s", s).
		WithDetail("mode", s)
}

// NameRules describes which path component names a platform accepts
type NameRules struct {
	IllegalChars        map[rune]struct{}
	ReservedNames       map[string]struct{}
	ForbidTrailingSpace bool
	ForbidTrailingDot   bool
	CaseInsensitive     bool
	Note                string
}

// WindowsRules forbids <>:"/\|?* and control characters, the DOS device
// names, and trailing spaces and dots. Names are case-insensitive.
func WindowsRules() *NameRules {
	illegal := runeSet(`<>:"/\|?*`)
	for c := rune(0); c < 0x20; c++ {
		illegal[c] = struct{}{}
	}
	reserved := map[string]struct{}{"CON": {}, "PRN": {}, "AUX": {}, "NUL": {}}
	for i := 1; i <= 9; i++ {
		reserved["COM"+string(rune('0'+i))] = struct{}{}
		reserved["LPT"+string(rune('0'+i))] = struct{}{}
	}
	return &NameRules{
		IllegalChars:        illegal,
		ReservedNames:       reserved,
		ForbidTrailingSpace: true,
		ForbidTrailingDot:   true,
		CaseInsensitive:     true,
		Note:                "Windows portable rules",
	}
}

// PosixRules only forbids '/' and NUL inside a component
func PosixRules() *NameRules {
	return &NameRules{
		IllegalChars:  runeSet("/\x00"),
		ReservedNames: map[string]struct{}{},
		Note:          "POSIX portable rules",
	}
}

// MacRules are the POSIX rules; APFS no longer treats ':' specially
func MacRules() *NameRules {
	r := PosixRules()
	r.Note = "macOS portable rules"
	return r
}

// MergeRules combines rule sets: union of character and name sets, any
// restriction from one set applies to the result.
func MergeRules(rules ...*NameRules) *NameRules {
	out := &NameRules{
		IllegalChars:  map[rune]struct{}{},
		ReservedNames: map[string]struct{}{},
		Note:          "Merged portable rules (all)",
	}
	for _, r := range rules {
		for c := range r.IllegalChars {
			out.IllegalChars[c] = struct{}{}
		}
		for n := range r.ReservedNames {
			out.ReservedNames[n] = struct{}{}
		}
		out.ForbidTrailingSpace = out.ForbidTrailingSpace || r.ForbidTrailingSpace
		out.ForbidTrailingDot = out.ForbidTrailingDot || r.ForbidTrailingDot
		out.CaseInsensitive = out.CaseInsensitive || r.CaseInsensitive
	}
	return out
}

// SelectRules returns the rules for mode on a host running goos. A nil
// result with a nil error means name checks are disabled.
func SelectRules(mode PortableMode, goos string) (*NameRules, error) {
	switch mode {
	case PortableNone:
		return nil, nil
	case PortableAuto, "":
		if goos == "windows" {
			return WindowsRules(), nil
		}
		return PosixRules(), nil
	case PortableWindows:
		return WindowsRules(), nil
	case PortablePosix:
		return PosixRules(), nil
	case PortableMac:
		return MacRules(), nil
	case PortableAll:
		return MergeRules(WindowsRules(), PosixRules(), MacRules()), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown portable mode: %s", mode).
			WithDetail("mode", string(mode))
	}
}

// CheckComponent returns the reasons name violates r, joined with "; ".
// An empty result means the name is acceptable.
func (r *NameRules) CheckComponent(name string) string {
	var bad []string

	if name == "." || name == ".." {
		bad = append(bad, "reserved path segment: '.' or '..'")
	}

	found := map[rune]struct{}{}
	for _, c := range name {
		if _, ok := r.IllegalChars[c]; ok {
			found[c] = struct{}{}
		}
	}
	if len(found) > 0 {
		chars := make([]rune, 0, len(found))
		for c := range found {
			chars = append(chars, c)
		}
		sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })
		bad = append(bad, "illegal characters: "+string(chars))
	}

	if r.ForbidTrailingSpace && strings.HasSuffix(name, " ") {
		bad = append(bad, "trailing space")
	}
	if r.ForbidTrailingDot && strings.HasSuffix(name, ".") {
		bad = append(bad, "trailing dot")
	}

	if len(r.ReservedNames) > 0 {
		probe := name
		if r.CaseInsensitive {
			probe = strings.ToUpper(probe)
		}
		stem, _, _ := strings.Cut(probe, ".")
		if _, ok := r.ReservedNames[stem]; ok {
			bad = append(bad, "reserved name: "+stem)
		}
	}

	if strings.ContainsRune(name, 0) {
		bad = append(bad, "null character")
	}

	return strings.Join(bad, "; ")
}

func runeSet(s string) map[rune]struct{} {
	out := make(map[rune]struct{}, len(s))
	for _, c := range s {
		out[c] = struct{}{}
	}
	return out
}
