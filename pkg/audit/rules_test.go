package audit

import (
	"testing"

	"github.com/arthur-debert/foldergen/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectRules(t *testing.T) {
	r, err := SelectRules(PortableNone, "linux")
	require.NoError(t, err)
	assert.Nil(t, r)

	r, err = SelectRules(PortableAuto, "windows")
	require.NoError(t, err)
	assert.True(t, r.CaseInsensitive)

	r, err = SelectRules(PortableAuto, "linux")
	require.NoError(t, err)
	assert.False(t, r.CaseInsensitive)
	assert.Empty(t, r.ReservedNames)

	r, err = SelectRules(PortableMac, "linux")
	require.NoError(t, err)
	assert.Equal(t, PosixRules().IllegalChars, r.IllegalChars)

	r, err = SelectRules(PortableAll, "linux")
	require.NoError(t, err)
	assert.True(t, r.CaseInsensitive)
	assert.True(t, r.ForbidTrailingDot)
	assert.True(t, r.ForbidTrailingSpace)
	assert.Contains(t, r.IllegalChars, '<')
	assert.Contains(t, r.IllegalChars, rune(0))
	assert.Contains(t, r.ReservedNames, "LPT9")

	_, err = SelectRules("amiga", "linux")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestParsePortableMode(t *testing.T) {
	m, err := ParsePortableMode(" Windows ")
	require.NoError(t, err)
	assert.Equal(t, PortableWindows, m)

	_, err = ParsePortableMode("dos")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestCheckComponent(t *testing.T) {
	win := WindowsRules()
	posix := PosixRules()

	tests := []struct {
		name  string
		rules *NameRules
		comp  string
		want  string
	}{
		{"windows clean", win, "README.md", ""},
		{"reserved device", win, "CON", "reserved name: CON"},
		{"reserved with extension", win, "con.txt", "reserved name: CON"},
		{"reserved numbered", win, "Com3.log", "reserved name: COM3"},
		{"not reserved", win, "CONSOLE", ""},
		{"trailing dot", win, "notes.", "trailing dot"},
		{"trailing space", win, "notes ", "trailing space"},
		{"illegal sorted", win, "a?b<c>", "illegal characters: <>?"},
		{"control character", win, "a\tb", "illegal characters: \t"},
		{"several reasons", win, "CON.", "trailing dot; reserved name: CON"},
		{"dot dot windows", win, "..", "reserved path segment: '.' or '..'; trailing dot"},
		{"dot dot posix", posix, "..", "reserved path segment: '.' or '..'"},
		{"posix allows windows names", posix, "CON.", ""},
		{"posix backslash allowed", posix, `a\b`, ""},
		{"posix nul", posix, "a\x00b", "illegal characters: \x00; null character"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rules.CheckComponent(tt.comp))
		})
	}
}
