package testutil

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
)

// MemoryTree builds an in-memory tree. Entries ending in "/" are
// directories, anything else is an empty file whose parents are created.
func MemoryTree(t *testing.T, entries ...string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	for _, e := range entries {
		if strings.HasSuffix(e, "/") {
			if err := fs.MkdirAll(strings.TrimSuffix(e, "/"), 0755); err != nil {
				t.Fatalf("Failed to create directory %s: %v", e, err)
			}
			continue
		}
		if err := afero.WriteFile(fs, e, nil, 0644); err != nil {
			t.Fatalf("Failed to create file %s: %v", e, err)
		}
	}
	return fs
}
