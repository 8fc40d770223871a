package filesystem

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOS(t *testing.T) {
	fsys := NewOS()
	assert.NotNil(t, fsys)

	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "sub", "dir"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "test.txt"), []byte("hello"), 0644))

	info, err := fsys.Stat(filepath.Join(tmpDir, "test.txt"))
	require.NoError(t, err)
	assert.Equal(t, "test.txt", info.Name())

	entries, err := fsys.ReadDir(tmpDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	linfo, err := fsys.Lstat(filepath.Join(tmpDir, "sub"))
	require.NoError(t, err)
	assert.True(t, linfo.IsDir())

	resolved, err := fsys.EvalSymlinks(tmpDir)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(resolved))

	ok, err := fsys.Writable(tmpDir)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestOSWritableReadOnlyDir(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for this user")
	}

	dir := filepath.Join(t.TempDir(), "locked")
	require.NoError(t, os.Mkdir(dir, 0555))
	t.Cleanup(func() { _ = os.Chmod(dir, 0755) })

	ok, err := NewOS().Writable(dir)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTempFileWritable(t *testing.T) {
	dir := t.TempDir()
	ok, err := tempFileWritable(dir)
	require.NoError(t, err)
	assert.True(t, ok)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "scratch file must be removed")

	_, err = tempFileWritable(filepath.Join(dir, "missing"))
	assert.Error(t, err)

	if runtime.GOOS != "windows" && os.Geteuid() != 0 {
		locked := filepath.Join(dir, "locked")
		require.NoError(t, os.Mkdir(locked, 0555))
		t.Cleanup(func() { _ = os.Chmod(locked, 0755) })

		ok, err = tempFileWritable(locked)
		require.NoError(t, err)
		assert.False(t, ok)
	}
}

func TestAferoFS(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/base/a/b", 0755))
	require.NoError(t, afero.WriteFile(mem, "/base/a/file.txt", nil, 0644))

	fsys := NewAferoFS(mem)

	entries, err := fsys.ReadDir("/base/a")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	names := []string{entries[0].Name(), entries[1].Name()}
	assert.ElementsMatch(t, []string{"b", "file.txt"}, names)

	info, err := fsys.Lstat("/base/a/b")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	resolved, err := fsys.EvalSymlinks("/base/a/../a/b")
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean("/base/a/b"), resolved)

	_, err = fsys.EvalSymlinks("/base/missing")
	assert.Error(t, err)

	ok, err := fsys.Writable("/base/a")
	require.NoError(t, err)
	assert.True(t, ok)

	ro := NewAferoFS(afero.NewReadOnlyFs(mem))
	ok, err = ro.Writable("/base/a")
	require.NoError(t, err)
	assert.False(t, ok)
}
