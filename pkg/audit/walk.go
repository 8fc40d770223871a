package audit

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/foldergen/pkg/types"
)

var isSeparator = os.IsPathSeparator

// scan collects every directory (the root included) and every file under
// base. Any listing error empties both sets and is returned as an issue.
func (a *Auditor) scan(base string, follow bool, norm func(string) string) (dirs, files map[string]struct{}, issues []string) {
	dirs = map[string]struct{}{}
	files = map[string]struct{}{}

	info, err := a.fs.Stat(base)
	if err != nil {
		return dirs, files, []string{"base dir not found: " + base}
	}
	if !info.IsDir() {
		return dirs, files, []string{"base dir is not a directory: " + base}
	}

	w := &walker{fs: a.fs, follow: follow, norm: norm, dirs: dirs, files: files, active: map[string]struct{}{}}
	if err := w.walk(base); err != nil {
		return map[string]struct{}{}, map[string]struct{}{}, []string{"walk permission error: " + err.Error()}
	}
	return dirs, files, nil
}

type walker struct {
	fs     types.FS
	follow bool
	norm   func(string) string
	dirs   map[string]struct{}
	files  map[string]struct{}
	// real paths of the directories currently being walked
	active map[string]struct{}
}

func (w *walker) walk(dir string) error {
	w.dirs[w.norm(dir)] = struct{}{}

	if real, err := w.fs.EvalSymlinks(dir); err == nil {
		w.active[real] = struct{}{}
		defer delete(w.active, real)
	}

	entries, err := w.fs.ReadDir(dir)
	if err != nil {
		return err
	}

	for _, e := range entries {
		full := filepath.Join(dir, e.Name())

		if w.isLink(full, e) {
			target, err := w.fs.Stat(full)
			if err != nil || !target.IsDir() {
				// dangling links count as files
				w.files[w.norm(full)] = struct{}{}
				continue
			}
			if !w.follow || w.loops(full) {
				w.dirs[w.norm(full)] = struct{}{}
				continue
			}
		} else if !e.IsDir() {
			w.files[w.norm(full)] = struct{}{}
			continue
		}

		if err := w.walk(full); err != nil {
			return err
		}
	}
	return nil
}

// isLink asks the filesystem first, since not every backend reports link
// types in its directory listing
func (w *walker) isLink(p string, e fs.DirEntry) bool {
	if info, err := w.fs.Lstat(p); err == nil {
		return info.Mode()&fs.ModeSymlink != 0
	}
	return e.Type()&fs.ModeSymlink != 0
}

// loops reports whether the link at p points back into the directories
// being walked
func (w *walker) loops(p string) bool {
	real, err := w.fs.EvalSymlinks(p)
	if err != nil {
		return true
	}
	_, ok := w.active[real]
	return ok
}

// resolver decides whether planned paths stay inside the base directory
type resolver struct {
	fs    types.FS
	norm  func(string) string
	cache map[string]string
}

func newResolver(fsys types.FS, norm func(string) string) *resolver {
	return &resolver{fs: fsys, norm: norm, cache: map[string]string{}}
}

// inside reports whether p resolves to base or below it. Symlinks in the
// longest existing prefix are followed; the missing remainder is appended
// as is. When resolution fails the raw strings are compared by prefix.
func (r *resolver) inside(base, p string) bool {
	rb, errB := r.resolve(base)
	rp, errP := r.resolve(p)
	if errB != nil || errP != nil {
		return strings.HasPrefix(r.norm(p), r.norm(base))
	}
	return within(r.norm(rb), r.norm(rp))
}

func within(base, p string) bool {
	if p == base {
		return true
	}
	prefix := base
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	return strings.HasPrefix(p, prefix)
}

func (r *resolver) resolve(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	if cached, ok := r.cache[abs]; ok {
		return cached, nil
	}

	var tail []string
	cur := abs
	for {
		if real, err := r.fs.EvalSymlinks(cur); err == nil {
			resolved := filepath.Join(append([]string{real}, tail...)...)
			r.cache[abs] = resolved
			return resolved, nil
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			resolved := filepath.Join(append([]string{cur}, tail...)...)
			r.cache[abs] = resolved
			return resolved, nil
		}
		tail = append([]string{filepath.Base(cur)}, tail...)
		cur = parent
	}
}
