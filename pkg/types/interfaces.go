package types

import (
	"io/fs"
)

// FS is the read side of a filesystem as seen by the auditor
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	// Lstat does not follow a final symlink. Backends without links may
	// fall back to Stat.
	Lstat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)

	// EvalSymlinks resolves symlinks in name. Filesystems without symlink
	// support return the cleaned name.
	EvalSymlinks(name string) (string, error)

	// Writable reports whether new entries can be created inside dir
	Writable(dir string) (bool, error)
}
