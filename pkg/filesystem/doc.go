// Package filesystem provides filesystem implementations for foldergen.
//
// This package contains implementations of the types.FS interface used by
// the auditor: the real OS filesystem and an afero-backed filesystem for
// tests and in-memory audits.
package filesystem
