// Package testutil provides helpers shared by foldergen tests: building
// real directory trees under t.TempDir(), in-memory trees on afero, and
// ready-made template and variable fixtures.
package testutil
