// Package config loads foldergen settings.
//
// Settings are layered with koanf. Embedded defaults come first, then an
// optional foldergen.toml (or .foldergen.toml) from the working directory or
// an explicit path, then FOLDERGEN_* environment variables and finally
// overrides collected from command flags. Later layers win.
//
// Environment variables use a double underscore between section and key:
//
//	FOLDERGEN_EXPAND__MAX_EXPAND=1000
//	FOLDERGEN_AUDIT__PORTABLE=windows
package config
