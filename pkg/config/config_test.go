// pkg/config/config_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: temp dirs, environment
// PURPOSE: Test configuration layering and validation

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/foldergen/pkg/audit"
	"github.com/arthur-debert/foldergen/pkg/errors"
	"github.com/arthur-debert/foldergen/pkg/plan"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 50000, cfg.Expand.MaxExpand)
	assert.False(t, cfg.Expand.StrictPaths)
	assert.Equal(t, "auto", cfg.Audit.Portable)
	assert.Equal(t, 240, cfg.Audit.MaxPathLen)
	assert.False(t, cfg.Audit.FollowSymlinks)
	assert.Equal(t, "template", cfg.Output.TreeSort)
	assert.Equal(t, "json", cfg.Output.ManifestFormat)
	assert.True(t, cfg.Output.Relative)
	assert.Equal(t, "auto", cfg.Output.Color)
	assert.Empty(t, cfg.File)
}

func TestLoadUsesCurrentLogger(t *testing.T) {
	prevLogger, prevLevel := zlog.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		zlog.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})

	// installed after package init, the way SetupLogger does it
	var buf bytes.Buffer
	zlog.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	dir := t.TempDir()
	path := writeConfig(t, dir, "foldergen.toml", "[expand]\nmax_expand = 100\n")
	_, err := Load(LoadOptions{SearchDir: dir, SkipEnv: true})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "Loaded config file")
	assert.Contains(t, buf.String(), `"component":"config"`)
	assert.Contains(t, buf.String(), path)
}

func TestLoadLayers(t *testing.T) {
	t.Run("file_found_in_search_dir", func(t *testing.T) {
		dir := t.TempDir()
		path := writeConfig(t, dir, "foldergen.toml", `
[expand]
max_expand = 100

[audit]
portable = "Windows"
`)
		cfg, err := Load(LoadOptions{SearchDir: dir, SkipEnv: true})
		require.NoError(t, err)

		assert.Equal(t, path, cfg.File)
		assert.Equal(t, 100, cfg.Expand.MaxExpand)
		assert.Equal(t, "windows", cfg.Audit.Portable)
		// untouched keys keep their defaults
		assert.Equal(t, 240, cfg.Audit.MaxPathLen)
	})

	t.Run("hidden_file_name", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, ".foldergen.toml", "[output]\ntree_sort = \"alpha\"\n")

		cfg, err := Load(LoadOptions{SearchDir: dir, SkipEnv: true})
		require.NoError(t, err)
		assert.Equal(t, "alpha", cfg.Output.TreeSort)
	})

	t.Run("env_overrides_file", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "foldergen.toml", "[expand]\nmax_expand = 100\n")
		t.Setenv("FOLDERGEN_EXPAND__MAX_EXPAND", "7")
		t.Setenv("FOLDERGEN_AUDIT__FOLLOW_SYMLINKS", "true")

		cfg, err := Load(LoadOptions{SearchDir: dir})
		require.NoError(t, err)
		assert.Equal(t, 7, cfg.Expand.MaxExpand)
		assert.True(t, cfg.Audit.FollowSymlinks)
	})

	t.Run("overrides_win", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("FOLDERGEN_EXPAND__MAX_EXPAND", "7")

		cfg, err := Load(LoadOptions{
			SearchDir: dir,
			Overrides: map[string]interface{}{
				"expand.max_expand": 3,
				"audit.portable":    "posix",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.Expand.MaxExpand)
		assert.Equal(t, "posix", cfg.Audit.Portable)
	})

	t.Run("explicit_file", func(t *testing.T) {
		dir := t.TempDir()
		path := writeConfig(t, dir, "custom.toml", "[audit]\nmax_path_len = 99\n")

		cfg, err := Load(LoadOptions{ConfigFile: path, SkipEnv: true})
		require.NoError(t, err)
		assert.Equal(t, 99, cfg.Audit.MaxPathLen)
		assert.Equal(t, path, cfg.File)
	})
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    errors.ErrorCode
	}{
		{"bad_toml", "[expand\nmax_expand = 1", errors.ErrConfigLoad},
		{"zero_max_expand", "[expand]\nmax_expand = 0", errors.ErrConfigValid},
		{"negative_path_len", "[audit]\nmax_path_len = -1", errors.ErrConfigValid},
		{"unknown_portable", "[audit]\nportable = \"amiga\"", errors.ErrConfigValid},
		{"unknown_sort", "[output]\ntree_sort = \"size\"", errors.ErrConfigValid},
		{"unknown_manifest_format", "[output]\nmanifest_format = \"csv\"", errors.ErrConfigValid},
		{"unknown_color", "[output]\ncolor = \"sometimes\"", errors.ErrConfigValid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), "foldergen.toml", tt.content)
			_, err := Load(LoadOptions{ConfigFile: path, SkipEnv: true})
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetErrorCode(err))
		})
	}

	t.Run("missing_explicit_file", func(t *testing.T) {
		_, err := Load(LoadOptions{ConfigFile: filepath.Join(t.TempDir(), "nope.toml")})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
		assert.Contains(t, err.Error(), "config file not found")
	})

	t.Run("validation_detail", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "foldergen.toml", "[audit]\nportable = \"amiga\"")
		_, err := Load(LoadOptions{ConfigFile: path, SkipEnv: true})
		require.Error(t, err)
		assert.Equal(t, "audit.portable", errors.GetErrorDetails(err)["key"])
	})
}

func TestDerivedOptions(t *testing.T) {
	cfg := Default()
	cfg.Expand.StrictPaths = true
	cfg.Audit.Portable = "windows"

	po := cfg.PlanOptions()
	assert.Equal(t, 50000, po.MaxExpand)
	assert.True(t, po.StrictPaths)
	assert.Nil(t, po.Filters)

	ao := cfg.AuditOptions()
	assert.Equal(t, audit.PortableWindows, ao.Portable)
	assert.Equal(t, 240, ao.MaxPathLen)

	assert.Equal(t, plan.SortTemplate, plan.SortMode(cfg.Output.TreeSort))
}

func TestToTOML(t *testing.T) {
	out, err := Default().ToTOML()
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "[expand]")
	assert.Contains(t, text, "max_expand = 50000")
	assert.Regexp(t, `portable = ['"]auto['"]`, text)
	assert.NotContains(t, text, "File")

	// the rendered config loads back to the same values
	path := writeConfig(t, t.TempDir(), "foldergen.toml", text)
	cfg, err := Load(LoadOptions{ConfigFile: path, SkipEnv: true})
	require.NoError(t, err)
	assert.Equal(t, Default().Expand, cfg.Expand)
	assert.Equal(t, Default().Audit, cfg.Audit)
	assert.Equal(t, Default().Output, cfg.Output)
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "audit.max_path_len", envKey("FOLDERGEN_AUDIT__MAX_PATH_LEN"))
	assert.Equal(t, "expand.strict_paths", envKey("FOLDERGEN_EXPAND__STRICT_PATHS"))
}

func TestDefaultsBytesAreCopied(t *testing.T) {
	b := Defaults()
	require.NotEmpty(t, b)
	b[0] = 'X'
	assert.NotEqual(t, byte('X'), Defaults()[0])
}
