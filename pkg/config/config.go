package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/foldergen/pkg/audit"
	"github.com/arthur-debert/foldergen/pkg/errors"
	"github.com/arthur-debert/foldergen/pkg/logging"
	"github.com/arthur-debert/foldergen/pkg/output"
	"github.com/arthur-debert/foldergen/pkg/plan"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"
)

// EnvPrefix is the prefix of environment variables read by Load
const EnvPrefix = "FOLDERGEN_"

// FileNames are looked up, in order, in the search directory
var FileNames = []string{"foldergen.toml", ".foldergen.toml"}

// Config is the effective foldergen configuration
type Config struct {
	Expand ExpandConfig `koanf:"expand" toml:"expand"`
	Audit  AuditConfig  `koanf:"audit" toml:"audit"`
	Output OutputConfig `koanf:"output" toml:"output"`

	// File is the config file that was merged, empty when none was found
	File string `koanf:"-" toml:"-"`
}

type ExpandConfig struct {
	MaxExpand   int  `koanf:"max_expand" toml:"max_expand"`
	StrictPaths bool `koanf:"strict_paths" toml:"strict_paths"`
}

type AuditConfig struct {
	Portable       string `koanf:"portable" toml:"portable"`
	MaxPathLen     int    `koanf:"max_path_len" toml:"max_path_len"`
	FollowSymlinks bool   `koanf:"follow_symlinks" toml:"follow_symlinks"`
}

type OutputConfig struct {
	TreeSort       string `koanf:"tree_sort" toml:"tree_sort"`
	ManifestFormat string `koanf:"manifest_format" toml:"manifest_format"`
	Relative       bool   `koanf:"relative" toml:"relative"`
	Color          string `koanf:"color" toml:"color"`
}

// LoadOptions controls where Load looks for settings
type LoadOptions struct {
	// ConfigFile is an explicit config path. It must exist when set.
	ConfigFile string
	// SearchDir is where foldergen.toml is looked up. Defaults to the
	// working directory.
	SearchDir string
	// Overrides are dotted keys (e.g. "expand.max_expand") applied last
	Overrides map[string]interface{}
	// SkipFile and SkipEnv disable the file and environment layers
	SkipFile bool
	SkipEnv  bool
}

// Default returns the embedded defaults alone
func Default() *Config {
	cfg, err := Load(LoadOptions{SkipFile: true, SkipEnv: true})
	if err != nil {
		panic("config: embedded defaults are invalid: " + err.Error())
	}
	return cfg
}

// Load builds the effective configuration and validates it
func Load(opts LoadOptions) (*Config, error) {
	log := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default config")
	}

	// 2. Config file
	path, err := findConfigFile(opts)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		log.Debug().Str("path", path).Msg("Loaded config file")
	}

	// 3. Environment
	if !opts.SkipEnv {
		if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
		}
	}

	// 4. Flag overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}
	cfg.File = path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Trace().Interface("config", cfg).Msg("Effective configuration")
	return &cfg, nil
}

// envKey maps FOLDERGEN_AUDIT__MAX_PATH_LEN to audit.max_path_len
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

func findConfigFile(opts LoadOptions) (string, error) {
	if opts.SkipFile {
		return "", nil
	}
	if opts.ConfigFile != "" {
		info, err := os.Stat(opts.ConfigFile)
		if err != nil {
			if os.IsNotExist(err) {
				return "", errors.Newf(errors.ErrConfigLoad, "config file not found: %s", opts.ConfigFile).
					WithDetail("path", opts.ConfigFile)
			}
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", opts.ConfigFile)
		}
		if info.IsDir() {
			return "", errors.Newf(errors.ErrConfigLoad, "config path is a directory: %s", opts.ConfigFile)
		}
		return opts.ConfigFile, nil
	}

	dir := opts.SearchDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", nil
		}
		dir = wd
	}
	for _, name := range FileNames {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", nil
}

// Validate rejects values the rest of foldergen cannot act on
func (c *Config) Validate() error {
	if c.Expand.MaxExpand <= 0 {
		return invalid("expand.max_expand", c.Expand.MaxExpand, "must be positive")
	}
	if c.Audit.MaxPathLen <= 0 {
		return invalid("audit.max_path_len", c.Audit.MaxPathLen, "must be positive")
	}
	mode, err := audit.ParsePortableMode(c.Audit.Portable)
	if err != nil {
		return invalid("audit.portable", c.Audit.Portable, "must be one of "+joinModes())
	}
	c.Audit.Portable = string(mode)
	switch plan.SortMode(c.Output.TreeSort) {
	case plan.SortTemplate, plan.SortAlpha:
	default:
		return invalid("output.tree_sort", c.Output.TreeSort, "must be template or alpha")
	}
	switch c.Output.ManifestFormat {
	case output.ManifestJSON, output.ManifestJSONL:
	default:
		return invalid("output.manifest_format", c.Output.ManifestFormat, "must be json or jsonl")
	}
	color, err := output.ParseColorMode(c.Output.Color)
	if err != nil {
		return invalid("output.color", c.Output.Color, "must be auto, always or never")
	}
	c.Output.Color = string(color)
	return nil
}

func invalid(key string, value interface{}, why string) error {
	return errors.Newf(errors.ErrConfigValid, "invalid %s %v: %s", key, value, why).
		WithDetail("key", key).
		WithDetail("value", value)
}

func joinModes() string {
	modes := audit.PortableModes()
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}

// PlanOptions returns the plan builder options derived from c
func (c *Config) PlanOptions() plan.Options {
	return plan.Options{
		MaxExpand:   c.Expand.MaxExpand,
		StrictPaths: c.Expand.StrictPaths,
	}
}

// AuditOptions returns the auditor options derived from c
func (c *Config) AuditOptions() audit.Options {
	return audit.Options{
		FollowSymlinks: c.Audit.FollowSymlinks,
		MaxPathLen:     c.Audit.MaxPathLen,
		Portable:       audit.PortableMode(c.Audit.Portable),
	}
}

// ToTOML renders the effective configuration
func (c *Config) ToTOML() ([]byte, error) {
	out, err := gotoml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return out, nil
}
