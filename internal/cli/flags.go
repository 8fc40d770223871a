package cli

import (
	"os"

	"github.com/arthur-debert/foldergen/pkg/audit"
	"github.com/arthur-debert/foldergen/pkg/commands"
	"github.com/arthur-debert/foldergen/pkg/config"
	"github.com/arthur-debert/foldergen/pkg/output"
	"github.com/arthur-debert/foldergen/pkg/plan"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// configKeyAnnotation marks a flag as overriding a config key. A second
// value of configNegate stores the inverse of a bool flag.
const (
	configKeyAnnotation = "foldergen_config_key"
	configNegate        = "negate"
)

// inputFlags are the template, vars and base flags every plan based
// command takes
type inputFlags struct {
	template string
	vars     string
	base     string
}

func (f *inputFlags) register(cmd *cobra.Command, withBase bool) {
	cmd.Flags().StringVar(&f.template, "template", "", MsgFlagTemplate)
	cmd.Flags().StringVar(&f.vars, "vars", "", MsgFlagVars)
	_ = cmd.MarkFlagRequired("template")
	_ = cmd.MarkFlagFilename("template", "json", "yaml", "yml")
	_ = cmd.MarkFlagFilename("vars", "json", "yaml", "yml")

	if withBase {
		cmd.Flags().StringVar(&f.base, "base", "", MsgFlagBase)
		_ = cmd.MarkFlagRequired("base")
		_ = cmd.MarkFlagDirname("base")
	}
}

func (f *inputFlags) inputs(cfg *config.Config) commands.Inputs {
	return commands.Inputs{
		TemplatePath: f.template,
		VarsPath:     f.vars,
		BaseDir:      f.base,
		Config:       cfg,
	}
}

// bindConfig ties flag name to a dotted config key
func bindConfig(cmd *cobra.Command, name, key string, extra ...string) {
	_ = cmd.Flags().SetAnnotation(name, configKeyAnnotation, append([]string{key}, extra...))
}

func addExpandFlags(cmd *cobra.Command, d *config.Config) {
	cmd.Flags().Int("max-expand", d.Expand.MaxExpand, MsgFlagMaxExpand)
	bindConfig(cmd, "max-expand", "expand.max_expand")
	cmd.Flags().Bool("strict-paths", d.Expand.StrictPaths, MsgFlagStrictPaths)
	bindConfig(cmd, "strict-paths", "expand.strict_paths")
}

func addAuditFlags(cmd *cobra.Command, d *config.Config) {
	cmd.Flags().String("portable", d.Audit.Portable, MsgFlagPortable)
	bindConfig(cmd, "portable", "audit.portable")
	cmd.Flags().Int("max-path-len", d.Audit.MaxPathLen, MsgFlagMaxPathLen)
	bindConfig(cmd, "max-path-len", "audit.max_path_len")
	cmd.Flags().Bool("follow-symlinks", d.Audit.FollowSymlinks, MsgFlagFollowSymlinks)
	bindConfig(cmd, "follow-symlinks", "audit.follow_symlinks")

	modes := make([]string, 0, len(audit.PortableModes()))
	for _, m := range audit.PortableModes() {
		modes = append(modes, string(m))
	}
	_ = cmd.RegisterFlagCompletionFunc("portable", cobra.FixedCompletions(modes, cobra.ShellCompDirectiveNoFileComp))
}

func addRelativeFlags(cmd *cobra.Command, d *config.Config) {
	cmd.Flags().Bool("relative", d.Output.Relative, MsgFlagRelative)
	bindConfig(cmd, "relative", "output.relative")
	cmd.Flags().Bool("absolute", !d.Output.Relative, MsgFlagAbsolute)
	bindConfig(cmd, "absolute", "output.relative", configNegate)
	cmd.MarkFlagsMutuallyExclusive("relative", "absolute")
}

func addSortFlag(cmd *cobra.Command, d *config.Config) {
	cmd.Flags().String("sort", d.Output.TreeSort, MsgFlagSort)
	bindConfig(cmd, "sort", "output.tree_sort")
	_ = cmd.RegisterFlagCompletionFunc("sort", cobra.FixedCompletions(
		[]string{string(plan.SortTemplate), string(plan.SortAlpha)}, cobra.ShellCompDirectiveNoFileComp))
}

// overrides collects the config keys of every flag set on the command line
func overrides(flags *pflag.FlagSet) map[string]interface{} {
	out := make(map[string]interface{})
	flags.Visit(func(f *pflag.Flag) {
		keys, ok := f.Annotations[configKeyAnnotation]
		if !ok || len(keys) == 0 {
			return
		}
		var v interface{} = f.Value.String()
		if len(keys) > 1 && keys[1] == configNegate {
			v = f.Value.String() != "true"
		}
		out[keys[0]] = v
	})
	return out
}

// loadConfig layers the config file, environment and the command's flags
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(config.LoadOptions{
		ConfigFile: path,
		Overrides:  overrides(cmd.Flags()),
	})
}

// useColor resolves the configured colour mode against the command output
func useColor(cmd *cobra.Command, cfg *config.Config) bool {
	mode, err := output.ParseColorMode(cfg.Output.Color)
	if err != nil {
		return false
	}
	if f, ok := cmd.OutOrStdout().(*os.File); ok {
		return output.UseColor(mode, f)
	}
	return mode == output.ColorAlways
}

func stylesFor(cmd *cobra.Command, cfg *config.Config) *output.Styles {
	if !useColor(cmd, cfg) {
		return output.PlainStyles()
	}
	return output.NewStyles(cmd.OutOrStdout(), true)
}
