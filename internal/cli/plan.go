package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/foldergen/pkg/commands"
	"github.com/arthur-debert/foldergen/pkg/config"
	"github.com/arthur-debert/foldergen/pkg/output"
	"github.com/spf13/cobra"
)

func newPlanCmd() *cobra.Command {
	var (
		in             inputFlags
		exportManifest string
		withStatus     bool
		warnUnused     bool
	)
	d := config.Default()

	cmd := &cobra.Command{
		Use:     "plan",
		Short:   MsgPlanShort,
		Long:    MsgPlanLong,
		Example: MsgPlanExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			result, err := commands.Plan(commands.PlanOptions{
				Inputs:     in.inputs(cfg),
				Relative:   cfg.Output.Relative,
				WithStatus: withStatus,
			})
			if err != nil {
				return err
			}

			if warnUnused && len(result.UnusedVars) > 0 {
				msg := fmt.Sprintf(MsgUnusedVars, strings.Join(result.UnusedVars, ", "))
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), output.FormatWarning(msg))
			}

			format := cfg.Output.ManifestFormat
			if exportManifest == "" {
				return output.WriteManifest(cmd.OutOrStdout(), result.Manifest, format)
			}
			err = output.WriteFile(exportManifest, func(w io.Writer) error {
				return output.WriteManifest(w, result.Manifest, format)
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgManifestWritten, exportManifest)
			return nil
		},
	}

	in.register(cmd, true)
	addRelativeFlags(cmd, d)
	cmd.Flags().StringVar(&exportManifest, "export-manifest", "", MsgFlagExportManifest)
	cmd.Flags().String("manifest-format", d.Output.ManifestFormat, MsgFlagManifestFormat)
	bindConfig(cmd, "manifest-format", "output.manifest_format")
	_ = cmd.RegisterFlagCompletionFunc("manifest-format", cobra.FixedCompletions(
		[]string{output.ManifestJSON, output.ManifestJSONL}, cobra.ShellCompDirectiveNoFileComp))
	cmd.Flags().BoolVar(&withStatus, "with-status", false, MsgFlagWithStatus)
	cmd.Flags().BoolVar(&warnUnused, "warn-unused-vars", false, MsgFlagWarnUnused)
	addExpandFlags(cmd, d)
	addAuditFlags(cmd, d)

	return cmd
}
