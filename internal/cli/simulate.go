package cli

import (
	"fmt"

	"github.com/arthur-debert/foldergen/pkg/commands"
	"github.com/arthur-debert/foldergen/pkg/config"
	"github.com/arthur-debert/foldergen/pkg/output"
	"github.com/spf13/cobra"
)

func newSimulateCmd() *cobra.Command {
	var (
		in      inputFlags
		quiet   bool
		summary bool
	)

	cmd := &cobra.Command{
		Use:     "simulate",
		Short:   MsgSimulateShort,
		Long:    MsgSimulateLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			res, err := commands.Simulate(commands.SimulateOptions{
				Inputs: in.inputs(cfg),
				Out:    cmd.OutOrStdout(),
				Quiet:  quiet,
			})
			if err != nil {
				return err
			}

			if summary || quiet {
				styles := stylesFor(cmd, cfg)
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), styles.Render("Summary", output.Summary(res.Dirs, res.Files)))
			}
			return nil
		},
	}

	in.register(cmd, true)
	cmd.Flags().BoolVar(&quiet, "quiet", false, MsgFlagQuiet)
	cmd.Flags().BoolVar(&summary, "summary", false, MsgFlagSummary)
	addExpandFlags(cmd, config.Default())

	return cmd
}
