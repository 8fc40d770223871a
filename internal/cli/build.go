package cli

import (
	"fmt"

	"github.com/arthur-debert/foldergen/pkg/commands"
	"github.com/arthur-debert/foldergen/pkg/config"
	"github.com/arthur-debert/foldergen/pkg/errors"
	"github.com/arthur-debert/foldergen/pkg/output"
	"github.com/spf13/cobra"
)

func newBuildCmd() *cobra.Command {
	var (
		in        inputFlags
		assumeYes bool
		rollback  bool
	)

	cmd := &cobra.Command{
		Use:     "build",
		Short:   MsgBuildShort,
		Long:    MsgBuildLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			opts := commands.BuildOptions{
				Inputs:          in.inputs(cfg),
				Out:             out,
				RollbackOnError: rollback,
			}
			if !assumeYes {
				opts.Confirm = func(total int) (bool, error) {
					return output.Confirm(cmd.InOrStdin(), out, fmt.Sprintf(MsgConfirmBuild, total))
				}
			}

			res, err := commands.Build(cmd.Context(), opts)
			if errors.IsErrorCode(err, errors.ErrCancelled) {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), MsgAborted)
				return &ExitError{Code: 1}
			}
			if err != nil {
				return err
			}

			styles := stylesFor(cmd, cfg)
			_, _ = fmt.Fprintln(out, styles.Render("Summary", output.Summary(res.Dirs, res.Files)))
			return nil
		},
	}

	in.register(cmd, true)
	cmd.Flags().BoolVarP(&assumeYes, "assume-yes", "y", false, MsgFlagAssumeYes)
	cmd.Flags().BoolVar(&rollback, "rollback", false, MsgFlagRollback)
	addExpandFlags(cmd, config.Default())

	return cmd
}
