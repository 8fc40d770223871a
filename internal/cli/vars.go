package cli

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/foldergen/pkg/commands"
	"github.com/arthur-debert/foldergen/pkg/errors"
	"github.com/arthur-debert/foldergen/pkg/output"
	"github.com/spf13/cobra"
)

const formatText = "text"

func newVarsCmd() *cobra.Command {
	var (
		in     inputFlags
		format string
	)

	cmd := &cobra.Command{
		Use:     "vars",
		Short:   MsgVarsShort,
		Long:    MsgVarsLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := commands.Vars(commands.VarsOptions{
				TemplatePath: in.template,
				VarsPath:     in.vars,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case formatText:
				for _, row := range []struct {
					label string
					names []string
				}{
					{"Used:", res.Used},
					{"Missing:", res.Missing},
					{"Unused:", res.Unused},
				} {
					list := MsgNone
					if len(row.names) > 0 {
						list = strings.Join(row.names, ", ")
					}
					if _, err := fmt.Fprintf(out, MsgVarsLine, row.label, list); err != nil {
						return err
					}
				}
				return nil
			case formatJSON:
				return output.WriteJSON(out, res)
			case formatYAML:
				return output.WriteYAML(out, res)
			default:
				return errors.Newf(errors.ErrInvalidInput, MsgErrUnknownFormat, format).
					WithDetail("format", format)
			}
		},
	}

	in.register(cmd, false)
	cmd.Flags().StringVar(&format, "format", formatText, MsgFlagVarsFormat)
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{formatText, formatJSON, formatYAML}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}
