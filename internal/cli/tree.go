package cli

import (
	"fmt"
	"io"

	"github.com/arthur-debert/foldergen/pkg/commands"
	"github.com/arthur-debert/foldergen/pkg/config"
	"github.com/arthur-debert/foldergen/pkg/errors"
	"github.com/arthur-debert/foldergen/pkg/output"
	"github.com/arthur-debert/foldergen/pkg/plan"
	"github.com/spf13/cobra"
)

const (
	formatTree = "tree"
	formatYAML = "yaml"
)

func newTreeCmd() *cobra.Command {
	var (
		in        inputFlags
		format    string
		depth     int
		showFiles bool
		status    bool
		outPath   string
	)
	d := config.Default()

	cmd := &cobra.Command{
		Use:     "tree",
		Short:   MsgTreeShort,
		Long:    MsgTreeLong,
		Example: MsgTreeExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case formatTree, formatJSON, formatYAML:
			default:
				return errors.Newf(errors.ErrInvalidInput, MsgErrUnknownFormat, format).
					WithDetail("format", format)
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			root, err := commands.Tree(commands.TreeOptions{
				Inputs:       in.inputs(cfg),
				Relative:     cfg.Output.Relative,
				IncludeFiles: showFiles,
				Sort:         plan.SortMode(cfg.Output.TreeSort),
				WithStatus:   status,
			})
			if err != nil {
				return err
			}

			styles := output.PlainStyles()
			if outPath == "" {
				styles = stylesFor(cmd, cfg)
			}
			write := func(w io.Writer) error {
				switch format {
				case formatJSON:
					return output.WriteJSON(w, root)
				case formatYAML:
					return output.WriteYAML(w, root)
				default:
					return output.WriteTree(w, root, output.TreeOptions{
						MaxDepth: depth,
						Colorize: status,
						Styles:   styles,
					})
				}
			}

			if outPath == "" {
				return write(cmd.OutOrStdout())
			}
			if err := output.WriteFile(outPath, write); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgTreeWritten, format, outPath)
			return nil
		},
	}

	in.register(cmd, true)
	addRelativeFlags(cmd, d)
	cmd.Flags().StringVar(&format, "format", formatTree, MsgFlagTreeFormat)
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{formatTree, formatJSON, formatYAML}, cobra.ShellCompDirectiveNoFileComp))
	cmd.Flags().IntVar(&depth, "depth", -1, MsgFlagDepth)
	cmd.Flags().BoolVar(&showFiles, "show-files", true, MsgFlagShowFiles)
	addSortFlag(cmd, d)
	cmd.Flags().BoolVar(&status, "status", false, MsgFlagStatus)
	cmd.Flags().StringVar(&outPath, "out", "", MsgFlagOut)
	addExpandFlags(cmd, d)
	addAuditFlags(cmd, d)

	return cmd
}
