package cli

import (
	"fmt"

	"github.com/arthur-debert/foldergen/pkg/commands"
	"github.com/arthur-debert/foldergen/pkg/config"
	"github.com/arthur-debert/foldergen/pkg/errors"
	"github.com/arthur-debert/foldergen/pkg/output"
	"github.com/arthur-debert/foldergen/pkg/types"
	"github.com/spf13/cobra"
)

// Check output formats
const (
	formatJSON  = "json"
	formatTable = "table"
)

func newCheckCmd() *cobra.Command {
	var (
		in       inputFlags
		format   string
		strict   bool
		filter   string
		baseline string
	)

	cmd := &cobra.Command{
		Use:     "check",
		Short:   MsgCheckShort,
		Long:    MsgCheckLong,
		Example: MsgCheckExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatJSON && format != formatTable {
				return errors.Newf(errors.ErrInvalidInput, MsgErrUnknownFormat, format).
					WithDetail("format", format)
			}
			sections, err := output.ParseSectionFilter(filter)
			if err != nil {
				return err
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			report, err := commands.Check(commands.CheckOptions{Inputs: in.inputs(cfg)})
			if err != nil {
				return err
			}

			if baseline != "" {
				err = writeBaselineDiff(cmd, baseline, report, sections)
			} else {
				err = writeReport(cmd, cfg, report, format, sections)
			}
			if err != nil {
				return err
			}

			if code := commands.CheckExitCode(report, strict); code != commands.ExitOK {
				return &ExitError{Code: code}
			}
			return nil
		},
	}

	in.register(cmd, true)
	cmd.Flags().StringVar(&format, "format", formatJSON, MsgFlagCheckFormat)
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{formatJSON, formatTable}, cobra.ShellCompDirectiveNoFileComp))
	cmd.Flags().BoolVar(&strict, "strict", false, MsgFlagStrict)
	cmd.Flags().StringVar(&filter, "filter", "", MsgFlagFilter)
	cmd.Flags().StringVar(&baseline, "baseline", "", MsgFlagBaseline)
	_ = cmd.MarkFlagFilename("baseline", "json")
	d := config.Default()
	addExpandFlags(cmd, d)
	addAuditFlags(cmd, d)

	return cmd
}

func writeReport(cmd *cobra.Command, cfg *config.Config, report *types.AuditReport, format string, sections output.SectionFilter) error {
	out := cmd.OutOrStdout()
	if format == formatTable {
		return output.WriteReportTable(out, report, output.ReportOptions{
			Filter: sections,
			Styles: stylesFor(cmd, cfg),
		})
	}
	return output.WriteJSON(out, output.FilterReport(report, sections))
}

func writeBaselineDiff(cmd *cobra.Command, path string, report *types.AuditReport, sections output.SectionFilter) error {
	before, err := output.LoadReport(path)
	if err != nil {
		return err
	}
	diff, err := output.DiffReports(
		output.FilterReport(before, sections),
		output.FilterReport(report, sections),
		path, "current")
	if err != nil {
		return err
	}
	if diff == "" {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), MsgBaselineSame)
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), diff)
	return err
}
