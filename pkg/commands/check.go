package commands

import (
	"github.com/arthur-debert/foldergen/pkg/logging"
	"github.com/arthur-debert/foldergen/pkg/types"
)

// Exit codes of the check command
const (
	ExitOK       = 0
	ExitProblems = 2
)

// CheckOptions defines the options for the Check command
type CheckOptions struct {
	Inputs
}

// Check audits the base directory against the plan
func Check(opts CheckOptions) (*types.AuditReport, error) {
	log := logging.GetLogger("commands")
	log.Debug().Str("command", "Check").Msg("Executing command")

	prep, err := Make(opts.Inputs)
	if err != nil {
		return nil, err
	}
	report, err := prep.runAudit(opts.Inputs)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("command", "Check").
		Int("missing", len(report.MissingDirs)+len(report.MissingFiles)).
		Int("conflicts", len(report.Conflicts)).
		Int("nameIssues", len(report.NameIssues)).
		Msg("Command finished")
	return report, nil
}

// CheckExitCode is ExitProblems when strict and the report has problems
func CheckExitCode(report *types.AuditReport, strict bool) int {
	if strict && report.HasProblems() {
		return ExitProblems
	}
	return ExitOK
}
