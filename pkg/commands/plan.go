package commands

import (
	"github.com/arthur-debert/foldergen/pkg/audit"
	"github.com/arthur-debert/foldergen/pkg/logging"
	"github.com/arthur-debert/foldergen/pkg/plan"
	"github.com/arthur-debert/foldergen/pkg/types"
)

// PlanOptions defines the options for the Plan command
type PlanOptions struct {
	Inputs
	// Relative shows manifest paths relative to the base directory
	Relative bool
	// WithStatus audits the base directory and annotates every entry
	WithStatus bool
}

// PlanResult is a manifest plus what was learned producing it
type PlanResult struct {
	Manifest []plan.ManifestEntry
	// UnusedVars lists context keys the template never references
	UnusedVars []string
	// Report is set when WithStatus was requested
	Report *types.AuditReport
	Plan   *types.BuildPlan
}

// Plan builds the manifest of a template
func Plan(opts PlanOptions) (*PlanResult, error) {
	log := logging.GetLogger("commands")
	log.Debug().Str("command", "Plan").Msg("Executing command")

	prep, err := Make(opts.Inputs)
	if err != nil {
		return nil, err
	}

	result := &PlanResult{Plan: prep.Plan, UnusedVars: prep.UnusedVars()}
	mopts := plan.ManifestOptions{BaseDir: prep.BaseDir, Relative: opts.Relative}
	if opts.WithStatus {
		report, err := prep.runAudit(opts.Inputs)
		if err != nil {
			return nil, err
		}
		result.Report = report
		mopts.Status = audit.StatusIndex(report)
	}
	result.Manifest = plan.ToManifest(prep.Plan, mopts)

	log.Info().Str("command", "Plan").Int("entries", len(result.Manifest)).Msg("Command finished")
	return result, nil
}
