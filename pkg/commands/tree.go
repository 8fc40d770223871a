package commands

import (
	"github.com/arthur-debert/foldergen/pkg/audit"
	"github.com/arthur-debert/foldergen/pkg/logging"
	"github.com/arthur-debert/foldergen/pkg/plan"
)

// TreeOptions defines the options for the Tree command
type TreeOptions struct {
	Inputs
	Relative     bool
	IncludeFiles bool
	// Sort defaults to the configured tree sort
	Sort plan.SortMode
	// WithStatus audits the base directory and annotates nodes
	WithStatus bool
}

// Tree groups the plan into a tree
func Tree(opts TreeOptions) (*plan.TreeNode, error) {
	log := logging.GetLogger("commands")
	log.Debug().Str("command", "Tree").Msg("Executing command")

	prep, err := Make(opts.Inputs)
	if err != nil {
		return nil, err
	}

	sort := opts.Sort
	if sort == "" {
		sort = plan.SortMode(opts.config().Output.TreeSort)
	}
	topts := plan.TreeOptions{
		BaseDir:      prep.BaseDir,
		Relative:     opts.Relative,
		IncludeFiles: opts.IncludeFiles,
		Sort:         sort,
	}
	if opts.WithStatus {
		report, err := prep.runAudit(opts.Inputs)
		if err != nil {
			return nil, err
		}
		topts.Status = audit.StatusIndex(report)
	}
	return plan.ToTree(prep.Plan, topts), nil
}
