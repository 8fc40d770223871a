package commands

import (
	"context"
	"io"

	"github.com/arthur-debert/foldergen/pkg/apply"
	"github.com/arthur-debert/foldergen/pkg/logging"
	"github.com/arthur-debert/foldergen/pkg/types"
)

// SimulateOptions defines the options for the Simulate command
type SimulateOptions struct {
	Inputs
	// Out receives the operation lines, directories first
	Out io.Writer
	// Quiet suppresses the operation lines
	Quiet bool
}

// SimulateResult counts what a build would create
type SimulateResult struct {
	Dirs  int
	Files int
}

// Simulate prints every operation of the plan without writing anything
func Simulate(opts SimulateOptions) (*SimulateResult, error) {
	log := logging.GetLogger("commands")
	log.Debug().Str("command", "Simulate").Msg("Executing command")

	prep, err := Make(opts.Inputs)
	if err != nil {
		return nil, err
	}

	out := opts.Out
	if opts.Quiet || out == nil {
		out = io.Discard
	}
	res, err := apply.New().Apply(context.Background(), dirsFirst(prep.Plan), apply.Options{
		Simulate: true,
		Out:      out,
	})
	if err != nil {
		return nil, err
	}

	return &SimulateResult{Dirs: res.Dirs, Files: res.Files}, nil
}

// dirsFirst reorders a plan to list every directory before any file
func dirsFirst(p *types.BuildPlan) *types.BuildPlan {
	items := make([]types.PlanItem, 0, p.Len())
	for _, item := range p.Items {
		if item.Kind == types.KindDir {
			items = append(items, item)
		}
	}
	for _, item := range p.Items {
		if item.Kind == types.KindFile {
			items = append(items, item)
		}
	}
	return &types.BuildPlan{Items: items}
}
