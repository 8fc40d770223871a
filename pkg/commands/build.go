package commands

import (
	"context"
	"io"

	"github.com/arthur-debert/foldergen/pkg/apply"
	"github.com/arthur-debert/foldergen/pkg/errors"
	"github.com/arthur-debert/foldergen/pkg/logging"
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
)

// BuildOptions defines the options for the Build command
type BuildOptions struct {
	Inputs
	// Out receives one progress line per item
	Out io.Writer
	// Confirm is asked before anything is written, with the number of
	// plan items. Nil proceeds without asking.
	Confirm func(total int) (bool, error)
	// RollbackOnError undoes completed operations when one fails
	RollbackOnError bool
	// Target overrides the filesystem written to. Defaults to the OS.
	Target filesystem.FullFileSystem
}

// Build applies the plan to disk. Declining the confirmation returns a
// CANCELLED error and writes nothing.
func Build(ctx context.Context, opts BuildOptions) (*apply.Result, error) {
	log := logging.GetLogger("commands")
	log.Debug().Str("command", "Build").Msg("Executing command")

	prep, err := Make(opts.Inputs)
	if err != nil {
		return nil, err
	}

	if opts.Confirm != nil {
		ok, err := opts.Confirm(prep.Plan.Len())
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, errors.New(errors.ErrCancelled, "aborted")
		}
	}

	applier := apply.New()
	if opts.Target != nil {
		applier = apply.NewWithFS(opts.Target)
	}
	res, err := applier.Apply(ctx, prep.Plan, apply.Options{
		Out:             opts.Out,
		RollbackOnError: opts.RollbackOnError,
	})
	if err != nil {
		return res, err
	}

	log.Info().
		Str("command", "Build").
		Int("dirs", res.Dirs).
		Int("files", res.Files).
		Int("created", len(res.Created)).
		Msg("Command finished")
	return res, nil
}
