// Package apply writes a BuildPlan to disk.
//
// Every plan item becomes one synthfs custom operation: directories are
// created with their parents, files are created empty and only when
// absent. Existing files are never truncated, so applying a plan twice is
// harmless. In simulate mode nothing is written but the same progress lines
// are printed.
package apply

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/arthur-debert/foldergen/pkg/errors"
	"github.com/arthur-debert/foldergen/pkg/logging"
	"github.com/arthur-debert/foldergen/pkg/types"
	"github.com/arthur-debert/synthfs/pkg/synthfs"
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
	"github.com/rs/zerolog"
)

const (
	DirPrefix  = "[dir ] "
	FilePrefix = "[file] "

	defaultDirMode  os.FileMode = 0755
	defaultFileMode os.FileMode = 0644
)

// Options configures Apply
type Options struct {
	Simulate bool
	// Out receives one progress line per item. Nil discards them.
	Out io.Writer
	// RollbackOnError asks synthfs to undo completed operations on failure
	RollbackOnError bool
	DirMode         os.FileMode
	FileMode        os.FileMode
}

// Result summarizes an applied plan
type Result struct {
	Dirs  int
	Files int
	// Created lists files that did not exist before
	Created []string
	// Kept lists files left untouched because they already existed
	Kept []string
}

// Applier writes plans through a synthfs filesystem
type Applier struct {
	logger zerolog.Logger
	fs     filesystem.FullFileSystem
}

// New creates an applier on the OS filesystem, accepting absolute paths
func New() *Applier {
	osfs := filesystem.NewOSFileSystem("/")
	return NewWithFS(synthfs.NewPathAwareFileSystem(osfs, "/").WithAbsolutePaths())
}

// NewWithFS creates an applier on the given filesystem
func NewWithFS(fs filesystem.FullFileSystem) *Applier {
	return &Applier{
		logger: logging.GetLogger("apply"),
		fs:     fs,
	}
}

// Apply performs every plan item in order
func (a *Applier) Apply(ctx context.Context, plan *types.BuildPlan, opts Options) (*Result, error) {
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	if opts.DirMode == 0 {
		opts.DirMode = defaultDirMode
	}
	if opts.FileMode == 0 {
		opts.FileMode = defaultFileMode
	}

	res := &Result{Created: []string{}, Kept: []string{}}
	for _, item := range plan.Items {
		if item.Kind == types.KindDir {
			res.Dirs++
		} else {
			res.Files++
		}
	}

	if opts.Simulate {
		a.logger.Info().Int("items", plan.Len()).Msg("Simulating plan")
		for _, item := range plan.Items {
			_, _ = fmt.Fprintln(out, progressLine(item))
		}
		return res, nil
	}
	if plan.Len() == 0 {
		return res, nil
	}

	sfs := synthfs.New()
	rec := &recorder{out: out, result: res}
	ops := make([]synthfs.Operation, 0, plan.Len())
	for i, item := range plan.Items {
		// the synthfs filesystem is rooted at "/"
		target, err := filepath.Abs(item.Path)
		if err != nil {
			return res, errors.Wrapf(err, errors.ErrInvalidInput, "cannot resolve %s", item.Path)
		}
		switch item.Kind {
		case types.KindDir:
			id := fmt.Sprintf("mkdir_%06d_%s", i, filepath.Base(target))
			ops = append(ops, sfs.CustomOperationWithID(id, a.mkdirOperation(item, target, opts, rec)))
		case types.KindFile:
			id := fmt.Sprintf("touch_%06d_%s", i, filepath.Base(target))
			ops = append(ops, sfs.CustomOperationWithID(id, a.touchOperation(item, target, opts, rec)))
		}
	}

	options := synthfs.DefaultPipelineOptions()
	options.RollbackOnError = opts.RollbackOnError

	a.logger.Info().
		Int("operationCount", len(ops)).
		Bool("rollbackEnabled", opts.RollbackOnError).
		Msg("Applying plan")
	defer logging.LogOperationStart(a.logger, "apply")()

	if _, err := synthfs.RunWithOptions(ctx, a.fs, options, ops...); err != nil {
		if first := rec.failure(); first != nil {
			return res, first
		}
		return res, errors.Wrapf(err, errors.ErrFileWrite, "failed to apply plan")
	}

	a.logger.Info().
		Int("created", len(res.Created)).
		Int("kept", len(res.Kept)).
		Msg("Plan applied")
	return res, nil
}

func (a *Applier) mkdirOperation(item types.PlanItem, target string, opts Options, rec *recorder) func(context.Context, filesystem.FileSystem) error {
	return func(_ context.Context, fsys filesystem.FileSystem) error {
		if err := fsys.MkdirAll(target, opts.DirMode); err != nil {
			return rec.fail(errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", target).
				WithDetail("path", target))
		}
		rec.done(item, false)
		return nil
	}
}

func (a *Applier) touchOperation(item types.PlanItem, target string, opts Options, rec *recorder) func(context.Context, filesystem.FileSystem) error {
	return func(_ context.Context, fsys filesystem.FileSystem) error {
		parent := filepath.Dir(target)
		if err := fsys.MkdirAll(parent, opts.DirMode); err != nil {
			return rec.fail(errors.Wrapf(err, errors.ErrDirCreate, "failed to create parent directory %s", parent).
				WithDetail("path", parent))
		}

		f, err := fsys.Open(target)
		if err == nil {
			_ = f.Close()
			rec.done(item, false)
			return nil
		}
		if !stderrors.Is(err, iofs.ErrNotExist) && !os.IsNotExist(err) {
			return rec.fail(errors.Wrapf(err, errors.ErrFileAccess, "failed to check %s", target).
				WithDetail("path", target))
		}

		if err := fsys.WriteFile(target, []byte{}, opts.FileMode); err != nil {
			return rec.fail(errors.Wrapf(err, errors.ErrFileCreate, "failed to create file %s", target).
				WithDetail("path", target))
		}
		rec.done(item, true)
		return nil
	}
}

func progressLine(item types.PlanItem) string {
	if item.Kind == types.KindDir {
		return DirPrefix + item.Path
	}
	return FilePrefix + item.Path
}

// recorder collects per-item outcomes from inside synthfs operations
type recorder struct {
	mu     sync.Mutex
	out    io.Writer
	result *Result
	first  error
}

func (r *recorder) done(item types.PlanItem, created bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if item.Kind == types.KindFile {
		if created {
			r.result.Created = append(r.result.Created, item.Path)
		} else {
			r.result.Kept = append(r.result.Kept, item.Path)
		}
	}
	_, _ = fmt.Fprintln(r.out, progressLine(item))
}

func (r *recorder) fail(err *errors.FoldergenError) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.first == nil {
		r.first = err
	}
	return err
}

func (r *recorder) failure() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.first
}
