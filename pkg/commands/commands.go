package commands

import (
	"path/filepath"

	"github.com/arthur-debert/foldergen/pkg/audit"
	"github.com/arthur-debert/foldergen/pkg/config"
	"github.com/arthur-debert/foldergen/pkg/errors"
	"github.com/arthur-debert/foldergen/pkg/filesystem"
	"github.com/arthur-debert/foldergen/pkg/logging"
	"github.com/arthur-debert/foldergen/pkg/plan"
	"github.com/arthur-debert/foldergen/pkg/render"
	"github.com/arthur-debert/foldergen/pkg/template"
	"github.com/arthur-debert/foldergen/pkg/types"
	"github.com/arthur-debert/foldergen/pkg/validator"
)

// Inputs are shared by every command
type Inputs struct {
	TemplatePath string
	// VarsPath may be empty, giving an empty context
	VarsPath string
	BaseDir  string

	// Config defaults to config.Default()
	Config *config.Config
	// Filters defaults to render.DefaultFilters()
	Filters render.Filters
	// FS is what audits observe. Defaults to the OS filesystem.
	FS types.FS
}

func (in Inputs) config() *config.Config {
	if in.Config != nil {
		return in.Config
	}
	return config.Default()
}

func (in Inputs) fs() types.FS {
	if in.FS != nil {
		return in.FS
	}
	return filesystem.NewOS()
}

// Prepared is a loaded template with its context and plan
type Prepared struct {
	Template *types.Template
	Context  types.Context
	BaseDir  string
	Plan     *types.BuildPlan
}

// Make loads the inputs, requires every referenced variable and builds the
// plan. It never touches the base directory.
func Make(in Inputs) (*Prepared, error) {
	log := logging.GetLogger("commands")

	tpl, ctx, err := load(in)
	if err != nil {
		return nil, err
	}
	if err := validator.RequireVars(tpl, ctx); err != nil {
		return nil, err
	}

	base, err := absBase(in.BaseDir)
	if err != nil {
		return nil, err
	}

	opts := in.config().PlanOptions()
	opts.Filters = in.Filters
	p, err := plan.NewBuilder(opts).Build(tpl, base, ctx)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("template", in.TemplatePath).
		Str("base", base).
		Int("items", p.Len()).
		Msg("Plan prepared")

	return &Prepared{Template: tpl, Context: ctx, BaseDir: base, Plan: p}, nil
}

func load(in Inputs) (*types.Template, types.Context, error) {
	if in.TemplatePath == "" {
		return nil, nil, errors.New(errors.ErrInvalidInput, "template path is required")
	}
	tpl, err := template.LoadTemplate(in.TemplatePath)
	if err != nil {
		return nil, nil, err
	}

	ctx := types.Context{}
	if in.VarsPath != "" {
		ctx, err = template.LoadContext(in.VarsPath)
		if err != nil {
			return nil, nil, err
		}
	}
	return tpl, ctx, nil
}

func absBase(dir string) (string, error) {
	if dir == "" {
		return "", errors.New(errors.ErrInvalidInput, "base directory is required")
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "cannot resolve base directory %s", dir)
	}
	return abs, nil
}

// runAudit runs the auditor over a prepared plan
func (p *Prepared) runAudit(in Inputs) (*types.AuditReport, error) {
	return audit.NewAuditor(in.fs()).Audit(p.Plan, p.BaseDir, in.config().AuditOptions())
}

// UnusedVars lists context keys the template never references
func (p *Prepared) UnusedVars() []string {
	return validator.FindUnused(p.Template, p.Context)
}
