package plan

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/foldergen/pkg/errors"
	"github.com/arthur-debert/foldergen/pkg/generator"
	"github.com/arthur-debert/foldergen/pkg/logging"
	"github.com/arthur-debert/foldergen/pkg/render"
	"github.com/arthur-debert/foldergen/pkg/types"
)

// DefaultMaxExpand is the per-node expansion limit used when none is set
const DefaultMaxExpand = 50_000

// Options configures a Builder
type Options struct {
	// MaxExpand bounds the estimated variants of one node (name x files)
	MaxExpand int
	// Filters is the registry used for placeholder rendering.
	// Nil means render.DefaultFilters().
	Filters render.Filters
	// StrictPaths rejects rendered names that are not a single path segment
	StrictPaths bool
}

// Builder expands templates into build plans
type Builder struct {
	opts     Options
	renderer *render.Renderer
}

// NewBuilder creates a builder
func NewBuilder(opts Options) *Builder {
	if opts.MaxExpand <= 0 {
		opts.MaxExpand = DefaultMaxExpand
	}
	return &Builder{
		opts:     opts,
		renderer: render.NewRenderer(opts.Filters),
	}
}

// Build expands t under baseDir. Generator, render and guard errors abort
// the build; no partial plan is returned.
func (b *Builder) Build(t *types.Template, baseDir string, ctx types.Context) (*types.BuildPlan, error) {
	logger := logging.GetLogger("plan")
	logger.Debug().
		Str("base", baseDir).
		Int("roots", len(t.Dirs)).
		Int("maxExpand", b.opts.MaxExpand).
		Msg("Building plan")

	items := []types.PlanItem{}
	for i := range t.Dirs {
		sub, err := b.walk(&t.Dirs[i], baseDir, ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, sub...)
	}

	logger.Debug().Int("items", len(items)).Msg("Plan built")
	return &types.BuildPlan{Items: items}, nil
}

// walk returns the items of node and its subtree rooted at cur
func (b *Builder) walk(node *types.TemplateNode, cur string, ctx types.Context) ([]types.PlanItem, error) {
	if err := b.guard(node); err != nil {
		return nil, err
	}

	variants := []string{""}
	if node.Name != "" {
		v, err := generator.Expand(node.Name)
		if err != nil {
			return nil, err
		}
		variants = v
	}

	var items []types.PlanItem
	for _, variant := range variants {
		dir := cur
		if variant != "" {
			name, err := b.renderName(variant, ctx)
			if err != nil {
				return nil, err
			}
			if name != "" {
				dir = filepath.Join(cur, name)
				items = append(items, types.PlanItem{Kind: types.KindDir, Path: dir})
			}
		}

		for _, f := range node.Files {
			fileVariants, err := generator.Expand(f)
			if err != nil {
				return nil, err
			}
			for _, fv := range fileVariants {
				name, err := b.renderName(fv, ctx)
				if err != nil {
					return nil, err
				}
				items = append(items, types.PlanItem{Kind: types.KindFile, Path: filepath.Join(dir, name)})
			}
		}

		for i := range node.Dirs {
			sub, err := b.walk(&node.Dirs[i], dir, ctx)
			if err != nil {
				return nil, err
			}
			items = append(items, sub...)
		}
	}
	return items, nil
}

func (b *Builder) renderName(s string, ctx types.Context) (string, error) {
	name, err := b.renderer.Render(s, ctx)
	if err != nil {
		if fe, ok := err.(*errors.FoldergenError); ok {
			fe.WithDetail("template", s)
		}
		return "", err
	}
	if b.opts.StrictPaths && !isSingleSegment(name) {
		return "", errors.Newf(errors.ErrUnsafePath, "rendered name %q is not a single path segment", name).
			WithDetail("template", s).
			WithDetail("name", name)
	}
	return name, nil
}

func isSingleSegment(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}
