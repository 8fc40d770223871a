// pkg/plan/builder_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test template expansion into ordered build plans

package plan

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/foldergen/pkg/errors"
	"github.com/arthur-debert/foldergen/pkg/render"
	"github.com/arthur-debert/foldergen/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func p(s string) string { return filepath.FromSlash(s) }

func dir(path string) types.PlanItem  { return types.PlanItem{Kind: types.KindDir, Path: p(path)} }
func file(path string) types.PlanItem { return types.PlanItem{Kind: types.KindFile, Path: p(path)} }

func TestBuildEndToEnd(t *testing.T) {
	tpl := &types.Template{Dirs: []types.TemplateNode{
		{Name: "proj", Dirs: []types.TemplateNode{{Name: "src", Files: []string{"main.{ext}"}}}},
	}}

	plan, err := NewBuilder(Options{}).Build(tpl, p("/tmp/x"), types.Context{"ext": "py"})
	require.NoError(t, err)

	assert.Equal(t, []types.PlanItem{
		dir("/tmp/x/proj"),
		dir("/tmp/x/proj/src"),
		file("/tmp/x/proj/src/main.py"),
	}, plan.Items)
}

func TestBuildOrdering(t *testing.T) {
	tpl := &types.Template{Dirs: []types.TemplateNode{
		{
			Name:  "r{{int:start=1;stop=2}}",
			Files: []string{"f{{alpha:start=a;stop=b}}"},
			Dirs:  []types.TemplateNode{{Name: "c", Files: []string{"x"}}},
		},
		{Name: "s"},
	}}

	plan, err := NewBuilder(Options{}).Build(tpl, p("/b"), types.Context{})
	require.NoError(t, err)

	assert.Equal(t, []types.PlanItem{
		dir("/b/r1"), file("/b/r1/fa"), file("/b/r1/fb"), dir("/b/r1/c"), file("/b/r1/c/x"),
		dir("/b/r2"), file("/b/r2/fa"), file("/b/r2/fb"), dir("/b/r2/c"), file("/b/r2/c/x"),
		dir("/b/s"),
	}, plan.Items)
}

func TestBuildPassThroughNode(t *testing.T) {
	tpl := &types.Template{Dirs: []types.TemplateNode{
		{Name: "", Files: []string{"top.txt"}, Dirs: []types.TemplateNode{{Name: "inner"}}},
	}}

	plan, err := NewBuilder(Options{}).Build(tpl, p("/b"), nil)
	require.NoError(t, err)
	assert.Equal(t, []types.PlanItem{file("/b/top.txt"), dir("/b/inner")}, plan.Items)
}

func TestBuildRenderedEmptyNameIsPassThrough(t *testing.T) {
	tpl := &types.Template{Dirs: []types.TemplateNode{{Name: "{group}", Files: []string{"a"}}}}

	plan, err := NewBuilder(Options{}).Build(tpl, p("/b"), types.Context{"group": ""})
	require.NoError(t, err)
	assert.Equal(t, []types.PlanItem{file("/b/a")}, plan.Items)
}

func TestBuildGeneratorWithMissingVariable(t *testing.T) {
	tpl := &types.Template{Dirs: []types.TemplateNode{
		{Name: "{{int:start=1;stop=2}}"},
		{Name: "", Files: []string{"{missing_key}.txt"}},
	}}

	_, err := NewBuilder(Options{}).Build(tpl, p("/b"), types.Context{})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrVariableMissing))
	assert.Contains(t, err.Error(), "missing_key")

	tpl.Dirs = tpl.Dirs[:1]
	plan, err := NewBuilder(Options{}).Build(tpl, p("/b"), types.Context{})
	require.NoError(t, err)
	assert.Equal(t, []types.PlanItem{dir("/b/1"), dir("/b/2")}, plan.Items)
}

func TestBuildPropagatesSyntaxErrors(t *testing.T) {
	tpl := &types.Template{Dirs: []types.TemplateNode{{Name: "a", Files: []string{"{{int:start=1;stop=2;step=0}}"}}}}

	_, err := NewBuilder(Options{}).Build(tpl, p("/b"), nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrGeneratorSyntax))
}

func TestBuildIsIdempotent(t *testing.T) {
	tpl := &types.Template{Dirs: []types.TemplateNode{
		{Name: "{p|slug}_{{date:start=2024-01-01;stop=2024-03-01;step=1m;fmt=%m}}", Files: []string{"{{enum:items=a,b}}.md"}},
	}}
	ctx := types.Context{"p": "My Proj"}

	b := NewBuilder(Options{})
	first, err := b.Build(tpl, p("/b"), ctx)
	require.NoError(t, err)
	second, err := b.Build(tpl, p("/b"), ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 9, first.Len())
	assert.Equal(t, p("/b/my_proj_01"), first.Items[0].Path)
}

func TestGuard(t *testing.T) {
	tests := []struct {
		name    string
		node    types.TemplateNode
		limit   int
		wantErr bool
	}{
		{
			name:  "within limit",
			node:  types.TemplateNode{Name: "{{int:start=1;stop=10}}", Files: []string{"{{int:start=1;stop=10}}"}},
			limit: 100,
		},
		{
			name:    "name times files over limit",
			node:    types.TemplateNode{Name: "{{int:start=1;stop=10}}", Files: []string{"{{int:start=1;stop=11}}"}},
			limit:   100,
			wantErr: true,
		},
		{
			name:    "files alone over limit",
			node:    types.TemplateNode{Files: []string{"{{int:start=1;stop=20}}", "{{alpha:start=a;stop=z}}"}},
			limit:   100,
			wantErr: true,
		},
		{
			name:  "plain files count once",
			node:  types.TemplateNode{Name: "{{int:start=1;stop=5}}", Files: []string{"a", "b", "c"}},
			limit: 5,
		},
		{
			name:    "product that would wrap around",
			node:    types.TemplateNode{Name: "{{int:start=1;stop=2}}", Files: []string{"{{int:start=0;stop=4611686018427387904}}"}},
			limit:   10,
			wantErr: true,
		},
		{
			name:    "full int range",
			node:    types.TemplateNode{Name: "{{int:start=-9223372036854775808;stop=9223372036854775807}}"},
			limit:   10,
			wantErr: true,
		},
		{
			name:    "name alone over limit",
			node:    types.TemplateNode{Name: "{{int:start=1;stop=1000}}{{int:start=1;stop=1000}}{{int:start=1;stop=1000}}"},
			limit:   DefaultMaxExpand,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder(Options{MaxExpand: tt.limit})
			err := b.guard(&tt.node)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrExpansionTooLarge))
			assert.Contains(t, err.Error(), "> limit")
			assert.Equal(t, tt.node.Name, errors.GetErrorDetails(err)["node"])
		})
	}
}

func TestGuardFailsBeforeEmittingNode(t *testing.T) {
	tpl := &types.Template{Dirs: []types.TemplateNode{
		{Name: "ok", Dirs: []types.TemplateNode{
			{Name: "big_{{int:start=1;stop=50}}", Files: []string{"{{int:start=1;stop=50}}"}},
		}},
	}}

	plan, err := NewBuilder(Options{MaxExpand: 100}).Build(tpl, p("/b"), nil)
	require.Error(t, err)
	assert.Nil(t, plan)
	assert.Contains(t, err.Error(), "estimated 2500 > limit 100")
	assert.Contains(t, err.Error(), "name='big_{{int:start=1;stop=50}}'")
}

func TestBuildRejectsOverflowingEstimate(t *testing.T) {
	tpl := &types.Template{Dirs: []types.TemplateNode{
		{Name: "{{int:start=1;stop=2}}", Files: []string{"{{int:start=0;stop=4611686018427387904}}"}},
	}}

	var plan *types.BuildPlan
	var err error
	require.NotPanics(t, func() {
		plan, err = NewBuilder(Options{MaxExpand: 10}).Build(tpl, p("/b"), nil)
	})
	require.Error(t, err)
	assert.Nil(t, plan)
	assert.True(t, errors.IsErrorCode(err, errors.ErrExpansionTooLarge))
}

func TestStrictPaths(t *testing.T) {
	tpl := &types.Template{Dirs: []types.TemplateNode{{Name: "{v}"}}}

	for _, v := range []string{"../escape", "a/b", ".."} {
		t.Run(v, func(t *testing.T) {
			_, err := NewBuilder(Options{StrictPaths: true}).Build(tpl, p("/b"), types.Context{"v": v})
			assert.True(t, errors.IsErrorCode(err, errors.ErrUnsafePath))

			_, err = NewBuilder(Options{}).Build(tpl, p("/b"), types.Context{"v": v})
			assert.NoError(t, err)
		})
	}
}

func TestBuildCustomFilters(t *testing.T) {
	filters := render.DefaultFilters()
	filters.Register("upper", func(v interface{}, _ ...interface{}) (interface{}, error) {
		return strings.ToUpper(render.ToString(v)), nil
	})
	tpl := &types.Template{Dirs: []types.TemplateNode{{Name: "{n|upper}"}}}

	plan, err := NewBuilder(Options{Filters: filters}).Build(tpl, p("/b"), types.Context{"n": "abc"})
	require.NoError(t, err)
	assert.Equal(t, []types.PlanItem{dir("/b/ABC")}, plan.Items)
}
