// pkg/commands/commands_test.go
// TEST TYPE: Integration Tests
// DEPENDENCIES: real filesystem under t.TempDir(), afero
// PURPOSE: Test the command API end to end

package commands

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/foldergen/pkg/config"
	"github.com/arthur-debert/foldergen/pkg/errors"
	"github.com/arthur-debert/foldergen/pkg/filesystem"
	"github.com/arthur-debert/foldergen/pkg/plan"
	"github.com/arthur-debert/foldergen/pkg/testutil"
	"github.com/arthur-debert/foldergen/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (Inputs, string) {
	t.Helper()
	dir := t.TempDir()
	tpl, vars := testutil.WriteInputs(t, dir, testutil.ProjectTemplate, testutil.ProjectVars)
	base := filepath.Join(dir, "out")
	return Inputs{TemplatePath: tpl, VarsPath: vars, BaseDir: base, Config: config.Default()}, base
}

func rel(parts ...string) string {
	return filepath.Join(parts...)
}

func TestMakeBuildsPlan(t *testing.T) {
	in, base := setup(t)

	prep, err := Make(in)
	require.NoError(t, err)

	assert.Equal(t, base, prep.BaseDir)
	assert.Len(t, prep.Plan.Dirs(), 7)
	assert.Len(t, prep.Plan.Files(), 12)
	assert.Equal(t, types.PlanItem{Kind: types.KindDir, Path: filepath.Join(base, "demo")}, prep.Plan.Items[0])
	assert.Contains(t, prep.Plan.Dirs(), filepath.Join(base, "demo", "hello_world"))
	assert.Contains(t, prep.Plan.Files(), filepath.Join(base, "demo", "prod", "2024-02.log"))

	// planning never touches the base directory
	testutil.AssertNoFile(t, base)
}

func TestMakeErrors(t *testing.T) {
	t.Run("missing_variable_before_any_write", func(t *testing.T) {
		in, base := setup(t)
		in.VarsPath = testutil.CreateFile(t, t.TempDir(), "vars.json", `{"project": "demo"}`)

		_, err := Build(context.Background(), BuildOptions{Inputs: in})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrVariableMissing))
		assert.Contains(t, err.Error(), "title")
		testutil.AssertNoFile(t, base)
	})

	t.Run("no_template", func(t *testing.T) {
		_, err := Make(Inputs{BaseDir: t.TempDir()})
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("no_base", func(t *testing.T) {
		in, _ := setup(t)
		in.BaseDir = ""
		_, err := Make(in)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("expansion_guard_from_config", func(t *testing.T) {
		in, _ := setup(t)
		cfg := config.Default()
		cfg.Expand.MaxExpand = 2
		in.Config = cfg

		_, err := Make(in)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrExpansionTooLarge))
	})

	t.Run("template_not_found", func(t *testing.T) {
		in, _ := setup(t)
		in.TemplatePath = filepath.Join(t.TempDir(), "nope.json")
		_, err := Make(in)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound))
	})
}

func TestMakeFromYAML(t *testing.T) {
	dir := t.TempDir()
	tpl := testutil.CreateFile(t, dir, "template.yaml", `
dirs:
  - name: "{name}"
    files: ["a.txt"]
`)
	vars := testutil.CreateFile(t, dir, "vars.yml", "name: box\n")

	prep, err := Make(Inputs{TemplatePath: tpl, VarsPath: vars, BaseDir: dir})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "box")}, prep.Plan.Dirs())
	assert.Equal(t, []string{filepath.Join(dir, "box", "a.txt")}, prep.Plan.Files())
}

func TestPlan(t *testing.T) {
	in, _ := setup(t)
	in.VarsPath = testutil.CreateFile(t, t.TempDir(), "vars.json",
		`{"project": "demo", "title": "Hello World", "extra": 1}`)

	res, err := Plan(PlanOptions{Inputs: in, Relative: true})
	require.NoError(t, err)

	require.Len(t, res.Manifest, 19)
	assert.Equal(t, plan.ManifestEntry{Type: types.KindDir, Path: "demo"}, res.Manifest[0])
	assert.Equal(t, plan.ManifestEntry{Type: types.KindFile, Path: rel("demo", "README.md")}, res.Manifest[1])
	assert.Equal(t, plan.ManifestEntry{Type: types.KindDir, Path: rel("demo", "src")}, res.Manifest[2])
	assert.Equal(t, []string{"extra"}, res.UnusedVars)
	assert.Nil(t, res.Report)
}

func TestPlanWithStatus(t *testing.T) {
	in, base := setup(t)
	testutil.CreateFile(t, base, rel("demo", "README.md"), "keep")
	testutil.CreateFile(t, base, rel("demo", "src"), "not a dir")

	res, err := Plan(PlanOptions{Inputs: in, Relative: true, WithStatus: true})
	require.NoError(t, err)
	require.NotNil(t, res.Report)

	byPath := map[string]plan.ManifestEntry{}
	for _, e := range res.Manifest {
		byPath[e.Path] = e
	}
	assert.Equal(t, types.StatusExisting, byPath["demo"].Status)
	assert.Equal(t, types.StatusExisting, byPath[rel("demo", "README.md")].Status)
	assert.Equal(t, types.StatusConflict, byPath[rel("demo", "src")].Status)
	assert.Equal(t, types.StatusMissing, byPath[rel("demo", "part01")].Status)
}

func TestSimulate(t *testing.T) {
	in, base := setup(t)

	var out bytes.Buffer
	res, err := Simulate(SimulateOptions{Inputs: in, Out: &out})
	require.NoError(t, err)
	assert.Equal(t, 7, res.Dirs)
	assert.Equal(t, 12, res.Files)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 19)
	for i, line := range lines {
		if i < 7 {
			assert.True(t, strings.HasPrefix(line, "[dir ] "), line)
		} else {
			assert.True(t, strings.HasPrefix(line, "[file] "), line)
		}
	}
	assert.Equal(t, "[dir ] "+filepath.Join(base, "demo"), lines[0])
	testutil.AssertNoFile(t, base)

	out.Reset()
	_, err = Simulate(SimulateOptions{Inputs: in, Out: &out, Quiet: true})
	require.NoError(t, err)
	assert.Empty(t, out.String())
}

func TestBuild(t *testing.T) {
	in, base := setup(t)
	readme := filepath.Join(base, "demo", "README.md")

	t.Run("declined", func(t *testing.T) {
		asked := 0
		_, err := Build(context.Background(), BuildOptions{
			Inputs: in,
			Confirm: func(total int) (bool, error) {
				asked = total
				return false, nil
			},
		})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrCancelled))
		assert.Equal(t, 19, asked)
		testutil.AssertNoFile(t, base)
	})

	t.Run("applies", func(t *testing.T) {
		var out bytes.Buffer
		res, err := Build(context.Background(), BuildOptions{
			Inputs:  in,
			Out:     &out,
			Confirm: func(int) (bool, error) { return true, nil },
		})
		require.NoError(t, err)
		assert.Equal(t, 7, res.Dirs)
		assert.Len(t, res.Created, 12)
		assert.True(t, testutil.DirExists(t, filepath.Join(base, "demo", "part02")))
		assert.True(t, testutil.FileExists(t, filepath.Join(base, "demo", "dev", "2024-03.log")))
		assert.Contains(t, out.String(), "[file] "+readme)
	})

	t.Run("idempotent_and_never_truncates", func(t *testing.T) {
		testutil.CreateFile(t, filepath.Dir(readme), "README.md", "hand written")

		res, err := Build(context.Background(), BuildOptions{Inputs: in})
		require.NoError(t, err)
		assert.Empty(t, res.Created)
		assert.Len(t, res.Kept, 12)
		assert.Equal(t, "hand written", testutil.ReadFile(t, readme))
	})

	t.Run("check_after_build_is_clean", func(t *testing.T) {
		report, err := Check(CheckOptions{Inputs: in})
		require.NoError(t, err)
		assert.Empty(t, report.MissingDirs)
		assert.Empty(t, report.MissingFiles)
		assert.Len(t, report.ExistingFiles, 12)
		assert.Equal(t, ExitOK, CheckExitCode(report, true))
	})
}

func TestCheck(t *testing.T) {
	in, base := setup(t)
	testutil.CreateDir(t, base, rel("demo", "src"))
	testutil.CreateFile(t, base, "stray.txt", "")

	report, err := Check(CheckOptions{Inputs: in})
	require.NoError(t, err)

	assert.Equal(t, base, report.BaseDir)
	assert.Contains(t, report.ExistingDirs, filepath.Join(base, "demo", "src"))
	assert.Contains(t, report.MissingFiles, filepath.Join(base, "demo", "src", "main.go"))
	assert.Equal(t, []string{filepath.Join(base, "stray.txt")}, report.ExtraFiles)

	assert.Equal(t, ExitProblems, CheckExitCode(report, true))
	assert.Equal(t, ExitOK, CheckExitCode(report, false))
}

func TestCheckOnMemoryFS(t *testing.T) {
	dir := t.TempDir()
	tpl, vars := testutil.WriteInputs(t, dir, `{"dirs": [{"name": "a", "files": ["x"]}, {"name": "b"}]}`, `{}`)
	base := filepath.Join(dir, "mem")

	fs := testutil.MemoryTree(t, filepath.Join(base, "a")+"/", filepath.Join(base, "b"))
	report, err := Check(CheckOptions{Inputs: Inputs{
		TemplatePath: tpl,
		VarsPath:     vars,
		BaseDir:      base,
		FS:           filesystem.NewAferoFS(fs),
	}})
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(base, "a")}, report.ExistingDirs)
	assert.Equal(t, []string{filepath.Join(base, "a", "x")}, report.MissingFiles)
	require.Len(t, report.Conflicts, 1)
	assert.Equal(t, types.KindDir, report.Conflicts[0].Expected)
	assert.Equal(t, types.KindFile, report.Conflicts[0].Found)
}

func TestTree(t *testing.T) {
	in, base := setup(t)
	testutil.CreateDir(t, base, "demo")

	root, err := Tree(TreeOptions{Inputs: in, Relative: true, IncludeFiles: false, WithStatus: true})
	require.NoError(t, err)

	assert.Equal(t, "", root.Name)
	require.Len(t, root.Children, 1)
	demo := root.Children[0]
	assert.Equal(t, "demo", demo.Name)
	assert.Equal(t, types.StatusExisting, demo.Status)

	var names []string
	for _, c := range demo.Children {
		names = append(names, c.Name)
		assert.Equal(t, types.KindDir, c.Type)
		assert.Equal(t, types.StatusMissing, c.Status)
	}
	assert.Equal(t, []string{"src", "part01", "part02", "dev", "prod", "hello_world"}, names)

	alpha, err := Tree(TreeOptions{Inputs: in, Relative: true, Sort: plan.SortAlpha})
	require.NoError(t, err)
	names = nil
	for _, c := range alpha.Children[0].Children {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"dev", "hello_world", "part01", "part02", "prod", "src"}, names)
}

func TestVars(t *testing.T) {
	dir := t.TempDir()
	tpl, vars := testutil.WriteInputs(t, dir, testutil.ProjectTemplate, `{"project": "demo", "unused": true}`)

	res, err := Vars(VarsOptions{TemplatePath: tpl, VarsPath: vars})
	require.NoError(t, err)
	assert.Equal(t, []string{"project", "title"}, res.Used)
	assert.Equal(t, []string{"title"}, res.Missing)
	assert.Equal(t, []string{"unused"}, res.Unused)

	res, err = Vars(VarsOptions{TemplatePath: tpl})
	require.NoError(t, err)
	assert.Equal(t, []string{"project", "title"}, res.Missing)
	assert.Equal(t, []string{}, res.Unused)
}
