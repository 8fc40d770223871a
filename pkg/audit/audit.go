package audit

import (
	"fmt"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/foldergen/pkg/logging"
	"github.com/arthur-debert/foldergen/pkg/types"
)

// DefaultMaxPathLen is used when Options.MaxPathLen is not positive
const DefaultMaxPathLen = 240

// Options configures an audit
type Options struct {
	FollowSymlinks bool
	MaxPathLen     int
	Portable       PortableMode
}

// Auditor compares plans with the tree seen through a types.FS
type Auditor struct {
	fs   types.FS
	goos string
}

// NewAuditor creates an auditor for the current host
func NewAuditor(fsys types.FS) *Auditor {
	return &Auditor{fs: fsys, goos: runtime.GOOS}
}

// Normalizer returns the path normalization used for hosts running goos
func Normalizer(goos string) func(string) string {
	if goos == "windows" {
		return func(p string) string { return strings.ToLower(filepath.Clean(p)) }
	}
	return filepath.Clean
}

// Audit reconciles plan with the directory tree under baseDir
func (a *Auditor) Audit(plan *types.BuildPlan, baseDir string, opts Options) (*types.AuditReport, error) {
	rules, err := SelectRules(opts.Portable, a.goos)
	if err != nil {
		return nil, err
	}
	maxLen := opts.MaxPathLen
	if maxLen <= 0 {
		maxLen = DefaultMaxPathLen
	}

	logger := logging.GetLogger("audit")
	logger.Debug().
		Str("base", baseDir).
		Int("items", plan.Len()).
		Str("portable", string(opts.Portable)).
		Bool("followSymlinks", opts.FollowSymlinks).
		Msg("Starting audit")
	defer logging.LogOperationStart(logger, "audit")()

	norm := Normalizer(a.goos)
	r := &types.AuditReport{BaseDir: baseDir}

	plannedDirs, plannedFiles, counts := gatherPlanned(plan, norm)
	r.PlannedDirs = sortedKeys(plannedDirs)
	r.PlannedFiles = sortedKeys(plannedFiles)
	for p, c := range counts {
		if c > 1 {
			r.DuplicatePlannedPaths = append(r.DuplicatePlannedPaths, p)
		}
	}

	allPlanned := union(plannedDirs, plannedFiles)
	allSorted := sortedKeys(allPlanned)

	resolver := newResolver(a.fs, norm)
	for _, p := range allSorted {
		if !resolver.inside(baseDir, p) {
			r.OutsideBaseIssues = append(r.OutsideBaseIssues, p)
		}
	}

	if rules != nil {
		r.NameIssues = append(r.NameIssues, checkNames(allSorted, rules)...)
	}
	r.NameIssues = append(r.NameIssues, checkLength(allSorted, maxLen)...)
	if rules != nil && rules.CaseInsensitive {
		r.NameIssues = append(r.NameIssues, caseCollisions(allSorted)...)
	}

	actualDirs, actualFiles, issues := a.scan(baseDir, opts.FollowSymlinks, norm)
	r.PermissionIssues = append(r.PermissionIssues, issues...)

	for _, d := range r.PlannedDirs {
		switch {
		case has(actualDirs, d):
			r.ExistingDirs = append(r.ExistingDirs, d)
		case has(actualFiles, d):
			r.Conflicts = append(r.Conflicts, types.ConflictItem{Path: d, Expected: types.KindDir, Found: types.KindFile})
		default:
			r.MissingDirs = append(r.MissingDirs, d)
		}
	}
	for _, f := range r.PlannedFiles {
		switch {
		case has(actualFiles, f):
			r.ExistingFiles = append(r.ExistingFiles, f)
		case has(actualDirs, f):
			r.Conflicts = append(r.Conflicts, types.ConflictItem{Path: f, Expected: types.KindFile, Found: types.KindDir})
		default:
			r.MissingFiles = append(r.MissingFiles, f)
		}
	}

	base := norm(baseDir)
	for d := range actualDirs {
		if !has(allPlanned, d) && d != base {
			r.ExtraDirs = append(r.ExtraDirs, d)
		}
	}
	for f := range actualFiles {
		if !has(allPlanned, f) {
			r.ExtraFiles = append(r.ExtraFiles, f)
		}
	}

	missing := make([]string, 0, len(r.MissingDirs)+len(r.MissingFiles))
	missing = append(append(missing, r.MissingDirs...), r.MissingFiles...)
	r.PermissionIssues = append(r.PermissionIssues, a.probeParents(missing)...)

	finalize(r)
	logger.Debug().
		Int("missing", len(r.MissingDirs)+len(r.MissingFiles)).
		Int("existing", len(r.ExistingDirs)+len(r.ExistingFiles)).
		Int("conflicts", len(r.Conflicts)).
		Int("extra", len(r.ExtraDirs)+len(r.ExtraFiles)).
		Int("nameIssues", len(r.NameIssues)).
		Msg("Audit complete")
	return r, nil
}

func gatherPlanned(plan *types.BuildPlan, norm func(string) string) (dirs, files map[string]struct{}, counts map[string]int) {
	dirs = map[string]struct{}{}
	files = map[string]struct{}{}
	counts = map[string]int{}
	for _, item := range plan.Items {
		p := norm(item.Path)
		counts[p]++
		switch item.Kind {
		case types.KindDir:
			dirs[p] = struct{}{}
		case types.KindFile:
			files[p] = struct{}{}
		}
	}
	return dirs, files, counts
}

// components yields the segments of p after its volume name
func components(p string) []string {
	rest := p[len(filepath.VolumeName(p)):]
	return strings.FieldsFunc(rest, func(r rune) bool {
		return r < utf8.RuneSelf && isSeparator(byte(r))
	})
}

func checkNames(paths []string, rules *NameRules) []types.NameIssue {
	var out []types.NameIssue
	for _, p := range paths {
		for _, comp := range components(p) {
			if reason := rules.CheckComponent(comp); reason != "" {
				out = append(out, types.NameIssue{Path: p, Reason: reason})
			}
		}
	}
	return out
}

func checkLength(paths []string, maxLen int) []types.NameIssue {
	var out []types.NameIssue
	for _, p := range paths {
		if utf8.RuneCountInString(p) > maxLen {
			out = append(out, types.NameIssue{Path: p, Reason: fmt.Sprintf("path too long (> %d)", maxLen)})
		}
	}
	return out
}

// caseCollisions reports every path whose case-folded form was already
// taken by an earlier path in sorted order
func caseCollisions(paths []string) []types.NameIssue {
	var out []types.NameIssue
	seen := map[string]string{}
	for _, p := range paths {
		key := strings.ToLower(p)
		if first, ok := seen[key]; ok && first != p {
			out = append(out, types.NameIssue{Path: p, Reason: "case-collision with " + first})
			continue
		}
		seen[key] = p
	}
	return out
}

// probeParents checks write access on the existing parent of each missing
// path. Probe failures are ignored.
func (a *Auditor) probeParents(missing []string) []string {
	var out []string
	checked := map[string]bool{}
	for _, p := range missing {
		parent := filepath.Dir(p)
		if checked[parent] {
			continue
		}
		checked[parent] = true

		info, err := a.fs.Stat(parent)
		if err != nil || !info.IsDir() {
			continue
		}
		ok, err := a.fs.Writable(parent)
		if err == nil && !ok {
			out = append(out, "no write permission to parent: "+parent)
		}
	}
	return out
}

func finalize(r *types.AuditReport) {
	for _, list := range []*[]string{
		&r.PlannedDirs, &r.PlannedFiles, &r.DuplicatePlannedPaths,
		&r.MissingDirs, &r.MissingFiles, &r.ExistingDirs, &r.ExistingFiles,
		&r.ExtraDirs, &r.ExtraFiles, &r.PermissionIssues, &r.OutsideBaseIssues,
	} {
		*list = sortUnique(*list)
	}

	if r.Conflicts == nil {
		r.Conflicts = []types.ConflictItem{}
	}
	sort.SliceStable(r.Conflicts, func(i, j int) bool { return r.Conflicts[i].Path < r.Conflicts[j].Path })

	seen := map[types.NameIssue]struct{}{}
	uniq := make([]types.NameIssue, 0, len(r.NameIssues))
	for _, ni := range r.NameIssues {
		if _, dup := seen[ni]; dup {
			continue
		}
		seen[ni] = struct{}{}
		uniq = append(uniq, ni)
	}
	sort.SliceStable(uniq, func(i, j int) bool {
		if uniq[i].Path != uniq[j].Path {
			return uniq[i].Path < uniq[j].Path
		}
		return uniq[i].Reason < uniq[j].Reason
	})
	r.NameIssues = uniq
}

func sortUnique(in []string) []string {
	if len(in) == 0 {
		return []string{}
	}
	sort.Strings(in)
	out := in[:1]
	for _, s := range in[1:] {
		if s != out[len(out)-1] {
			out = append(out, s)
		}
	}
	return out
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func union(a, b map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(a)+len(b))
	for k := range a {
		out[k] = struct{}{}
	}
	for k := range b {
		out[k] = struct{}{}
	}
	return out
}

func has(m map[string]struct{}, k string) bool {
	_, ok := m[k]
	return ok
}
