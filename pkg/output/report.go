package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/arthur-debert/foldergen/pkg/errors"
	"github.com/arthur-debert/foldergen/pkg/types"
)

// Section names one part of a check report
type Section string

const (
	SectionDuplicate  Section = "duplicate"
	SectionOutside    Section = "outside"
	SectionName       Section = "name"
	SectionMissing    Section = "missing"
	SectionConflict   Section = "conflict"
	SectionExisting   Section = "existing"
	SectionExtra      Section = "extra"
	SectionPermission Section = "permission"
)

// Sections lists every report section in print order
func Sections() []Section {
	return []Section{
		SectionDuplicate, SectionOutside, SectionName, SectionMissing,
		SectionConflict, SectionExisting, SectionExtra, SectionPermission,
	}
}

var sectionAliases = map[string]Section{
	"duplicates":  SectionDuplicate,
	"conflicts":   SectionConflict,
	"extras":      SectionExtra,
	"permissions": SectionPermission,
	"names":       SectionName,
}

// TableLimit caps the existing and extra listings of the table view
const TableLimit = 10

// SectionFilter selects report sections. A nil filter selects all.
type SectionFilter map[Section]bool

// ParseSectionFilter parses a comma separated list such as "missing,conflict"
func ParseSectionFilter(s string) (SectionFilter, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	known := make(map[Section]bool)
	for _, sec := range Sections() {
		known[sec] = true
	}

	f := make(SectionFilter)
	for _, part := range strings.Split(s, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		sec := Section(name)
		if alias, ok := sectionAliases[name]; ok {
			sec = alias
		}
		if !known[sec] {
			return nil, errors.Newf(errors.ErrInvalidInput, "unknown report section: %s", part).
				WithDetail("section", part)
		}
		f[sec] = true
	}
	return f, nil
}

// Has reports whether sec is selected
func (f SectionFilter) Has(sec Section) bool {
	return f == nil || f[sec]
}

// Names returns the selected sections, sorted
func (f SectionFilter) Names() []string {
	var names []string
	for sec := range f {
		names = append(names, string(sec))
	}
	sort.Strings(names)
	return names
}

// FilterReport returns a copy of r with unselected sections emptied.
// Planned paths and the base dir are always kept.
func FilterReport(r *types.AuditReport, f SectionFilter) *types.AuditReport {
	out := *r
	if !f.Has(SectionDuplicate) {
		out.DuplicatePlannedPaths = []string{}
	}
	if !f.Has(SectionOutside) {
		out.OutsideBaseIssues = []string{}
	}
	if !f.Has(SectionName) {
		out.NameIssues = []types.NameIssue{}
	}
	if !f.Has(SectionMissing) {
		out.MissingDirs = []string{}
		out.MissingFiles = []string{}
	}
	if !f.Has(SectionConflict) {
		out.Conflicts = []types.ConflictItem{}
	}
	if !f.Has(SectionExisting) {
		out.ExistingDirs = []string{}
		out.ExistingFiles = []string{}
	}
	if !f.Has(SectionExtra) {
		out.ExtraDirs = []string{}
		out.ExtraFiles = []string{}
	}
	if !f.Has(SectionPermission) {
		out.PermissionIssues = []string{}
	}
	return &out
}

// ReportOptions configures WriteReportTable
type ReportOptions struct {
	Filter SectionFilter
	Styles *Styles
}

// WriteReportTable prints a condensed, sectioned report. Sections that are
// usually empty are only printed when they have entries; listings of
// existing and extra paths are capped at TableLimit.
func WriteReportTable(w io.Writer, r *types.AuditReport, opts ReportOptions) error {
	if opts.Styles == nil {
		opts.Styles = PlainStyles()
	}
	p := &tablePrinter{w: w, styles: opts.Styles}

	p.header("Planned")
	p.line(fmt.Sprintf("dirs=%d, files=%d", len(r.PlannedDirs), len(r.PlannedFiles)))

	f := opts.Filter
	if f.Has(SectionDuplicate) && len(r.DuplicatePlannedPaths) > 0 {
		p.header("Duplicate Planned Paths")
		p.lines(r.DuplicatePlannedPaths)
	}
	if f.Has(SectionOutside) && len(r.OutsideBaseIssues) > 0 {
		p.header("Outside Base Issues")
		p.lines(r.OutsideBaseIssues)
	}
	if f.Has(SectionName) && len(r.NameIssues) > 0 {
		p.header("Name Issues")
		for _, ni := range r.NameIssues {
			p.line(fmt.Sprintf("%s  -> %s", ni.Path, ni.Reason))
		}
	}
	if f.Has(SectionMissing) {
		p.header("Missing")
		p.kinded(r.MissingDirs, r.MissingFiles, "Missing", 0)
	}
	if f.Has(SectionConflict) {
		p.header("Conflicts (type mismatch)")
		for _, c := range r.Conflicts {
			p.line(opts.Styles.Render("Conflict",
				fmt.Sprintf("%s  expected=%s  found=%s", c.Path, c.Expected, c.Found)))
		}
	}
	if f.Has(SectionExisting) {
		p.header("Existing (as planned)")
		p.kinded(r.ExistingDirs, r.ExistingFiles, "Existing", TableLimit)
	}
	if f.Has(SectionExtra) {
		p.header("Extras on Disk")
		p.kinded(r.ExtraDirs, r.ExtraFiles, "Muted", TableLimit)
	}
	if f.Has(SectionPermission) && len(r.PermissionIssues) > 0 {
		p.header("Permission Issues")
		p.lines(r.PermissionIssues)
	}
	return p.err
}

type tablePrinter struct {
	w      io.Writer
	styles *Styles
	err    error
}

func (p *tablePrinter) line(s string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, s)
}

func (p *tablePrinter) lines(items []string) {
	for _, s := range items {
		p.line(s)
	}
}

func (p *tablePrinter) header(title string) {
	p.line("\n" + p.styles.Render("Header", "== "+title+" =="))
}

// kinded prints dirs then files with their kind prefix. A positive limit
// caps each list and adds a hint when anything was left out.
func (p *tablePrinter) kinded(dirs, files []string, style string, limit int) {
	truncated := false
	show := func(items []string, prefix string) {
		if limit > 0 && len(items) > limit {
			items = items[:limit]
			truncated = true
		}
		for _, s := range items {
			p.line(prefix + p.styles.Render(style, s))
		}
	}
	show(dirs, "[dir ] ")
	show(files, "[file] ")
	if truncated {
		p.line(p.styles.Render("Muted", "... (use --format json to see all)"))
	}
}
