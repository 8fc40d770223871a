package types

// ConflictItem records a planned path whose on-disk kind differs from the plan
type ConflictItem struct {
	Path     string   `json:"path" yaml:"path"`
	Expected ItemKind `json:"expected" yaml:"expected"`
	Found    ItemKind `json:"found" yaml:"found"`
}

// NameIssue is a portability or length violation for one planned path.
// Several violations on one component are joined with "; ".
type NameIssue struct {
	Path   string `json:"path" yaml:"path"`
	Reason string `json:"reason" yaml:"reason"`
}

// AuditReport is the result of reconciling a plan against a directory tree.
// Every list is sorted and deduplicated so reports can be diffed as text.
type AuditReport struct {
	BaseDir string `json:"base_dir" yaml:"base_dir"`

	PlannedDirs           []string `json:"planned_dirs" yaml:"planned_dirs"`
	PlannedFiles          []string `json:"planned_files" yaml:"planned_files"`
	DuplicatePlannedPaths []string `json:"duplicate_planned_paths" yaml:"duplicate_planned_paths"`

	MissingDirs   []string       `json:"missing_dirs" yaml:"missing_dirs"`
	MissingFiles  []string       `json:"missing_files" yaml:"missing_files"`
	ExistingDirs  []string       `json:"existing_dirs" yaml:"existing_dirs"`
	ExistingFiles []string       `json:"existing_files" yaml:"existing_files"`
	ExtraDirs     []string       `json:"extra_dirs" yaml:"extra_dirs"`
	ExtraFiles    []string       `json:"extra_files" yaml:"extra_files"`
	Conflicts     []ConflictItem `json:"conflicts" yaml:"conflicts"`

	PermissionIssues  []string    `json:"permission_issues" yaml:"permission_issues"`
	NameIssues        []NameIssue `json:"name_issues" yaml:"name_issues"`
	OutsideBaseIssues []string    `json:"outside_base_issues" yaml:"outside_base_issues"`
}

// HasProblems reports whether anything other than existing/extra entries was found
func (r *AuditReport) HasProblems() bool {
	return len(r.MissingDirs) > 0 ||
		len(r.MissingFiles) > 0 ||
		len(r.Conflicts) > 0 ||
		len(r.NameIssues) > 0 ||
		len(r.PermissionIssues) > 0 ||
		len(r.OutsideBaseIssues) > 0 ||
		len(r.DuplicatePlannedPaths) > 0
}
