package plan

import (
	"github.com/arthur-debert/foldergen/pkg/types"
)

// ManifestEntry is one exported plan item
type ManifestEntry struct {
	Type   types.ItemKind `json:"type" yaml:"type"`
	Path   string         `json:"path" yaml:"path"`
	Status types.Status   `json:"status,omitempty" yaml:"status,omitempty"`
	Issues []string       `json:"issues,omitempty" yaml:"issues,omitempty"`
}

// ManifestOptions configures ToManifest
type ManifestOptions struct {
	BaseDir  string
	Relative bool
	// Status, when set, adds a status to every entry and issues where known
	Status *types.StatusIndex
}

// ToManifest lists plan items in plan order
func ToManifest(p *types.BuildPlan, opts ManifestOptions) []ManifestEntry {
	out := make([]ManifestEntry, 0, len(p.Items))
	for _, item := range p.Items {
		entry := ManifestEntry{Type: item.Kind, Path: item.Path}
		if opts.Relative && opts.BaseDir != "" {
			entry.Path = RelativePath(item.Path, opts.BaseDir)
		}
		if opts.Status != nil {
			status, issues, _ := opts.Status.Lookup(item.Path)
			entry.Status = status
			entry.Issues = issues
		}
		out = append(out, entry)
	}
	return out
}
