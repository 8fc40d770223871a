package types

// ItemKind distinguishes directories from files in a plan
type ItemKind string

const (
	KindDir  ItemKind = "dir"
	KindFile ItemKind = "file"
)

// PlanItem is one (kind, path) entry of a build plan
type PlanItem struct {
	Kind ItemKind `json:"type" yaml:"type"`
	Path string   `json:"path" yaml:"path"`
}

// BuildPlan is the flat, ordered result of expanding a template.
// Items keep the depth-first, pre-order walk order.
type BuildPlan struct {
	Items []PlanItem `json:"items" yaml:"items"`
}

// Dirs returns the paths of all directory items, in plan order
func (p *BuildPlan) Dirs() []string {
	return p.pathsOf(KindDir)
}

// Files returns the paths of all file items, in plan order
func (p *BuildPlan) Files() []string {
	return p.pathsOf(KindFile)
}

func (p *BuildPlan) pathsOf(kind ItemKind) []string {
	out := make([]string, 0, len(p.Items))
	for _, item := range p.Items {
		if item.Kind == kind {
			out = append(out, item.Path)
		}
	}
	return out
}

// Len returns the number of items
func (p *BuildPlan) Len() int {
	return len(p.Items)
}
