package plan

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/foldergen/pkg/types"
)

// SortMode orders tree children
type SortMode string

const (
	// SortTemplate keeps the order in which paths appear in the plan
	SortTemplate SortMode = "template"
	// SortAlpha puts directories first, then orders by case-insensitive name
	SortAlpha SortMode = "alpha"
)

// RootLabel names the tree root when paths are not relativized
const RootLabel = "<root>"

// TreeNode is one directory or file of a plan tree
type TreeNode struct {
	Name     string         `json:"name" yaml:"name"`
	Type     types.ItemKind `json:"type" yaml:"type"`
	Status   types.Status   `json:"status,omitempty" yaml:"status,omitempty"`
	Issues   []string       `json:"issues,omitempty" yaml:"issues,omitempty"`
	Children []*TreeNode    `json:"children" yaml:"children"`

	index map[string]*TreeNode
}

// TreeOptions configures ToTree
type TreeOptions struct {
	BaseDir      string
	Relative     bool
	IncludeFiles bool
	Sort         SortMode
	// Status, when set, annotates nodes that correspond to plan items
	Status *types.StatusIndex
}

func newTreeNode(name string, kind types.ItemKind) *TreeNode {
	return &TreeNode{Name: name, Type: kind, Children: []*TreeNode{}}
}

func (n *TreeNode) child(name string, kind types.ItemKind) *TreeNode {
	key := string(kind) + "\x00" + name
	if c, ok := n.index[key]; ok {
		return c
	}
	if n.index == nil {
		n.index = make(map[string]*TreeNode)
	}
	c := newTreeNode(name, kind)
	n.index[key] = c
	n.Children = append(n.Children, c)
	return c
}

// Walk visits the node and its descendants pre-order with their depth
func (n *TreeNode) Walk(fn func(node *TreeNode, depth int)) {
	n.walk(fn, 0)
}

func (n *TreeNode) walk(fn func(*TreeNode, int), depth int) {
	fn(n, depth)
	for _, c := range n.Children {
		c.walk(fn, depth+1)
	}
}

// ToTree groups plan paths by segment. All directories are inserted before
// any file so a file never creates a directory node ahead of its planned
// position.
func ToTree(p *types.BuildPlan, opts TreeOptions) *TreeNode {
	relative := opts.Relative && opts.BaseDir != ""
	rootName := RootLabel
	if relative {
		rootName = ""
	}
	root := newTreeNode(rootName, types.KindDir)

	insert := func(item types.PlanItem) {
		display := item.Path
		if relative {
			display = RelativePath(item.Path, opts.BaseDir)
		}
		parts := splitPath(display)
		if len(parts) == 0 {
			return
		}
		parent := root
		for _, part := range parts[:len(parts)-1] {
			parent = parent.child(part, types.KindDir)
		}
		leaf := parent.child(parts[len(parts)-1], item.Kind)
		if opts.Status != nil {
			status, issues, _ := opts.Status.Lookup(item.Path)
			leaf.Status = status
			leaf.Issues = issues
		}
	}

	for _, item := range p.Items {
		if item.Kind == types.KindDir {
			insert(item)
		}
	}
	if opts.IncludeFiles {
		for _, item := range p.Items {
			if item.Kind == types.KindFile {
				insert(item)
			}
		}
	}

	if opts.Sort == SortAlpha {
		sortAlpha(root)
	}
	return root
}

func sortAlpha(n *TreeNode) {
	sort.SliceStable(n.Children, func(i, j int) bool {
		a, b := n.Children[i], n.Children[j]
		aDir, bDir := a.Type == types.KindDir, b.Type == types.KindDir
		if aDir != bDir {
			return aDir
		}
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	})
	for _, c := range n.Children {
		if c.Type == types.KindDir {
			sortAlpha(c)
		}
	}
}

// splitPath splits p into segments. An absolute path keeps its root
// ("/" or a volume like `C:\`) as the first segment.
func splitPath(p string) []string {
	var parts []string
	vol := filepath.VolumeName(p)
	rest := p[len(vol):]
	if strings.HasPrefix(rest, string(filepath.Separator)) || strings.HasPrefix(rest, "/") {
		parts = append(parts, vol+string(filepath.Separator))
		rest = rest[1:]
	} else if vol != "" {
		parts = append(parts, vol)
	}
	for _, seg := range strings.FieldsFunc(rest, func(r rune) bool {
		return r == filepath.Separator || r == '/'
	}) {
		if seg == "." {
			continue
		}
		parts = append(parts, seg)
	}
	return parts
}
