package output

import (
	"io"
	"strings"

	"github.com/arthur-debert/foldergen/pkg/plan"
	"github.com/arthur-debert/foldergen/pkg/types"
)

const (
	branchMid  = "├─ "
	branchLast = "└─ "
	indentMid  = "│  "
	indentLast = "   "
)

// TreeOptions configures RenderTree
type TreeOptions struct {
	// MaxDepth stops descending below this depth. Negative means unlimited,
	// zero prints the root alone.
	MaxDepth int
	// Colorize styles names by status and tags missing and conflicting nodes
	Colorize bool
	Styles   *Styles
}

// RenderTree draws a plan tree as ASCII, one node per line. The root is
// printed without a branch and an empty root name prints as ".".
func RenderTree(root *plan.TreeNode, opts TreeOptions) string {
	if opts.Styles == nil {
		opts.Styles = PlainStyles()
	}
	var lines []string
	renderNode(root, "", true, 0, opts, &lines)
	return strings.Join(lines, "\n")
}

// WriteTree writes RenderTree output followed by a newline
func WriteTree(w io.Writer, root *plan.TreeNode, opts TreeOptions) error {
	_, err := io.WriteString(w, RenderTree(root, opts)+"\n")
	return err
}

func renderNode(n *plan.TreeNode, prefix string, last bool, level int, opts TreeOptions, lines *[]string) {
	label := n.Name
	if label == "" {
		label = "."
	}
	if opts.Colorize {
		label = opts.Styles.Status(n.Status, label)
		switch n.Status {
		case types.StatusMissing, types.StatusConflict:
			label += " " + opts.Styles.Status(n.Status, "["+string(n.Status)+"]")
		}
	}

	if level == 0 {
		*lines = append(*lines, label)
	} else {
		branch := branchMid
		if last {
			branch = branchLast
		}
		*lines = append(*lines, prefix+branch+label)
	}

	if opts.MaxDepth >= 0 && level >= opts.MaxDepth {
		return
	}

	childPrefix := prefix + indentMid
	if last {
		childPrefix = prefix + indentLast
	}
	for i, c := range n.Children {
		renderNode(c, childPrefix, i == len(n.Children)-1, level+1, opts, lines)
	}
}
