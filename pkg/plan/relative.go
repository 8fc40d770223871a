package plan

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/foldergen/pkg/types"
)

// ToRelative returns a copy of p with paths relative to base. Paths that
// are not lexically under base are kept unchanged.
func ToRelative(p *types.BuildPlan, base string) *types.BuildPlan {
	out := &types.BuildPlan{Items: make([]types.PlanItem, len(p.Items))}
	for i, item := range p.Items {
		out.Items[i] = types.PlanItem{Kind: item.Kind, Path: RelativePath(item.Path, base)}
	}
	return out
}

// RelativePath makes path relative to base when it lies under it
func RelativePath(path, base string) string {
	cleanBase := filepath.Clean(base)
	cleanPath := filepath.Clean(path)
	if cleanPath == cleanBase {
		return "."
	}

	prefix := cleanBase
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	if cleanBase == "." && !filepath.IsAbs(cleanPath) && !strings.HasPrefix(cleanPath, "..") {
		return cleanPath
	}
	if strings.HasPrefix(cleanPath, prefix) {
		return cleanPath[len(prefix):]
	}
	return path
}
