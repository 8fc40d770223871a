package audit

import (
	"runtime"

	"github.com/arthur-debert/foldergen/pkg/types"
)

// StatusIndex builds the side table projections use to annotate planned
// paths. Conflict wins over missing, which wins over existing. Planned paths
// without a classification default to planned.
func StatusIndex(r *types.AuditReport) *types.StatusIndex {
	return statusIndex(r, Normalizer(runtime.GOOS))
}

func statusIndex(r *types.AuditReport, norm func(string) string) *types.StatusIndex {
	idx := &types.StatusIndex{
		Status:    map[string]types.Status{},
		Issues:    map[string][]string{},
		Normalize: norm,
	}

	set := func(paths []string, s types.Status) {
		for _, p := range paths {
			idx.Status[norm(p)] = s
		}
	}
	set(r.ExistingDirs, types.StatusExisting)
	set(r.ExistingFiles, types.StatusExisting)
	set(r.MissingDirs, types.StatusMissing)
	set(r.MissingFiles, types.StatusMissing)
	for _, c := range r.Conflicts {
		idx.Status[norm(c.Path)] = types.StatusConflict
	}

	for _, ni := range r.NameIssues {
		key := norm(ni.Path)
		idx.Issues[key] = append(idx.Issues[key], ni.Reason)
	}

	for _, p := range append(append([]string{}, r.PlannedDirs...), r.PlannedFiles...) {
		key := norm(p)
		if _, ok := idx.Status[key]; !ok {
			idx.Status[key] = types.StatusPlanned
		}
	}
	return idx
}
