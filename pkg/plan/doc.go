// Package plan turns a folder template into a flat BuildPlan and derives
// read-only views from it.
//
// Build walks the template depth-first, pre-order. For each node it first
// estimates how many variants the node name and its files would produce and
// refuses the node when that estimate exceeds MaxExpand. It then expands
// generator tokens, renders placeholders and emits a dir item per non-empty
// name variant, followed by that variant's files and then its child nodes.
// Nodes with an empty name emit nothing of their own; their files and
// children land in the parent directory.
//
// The projections (ToRelative, ToTree, ToManifest) never modify the plan.
// Audit status is passed to them through a types.StatusIndex.
package plan
