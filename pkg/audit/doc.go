// Package audit reconciles a BuildPlan against a real directory tree.
//
// An audit never fails because of filesystem state. A missing base
// directory, an unreadable subtree or a path that cannot be resolved all
// become entries in the report's issue lists. The only error Audit returns
// is for an unknown portability mode.
//
// Planned paths are compared in normalized form: cleaned and, on
// case-insensitive hosts, lowercased. Duplicate detection and the
// outside-base check work on these normalized, unresolved paths, so two
// template branches that render to the same path are reported even when
// nothing exists on disk yet.
package audit
