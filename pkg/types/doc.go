// Package types defines the core data structures shared by foldergen's
// packages: the parsed template tree (TemplateNode, Template), the variable
// Context, the flat BuildPlan produced by expansion, and the AuditReport
// produced when a plan is reconciled against a real directory tree.
//
// Status information from an audit is never stored on plan items. It lives
// in a StatusIndex side table that projections consult while rendering.
package types
