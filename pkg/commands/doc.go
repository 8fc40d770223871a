// Package commands provides the high level operations behind the foldergen
// CLI.
//
// Every command starts from the same Inputs (template, variables, base
// directory and configuration) and the same preparation: load the template
// and context, require every referenced variable, then build the plan.
// Nothing touches the filesystem until preparation succeeds.
//
//   - Plan      - manifest of the plan, optionally annotated by an audit
//   - Simulate  - print the operations without writing
//   - Build     - apply the plan to disk
//   - Check     - audit a directory tree against the plan
//   - Tree      - the plan grouped into a tree
//   - Vars      - used, missing and unused variables
package commands
