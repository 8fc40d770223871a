// Package output renders plans and audit reports for people and machines.
//
// Human output is an ASCII tree coloured by audit status and a sectioned
// check report. Machine output is JSON (indented or one entry per line)
// and YAML. Colours come from an embedded styles.yaml and are applied with
// lipgloss, so turning colour off yields plain text with identical layout.
package output
