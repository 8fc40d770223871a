package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Generate folder structures from templates"
	MsgPlanShort       = "Show the build plan or export a manifest"
	MsgSimulateShort   = "Print the operations of a build without writing"
	MsgBuildShort      = "Apply the plan and write it to disk"
	MsgCheckShort      = "Check a directory tree against the plan"
	MsgTreeShort       = "Print or export the plan as a tree"
	MsgVarsShort       = "List used, missing and unused variables"
	MsgSyntaxShort     = "Describe the template syntax"
	MsgConfigShort     = "Print the effective configuration"
	MsgConfigLong      = "Config prints the configuration foldergen runs with, after defaults, config file, environment and flags are applied."
	MsgVersionShort    = "Print version information"
	MsgVersionLong     = "Print detailed version information including commit hash and build date"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate the man page"

	// Status messages
	MsgManifestWritten = "Manifest written to: %s\n"
	MsgTreeWritten     = "Wrote %s to: %s\n"
	MsgUnusedVars      = "unused vars: %s"
	MsgConfirmBuild    = "This will create %d entries. Continue?"
	MsgAborted         = "Aborted!"
	MsgBaselineSame    = "No changes since baseline."
	MsgConfigFrom      = "# loaded from %s\n"
	MsgVarsLine        = "%-8s %s\n"
	MsgNone            = "(none)"
	MsgVersionFormat   = "foldergen version %s\n"
	MsgCommitFormat    = "Commit: %s\n"
	MsgBuiltFormat     = "Built:  %s\n"

	// Error messages
	MsgErrUnknownFormat = "unknown format: %s"

	// Flag descriptions
	MsgFlagVerbose        = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig         = "Config file (default ./foldergen.toml or ./.foldergen.toml)"
	MsgFlagColor          = "Colorize output: auto, always or never"
	MsgFlagTemplate       = "Template file (JSON or YAML)"
	MsgFlagVars           = "Variables file (JSON or YAML)"
	MsgFlagBase           = "Base directory the plan is rooted at"
	MsgFlagRelative       = "Show paths relative to --base"
	MsgFlagAbsolute       = "Show absolute paths"
	MsgFlagExportManifest = "Write the manifest to this file instead of stdout"
	MsgFlagManifestFormat = "Manifest format: json or jsonl"
	MsgFlagWithStatus     = "Include disk status and name issues in the manifest"
	MsgFlagWarnUnused     = "Warn about vars the template does not use"
	MsgFlagMaxExpand      = "Maximum generator expansion per name"
	MsgFlagStrictPaths    = "Reject rendered names holding path separators"
	MsgFlagPortable       = "Name portability rules: auto, windows, posix, mac, all or none"
	MsgFlagMaxPathLen     = "Warn about paths longer than this"
	MsgFlagFollowSymlinks = "Follow symlinks while scanning the base directory"
	MsgFlagQuiet          = "Only print the final summary"
	MsgFlagSummary        = "Print a summary after the listing"
	MsgFlagAssumeYes      = "Do not ask for confirmation"
	MsgFlagRollback       = "Undo completed operations when one fails"
	MsgFlagCheckFormat    = "Output format: json or table"
	MsgFlagStrict         = "Exit with status 2 when any problem is found"
	MsgFlagFilter         = "Report sections to show, e.g. missing,conflict"
	MsgFlagBaseline       = "Print a diff against a previously saved JSON report"
	MsgFlagTreeFormat     = "Output format: tree, json or yaml"
	MsgFlagDepth          = "Maximum depth to print in tree format (-1 for all)"
	MsgFlagShowFiles      = "Include files in the tree"
	MsgFlagSort           = "Child order: template or alpha"
	MsgFlagStatus         = "Annotate nodes with disk status"
	MsgFlagOut            = "Write to this file instead of stdout"
	MsgFlagVarsFormat     = "Output format: text, json or yaml"
	MsgFlagDefaults       = "Print the built-in defaults instead"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/plan-long.txt
	msgPlanLongRaw string
	MsgPlanLong    = strings.TrimSpace(msgPlanLongRaw)

	//go:embed msgs/plan-example.txt
	msgPlanExampleRaw string
	MsgPlanExample    = strings.TrimRight(msgPlanExampleRaw, "\n")

	//go:embed msgs/simulate-long.txt
	msgSimulateLongRaw string
	MsgSimulateLong    = strings.TrimSpace(msgSimulateLongRaw)

	//go:embed msgs/build-long.txt
	msgBuildLongRaw string
	MsgBuildLong    = strings.TrimSpace(msgBuildLongRaw)

	//go:embed msgs/check-long.txt
	msgCheckLongRaw string
	MsgCheckLong    = strings.TrimSpace(msgCheckLongRaw)

	//go:embed msgs/check-example.txt
	msgCheckExampleRaw string
	MsgCheckExample    = strings.TrimRight(msgCheckExampleRaw, "\n")

	//go:embed msgs/tree-long.txt
	msgTreeLongRaw string
	MsgTreeLong    = strings.TrimSpace(msgTreeLongRaw)

	//go:embed msgs/tree-example.txt
	msgTreeExampleRaw string
	MsgTreeExample    = strings.TrimRight(msgTreeExampleRaw, "\n")

	//go:embed msgs/vars-long.txt
	msgVarsLongRaw string
	MsgVarsLong    = strings.TrimSpace(msgVarsLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
