package cli

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/arthur-debert/foldergen/internal/version"
	"github.com/arthur-debert/foldergen/pkg/cobrax/topics"
	"github.com/arthur-debert/foldergen/pkg/logging"
	"github.com/arthur-debert/foldergen/pkg/output"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicFiles embed.FS

// ExitError ends the process with Code. The command has already reported
// whatever the user needs to see.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var (
		verbosity  int
		configFile string
		color      string
	)

	rootCmd := &cobra.Command{
		Use:     "foldergen",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&color, "color", "", MsgFlagColor)
	_ = rootCmd.PersistentFlags().SetAnnotation("color", configKeyAnnotation, []string{"output.color"})
	_ = rootCmd.MarkPersistentFlagFilename("config", "toml")
	_ = rootCmd.RegisterFlagCompletionFunc("color", cobra.FixedCompletions(
		[]string{string(output.ColorAuto), string(output.ColorAlways), string(output.ColorNever)},
		cobra.ShellCompDirectiveNoFileComp))

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newPlanCmd())
	rootCmd.AddCommand(newSimulateCmd())
	rootCmd.AddCommand(newBuildCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newTreeCmd())
	rootCmd.AddCommand(newVarsCmd())
	rootCmd.AddCommand(newSyntaxCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	if tm, err := newTopics(); err == nil {
		topics.Install(rootCmd, tm)
		rootCmd.SetHelpCommandGroupID("misc")
	}

	return rootCmd
}

// newTopics loads the embedded help topics. Markdown is rendered with
// glamour when stdout is a terminal.
func newTopics() (*topics.Manager, error) {
	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		return nil, err
	}
	opts := topics.Options{Extensions: []string{".md"}}
	if isTerminal() {
		opts.Renderer = topics.NewGlamourRenderer()
	}
	return topics.New(sub, opts)
}

// Execute runs the command line and returns the process exit code.
// Errors are printed to stderr; an ExitError only sets the code.
func Execute(ctx context.Context, args []string) int {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(ctx)
	return exitCode(err, rootCmd.ErrOrStderr())
}

func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}
	var exit *ExitError
	if errors.As(err, &exit) {
		return exit.Code
	}
	log.Debug().Err(err).Msg("Command failed")
	_, _ = fmt.Fprintln(stderr, output.FormatError(err))
	return 1
}
