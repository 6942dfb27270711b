package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/reviewprompt/reviewprompt/internal/prompt"
)

const version = "1.0.0"

// Exit codes: usage errors, git failures, empty diffs, and oversized diffs
// all exit 1; everything else exits 0.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

const reviewExamples = `  Review unstaged changes
      reviewprompt

  Review with additional context
      reviewprompt --context "Focus your review on possible authentication bypasses"

  Review with context from a file
      reviewprompt --context "$(cat PR_DESCRIPTION.md)"

  Set system prompt to be something other than the default
      reviewprompt --system-prompt "$(cat .github/copilot-instructions.md)"
      reviewprompt --system-prompt "Review this code. Talk like a pirate."

  Review staged changes
      reviewprompt --cached

  Review changes between HEAD and main
      reviewprompt main

  Review changes between two branches
      reviewprompt main feature-branch
      reviewprompt main..feature-branch

  Review only changes since branch diverged from main
      reviewprompt main...feature-branch

  Review a remote branch
      reviewprompt origin/main..origin/feature-branch

  Limit review to specific files
      reviewprompt main -- src/components/

  Adjust context lines
      reviewprompt -U5 main

Dot Notation:
  - Two dots (A..B): Direct comparison between A and B
  - Three dots (A...B): Compare common ancestor of A and B with B`

var rootCmd = &cobra.Command{
	Use:   "reviewprompt [flags] [git diff arguments]",
	Short: "Prepare an LLM code-review prompt from a git diff",
	Long: `Reviewprompt builds a code-review prompt for a language model: it captures a
git diff, wraps it with a reviewer system prompt and optional extra context,
and shrinks the diff's unified context once if it would blow the token budget.

Arguments not recognized by reviewprompt pass through to 'git diff' verbatim,
so any git diff selector syntax or option works.`,
	Example: reviewExamples,
	Version: version,

	// Pass-through semantics need a custom scanner; the flags registered in
	// init below exist for the usage listing only.
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,

	RunE: run,
}

func init() {
	f := rootCmd.Flags()
	f.StringP("context", "c", "", "Additional context for the review, appended to the system prompt")
	f.StringP("system-prompt", "s", "", "Override the default system prompt")
	f.BoolP("show-system-prompt", "S", false, "Print the default system prompt and exit")
	f.StringP("output-format", "F", "", "Request the review in a format: markdown, asciidoc, or mediawiki")
	f.IntP("unified", "U", DefaultUnifiedContext, "Number of unchanged context lines around each change")
	f.BoolP("file", "f", false, "Write the prompt to a file (--file=NAME to pick the name)")
	f.BoolP("verbose", "v", false, "Enable verbose output")
	f.BoolP("debug", "D", false, "Enable debug output (implies --verbose)")
	f.Bool("force-reduced", false, "Always take the context-reduction path")
	_ = f.MarkHidden("force-reduced")
}

// exitCode is set by the command handler; Run returns it to main.
var exitCode = ExitSuccess

// Run executes the root command and returns the process exit code.
func Run() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitFailure
	}
	return exitCode
}

func run(cmd *cobra.Command, args []string) error {
	opts, err := Parse(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n%s", err, cmd.UsageString())
		exitCode = ExitFailure
		return nil
	}

	if opts.ShowHelp {
		return cmd.Help()
	}
	if opts.ShowVersion {
		fmt.Printf("reviewprompt version %s\n", version)
		return nil
	}

	configureLogging(opts)

	log.Trace().Int("unified_context", opts.UnifiedContext).Msg("options parsed")
	if len(opts.PassThrough) > 0 {
		log.Trace().Strs("pass_through", opts.PassThrough).Msg("forwarding arguments to git diff")
	}

	if opts.ShowSystemPrompt {
		fmt.Printf("Default System Prompt:\n\n%s\n", prompt.Indent(prompt.DefaultSystemPrompt, "  "))
		return nil
	}

	if err := review(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitFailure
	}
	return nil
}

func configureLogging(opts Options) {
	level := zerolog.WarnLevel
	if opts.Verbose {
		level = zerolog.InfoLevel
	}
	if opts.Debug {
		level = zerolog.TraceLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}
