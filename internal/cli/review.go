package cli

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/reviewprompt/reviewprompt/internal/fit"
	"github.com/reviewprompt/reviewprompt/internal/gitctx"
	"github.com/reviewprompt/reviewprompt/internal/output"
	"github.com/reviewprompt/reviewprompt/internal/prompt"
)

// review runs the full pipeline against the real git binary.
func review(opts Options) error {
	return reviewWith(opts, gitctx.Git{}, time.Now())
}

// reviewWith is the testable pipeline: acquire and fit the diff, assemble
// the prompt, write it out.
func reviewWith(opts Options, src gitctx.DiffSource, now time.Time) error {
	diff, err := fit.Fit(src, opts.GitArgs(), opts.UnifiedContext, opts.ForceReduced)
	if err != nil {
		return err
	}

	text := prompt.Build(prompt.Input{
		SystemPrompt:      opts.SystemPrompt,
		AdditionalContext: opts.AdditionalContext,
		Format:            opts.OutputFormat,
		Diff:              diff,
	})

	var path string
	if opts.WriteFile {
		path = opts.FileName
		if path == "" {
			branch, err := gitctx.CurrentBranch()
			if err != nil {
				log.Warn().Err(err).Msg("could not determine current branch for the file name")
			}
			path = output.DeriveFileName(branch, opts.RevisionSelector(), opts.OutputFormat, now)
		}
	}

	return output.Write(text, path)
}
