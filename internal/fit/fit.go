package fit

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/rs/zerolog/log"

	"github.com/reviewprompt/reviewprompt/internal/gitctx"
)

const (
	// MaxTokens is the estimated-token ceiling for the diff portion of the
	// prompt, chosen as a safe share of a model's input window.
	MaxTokens = 50000
	// CharsPerToken approximates tokens from raw character count. There is
	// no cheap exact tokenizer, so the estimate stays deliberately rough.
	CharsPerToken = 4
)

// ErrEmptyDiff is returned when the diff source produced no output: there is
// nothing to review, so an empty prompt would have no value.
var ErrEmptyDiff = errors.New("no changes found to review")

// ErrTooLarge is returned when the diff still exceeds the token budget after
// the single context reduction.
var ErrTooLarge = errors.New("diff is too large to process even with minimal context; try reviewing a smaller set of changes")

// EstimateTokens approximates the token count of text.
func EstimateTokens(text string) int {
	return len(text) / CharsPerToken
}

// ReduceContext computes a smaller unified-context value by scaling the
// original down by the ratio the estimate exceeds the ceiling. The result is
// never less than 1.
func ReduceContext(original, estimated, ceiling int) int {
	if estimated < 1 {
		estimated = 1
	}
	reduced := original * ceiling / estimated
	if reduced < 1 {
		reduced = 1
	}
	return reduced
}

var (
	unifiedShort = regexp.MustCompile(`^-U[0-9]+$`)
	unifiedLong  = regexp.MustCompile(`^--unified=[0-9]+$`)
)

// ReplaceUnified returns a copy of args with every unified-context flag, in
// either spelling, rewritten to carry n.
func ReplaceUnified(args []string, n int) []string {
	out := make([]string, len(args))
	for i, arg := range args {
		switch {
		case unifiedShort.MatchString(arg):
			out[i] = fmt.Sprintf("-U%d", n)
		case unifiedLong.MatchString(arg):
			out[i] = fmt.Sprintf("--unified=%d", n)
		default:
			out[i] = arg
		}
	}
	return out
}

// Fit acquires a diff and keeps it inside the token budget. If the first
// acquisition is over budget the unified context is reduced once and the
// source re-invoked; a diff that is still too large after that is an error.
// Worst case is exactly two source invocations.
func Fit(src gitctx.DiffSource, args []string, contextLines int, force bool) (string, error) {
	diff, err := acquire(src, args)
	if err != nil {
		return "", err
	}

	estimated := EstimateTokens(diff)
	if estimated <= MaxTokens && !force {
		return diff, nil
	}

	reduced := ReduceContext(contextLines, estimated, MaxTokens)
	log.Info().
		Int("estimated_tokens", estimated).
		Int("reduced_context", reduced).
		Msg("reducing unified context to fit token limits")

	diff, err = acquire(src, ReplaceUnified(args, reduced))
	if err != nil {
		return "", err
	}
	if EstimateTokens(diff) > MaxTokens {
		return "", ErrTooLarge
	}
	return diff, nil
}

func acquire(src gitctx.DiffSource, args []string) (string, error) {
	diff, err := src.Diff(args)
	if err != nil {
		return "", err
	}
	if len(diff) == 0 {
		return "", ErrEmptyDiff
	}
	return diff, nil
}
