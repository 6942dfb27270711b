package gitctx

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/rs/zerolog/log"
)

// DiffSource produces unified diff text for a list of git diff arguments.
// The real implementation shells out to git; tests substitute canned diffs.
type DiffSource interface {
	Diff(args []string) (string, error)
}

// Git is the DiffSource backed by the git binary in PATH.
type Git struct{}

// Diff runs `git diff` with the given arguments and returns its stdout.
// The arguments are forwarded verbatim, so any git diff selector syntax
// (revision ranges, dot notation, `--`-delimited path filters) works.
func (Git) Diff(args []string) (string, error) {
	log.Debug().Strs("args", args).Msg("running git diff")
	out, err := gitOutput(append([]string{"diff"}, args...)...)
	if err != nil {
		return "", fmt.Errorf("git diff: %w", err)
	}
	return out, nil
}

// CurrentBranch returns the checked-out branch name, falling back to the
// short HEAD SHA when detached.
func CurrentBranch() (string, error) {
	out, err := gitOutput("rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", fmt.Errorf("git rev-parse: %w", err)
	}
	branch := strings.TrimSpace(out)
	if branch != "" && branch != "HEAD" {
		return branch, nil
	}
	out, err = gitOutput("rev-parse", "--short", "HEAD")
	if err != nil {
		return "", fmt.Errorf("git rev-parse: %w", err)
	}
	return strings.TrimSpace(out), nil
}

func gitOutput(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return string(out), fmt.Errorf("%s: %s", err, string(exitErr.Stderr))
		}
		return "", err
	}
	return string(out), nil
}
