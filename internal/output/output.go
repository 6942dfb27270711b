package output

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/reviewprompt/reviewprompt/internal/prompt"
)

// Write sends the assembled prompt to stdout, or to path when non-empty.
// File output prints a confirmation line to stdout so the prompt itself
// stays out of the terminal.
func Write(text, path string) error {
	if path == "" {
		_, err := fmt.Fprintln(os.Stdout, text)
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	if _, err := io.WriteString(f, text+"\n"); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}

	fmt.Printf("Review prompt written to %s\n", path)
	return nil
}

// DeriveFileName builds an output file name from the diff selector (or the
// current branch when no selector was given) and a timestamp. The extension
// follows the requested review format.
func DeriveFileName(branch, selector string, format prompt.Format, now time.Time) string {
	name := selector
	if name == "" {
		name = branch
	}
	if name == "" {
		name = "diff"
	}
	return fmt.Sprintf("review-%s-%s.%s",
		sanitize(name), now.Format("20060102-150405"), format.Extension())
}

// sanitize replaces path-hostile characters so branch names like
// "feature/login" or selectors like "origin/main..HEAD" stay usable as a
// single file name.
func sanitize(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			out = append(out, r)
		case r == '.', r == '_', r == '-':
			out = append(out, r)
		default:
			out = append(out, '-')
		}
	}
	return string(out)
}
