package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reviewprompt/reviewprompt/internal/fit"
	"github.com/reviewprompt/reviewprompt/internal/prompt"
)

type fakeSource struct {
	diffs []string
	calls [][]string
}

func (f *fakeSource) Diff(args []string) (string, error) {
	f.calls = append(f.calls, append([]string(nil), args...))
	i := len(f.calls) - 1
	if i >= len(f.diffs) {
		i = len(f.diffs) - 1
	}
	return f.diffs[i], nil
}

func TestReviewWith_WritesPromptToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.md")
	opts, err := Parse([]string{"--file=" + path, "-c", "check the parser", "main"})
	require.NoError(t, err)

	src := &fakeSource{diffs: []string{"diff --git a/x b/x\n+change\n"}}
	require.NoError(t, reviewWith(opts, src, time.Now()))

	require.Len(t, src.calls, 1)
	assert.Equal(t, []string{"-U3", "main"}, src.calls[0])

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)

	assert.True(t, strings.HasPrefix(text, prompt.DefaultSystemPrompt))
	assert.Contains(t, text, "## Additional Context\ncheck the parser")
	assert.Contains(t, text, "# PR Code\n\ndiff --git a/x b/x\n+change\n")
}

func TestReviewWith_EmptyDiffFails(t *testing.T) {
	opts, err := Parse(nil)
	require.NoError(t, err)

	src := &fakeSource{diffs: []string{""}}
	err = reviewWith(opts, src, time.Now())
	require.ErrorIs(t, err, fit.ErrEmptyDiff)
}

func TestReviewWith_ReductionFlowsThroughGitArgs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.md")
	big := strings.Repeat("x", 220000) // 55,000 estimated tokens
	opts, err := Parse([]string{"--file=" + path, "main..feature"})
	require.NoError(t, err)

	src := &fakeSource{diffs: []string{big, "small diff\n"}}
	require.NoError(t, reviewWith(opts, src, time.Now()))

	require.Len(t, src.calls, 2)
	assert.Equal(t, []string{"-U3", "main..feature"}, src.calls[0])
	assert.Equal(t, []string{"-U2", "main..feature"}, src.calls[1])
}

func TestReviewWith_OversizedDiffFails(t *testing.T) {
	big := strings.Repeat("x", 500000)
	opts, err := Parse(nil)
	require.NoError(t, err)

	src := &fakeSource{diffs: []string{big, big}}
	err = reviewWith(opts, src, time.Now())
	require.ErrorIs(t, err, fit.ErrTooLarge)
}
