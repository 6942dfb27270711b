package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_Defaults(t *testing.T) {
	got := Build(Input{Diff: "0123456789"})
	want := DefaultSystemPrompt + "\n\n# PR Code\n\n0123456789"
	assert.Equal(t, want, got)
}

func TestBuild_SystemPromptOverride(t *testing.T) {
	got := Build(Input{SystemPrompt: "Talk like a pirate.", Diff: "diff"})
	assert.True(t, strings.HasPrefix(got, "Talk like a pirate."))
	assert.NotContains(t, got, DefaultSystemPrompt)
}

func TestBuild_AdditionalContext(t *testing.T) {
	got := Build(Input{
		AdditionalContext: "Focus on authentication bypasses",
		Diff:              "diff",
	})
	require.Contains(t, got, "\n\n## Additional Context\nFocus on authentication bypasses")

	// context sits between the system prompt and the diff
	ctxIdx := strings.Index(got, "## Additional Context")
	diffIdx := strings.Index(got, "# PR Code")
	assert.Less(t, ctxIdx, diffIdx)
	assert.Greater(t, ctxIdx, 0)
}

func TestBuild_NoContextNoHeading(t *testing.T) {
	got := Build(Input{Diff: "diff"})
	assert.NotContains(t, got, "Additional Context")
}

func TestBuild_FormatInstruction(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatMarkdown, "Output the review in Markdown format.\n"},
		{FormatAsciiDoc, "Output the review in AsciiDoc format.\n"},
		{FormatMediaWiki, "Output the review in MediaWiki format.\n"},
	}
	for _, tt := range tests {
		got := Build(Input{Format: tt.format, Diff: "diff"})
		assert.Contains(t, got, tt.want)
	}

	// the persona text mentions markdown on its own; the capitalized
	// instruction line is only added when a format was requested
	assert.NotContains(t, Build(Input{Diff: "diff"}), "Output the review in Markdown format.")
}

func TestParseFormat(t *testing.T) {
	for _, valid := range []string{"markdown", "asciidoc", "mediawiki"} {
		f, err := ParseFormat(valid)
		require.NoError(t, err)
		assert.Equal(t, Format(valid), f)
	}

	_, err := ParseFormat("html")
	assert.Error(t, err)
}

func TestFormatExtension(t *testing.T) {
	assert.Equal(t, "md", FormatMarkdown.Extension())
	assert.Equal(t, "adoc", FormatAsciiDoc.Extension())
	assert.Equal(t, "wiki", FormatMediaWiki.Extension())
	assert.Equal(t, "md", Format("").Extension())
}

func TestIndent(t *testing.T) {
	got := Indent("a\n\nb", "  ")
	assert.Equal(t, "  a\n  \n  b", got)
}
