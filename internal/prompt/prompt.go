package prompt

import (
	"fmt"
	"strings"
)

// DefaultSystemPrompt is the reviewer persona used when no override is given.
const DefaultSystemPrompt = `Please review this PR as if you were a senior engineer.

## Focus Areas
- Architecture and design decisions
- Potential bugs and edge cases
- Performance considerations
- Security implications
- Code maintainability and best practices
- Test coverage

## Review Format
- Start with a brief summary of the PR purpose and changes
- List strengths of the implementation
- Identify issues and improvement opportunities (ordered by priority)
- Provide specific code examples for suggested changes where applicable

Please be specific, constructive, and actionable in your feedback. Output the review in markdown format.`

// Format is a requested review output format.
type Format string

const (
	FormatMarkdown  Format = "markdown"
	FormatAsciiDoc  Format = "asciidoc"
	FormatMediaWiki Format = "mediawiki"
)

// ParseFormat validates a format name from the command line.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatMarkdown, FormatAsciiDoc, FormatMediaWiki:
		return Format(s), nil
	}
	return "", fmt.Errorf("unsupported output format %q (want markdown, asciidoc, or mediawiki)", s)
}

// DisplayName returns the format's conventional capitalized name, used when
// instructing the model.
func (f Format) DisplayName() string {
	switch f {
	case FormatAsciiDoc:
		return "AsciiDoc"
	case FormatMediaWiki:
		return "MediaWiki"
	default:
		return "Markdown"
	}
}

// Extension returns the file extension for prompts written to disk.
func (f Format) Extension() string {
	switch f {
	case FormatAsciiDoc:
		return "adoc"
	case FormatMediaWiki:
		return "wiki"
	default:
		return "md"
	}
}

// Input carries everything the assembler needs to build the final prompt.
type Input struct {
	SystemPrompt      string // override; empty means DefaultSystemPrompt
	AdditionalContext string
	Format            Format // empty means no format instruction
	Diff              string
}

// Build assembles the final review prompt: system prompt, an optional output
// format instruction, an optional Additional Context section, and the diff
// under a PR Code heading.
func Build(in Input) string {
	var b strings.Builder

	if in.SystemPrompt != "" {
		b.WriteString(in.SystemPrompt)
	} else {
		b.WriteString(DefaultSystemPrompt)
	}

	if in.Format != "" {
		fmt.Fprintf(&b, "\nOutput the review in %s format.\n", in.Format.DisplayName())
	}

	if in.AdditionalContext != "" {
		b.WriteString("\n\n## Additional Context\n")
		b.WriteString(in.AdditionalContext)
	}

	b.WriteString("\n\n# PR Code\n\n")
	b.WriteString(in.Diff)

	return b.String()
}

// Indent prefixes every line of text, used when echoing the default system
// prompt back to the terminal.
func Indent(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
