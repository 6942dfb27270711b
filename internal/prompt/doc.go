// Package prompt assembles the review prompt handed to the operator.
//
// The prompt is three ordered text blocks: a system prompt (the built-in
// senior-engineer persona or a caller override), an optional Additional
// Context section, and the diff under a "# PR Code" heading. The diff text
// itself is never inspected or altered here.
package prompt
