// Reviewprompt prepares a code-review prompt for an LLM from a git diff.
//
// It wraps the diff with a reviewer system prompt and optional extra
// context, estimating tokens with a cheap character-count heuristic and
// reducing the diff's unified context once when the result would exceed the
// model input budget. The assembled prompt goes to stdout or a file; sending
// it to a model is left to the operator.
//
// Usage:
//
//	reviewprompt                          # review unstaged changes
//	reviewprompt --cached                 # review staged changes
//	reviewprompt main..feature            # review a revision range
//	reviewprompt -U5 main -- src/         # adjust context, limit paths
//	reviewprompt -f -F asciidoc main      # write the prompt to a file
//
// Arguments not recognized by reviewprompt are forwarded to 'git diff'
// unchanged.
package main
