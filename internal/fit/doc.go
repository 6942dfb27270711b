// Package fit keeps a diff inside a language model's input budget.
//
// Tokens are estimated as character count divided by a fixed constant rather
// than computed with a real tokenizer. When a diff exceeds the ceiling, the
// unified-context line count is shrunk proportionally and the diff source is
// re-invoked exactly once; there is no retry loop beyond that.
package fit
