// Package cli wires the reviewprompt command line.
//
// It interprets the fixed flag set, forwards every unrecognized argument to
// git diff in original order, and drives the pipeline: acquire the diff, fit
// it to the token budget, assemble the prompt, and write it to stdout or a
// file. Cobra renders usage and examples; flag scanning is done by [Parse]
// because pass-through semantics do not fit a standard flag parser.
package cli
