// Package gitctx acquires diffs and repository metadata from git.
//
// It is a thin subprocess wrapper: callers hand it a fully assembled
// git diff argument list and receive raw diff text back. The [DiffSource]
// interface is the seam that lets the rest of the tool be exercised
// against canned diffs without a repository.
package gitctx
