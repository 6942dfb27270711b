// Package output writes the assembled prompt to its destination, either
// stdout or a named file, and derives file names from branch or selector
// names plus a timestamp when the caller did not supply one.
package output
