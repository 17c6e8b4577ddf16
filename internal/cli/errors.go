// Package cli implements the command-line interface.
package cli

// Error codes for structured error responses.
// These codes are stable and can be relied upon by agents.
//
// Per-file failures (unreadable file, broken frontmatter) are reported as
// diagnostics inside the run results, not through the error envelope, so
// one bad file never aborts the set.
const (
	// File errors
	ErrDirNotFound   = "DIR_NOT_FOUND"
	ErrFileReadError = "FILE_READ_ERROR"

	// Input errors
	ErrInvalidInput = "INVALID_INPUT"

	// General errors
	ErrInternal = "INTERNAL_ERROR"
)
