package vshell

import (
	"errors"
	"strings"
)

// Sentinel errors for the filesystem and interpreter error kinds.
// Callers distinguish them with errors.Is; the messages double as the
// informational part of the response line shown to the user.
//
// Example usage:
//
//	if err := fs.RemoveDirectory("docs"); errors.Is(err, vshell.ErrNotEmpty) {
//	    // directory still has entries
//	}
var (
	// ErrNotFound indicates a path segment or the final target does not exist.
	ErrNotFound = errors.New("no such file or directory")

	// ErrAlreadyExists indicates a creation target collides with an existing entry.
	ErrAlreadyExists = errors.New("file exists")

	// ErrNotADirectory indicates a file was used where a directory is required.
	ErrNotADirectory = errors.New("not a directory")

	// ErrIsADirectory indicates a file-only operation targeted a directory.
	ErrIsADirectory = errors.New("is a directory")

	// ErrNotEmpty indicates rmdir on a directory that still has entries.
	ErrNotEmpty = errors.New("directory not empty")

	// ErrPermissionDenied indicates an attempt to remove the root directory.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrUsage indicates a command was missing a required argument.
	ErrUsage = errors.New("usage")

	// ErrUnknownCommand indicates the command token is not recognized.
	ErrUnknownCommand = errors.New("command not found")

	// ErrInvalidConfig indicates the configuration file or flags are invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrKeyNotFound is returned by a Store when nothing is saved under a key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrStoreUnavailable indicates the persistence backend could not be opened.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ExitCodeForError returns the process exit code for an error returned by a
// CLI command. Returns ExitSuccess for nil and ExitGeneralError for anything
// it does not recognize.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrStoreUnavailable):
		return ExitStoreError
	case errors.Is(err, ErrUsage):
		return ExitUsageError
	}

	// cobra argument validators return plain errors
	errStr := err.Error()
	if strings.Contains(errStr, "accepts ") ||
		strings.Contains(errStr, "requires at least") ||
		strings.Contains(errStr, "unknown flag") ||
		strings.Contains(errStr, "unknown shorthand flag") ||
		strings.Contains(errStr, "required flag") ||
		strings.Contains(errStr, "invalid argument") ||
		strings.Contains(errStr, "unknown command") {
		return ExitUsageError
	}

	return ExitGeneralError
}
