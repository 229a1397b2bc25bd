package vfs

import (
	"errors"
	"fmt"
)

// ErrInvalidRecord is returned by Restore when a serialized tree violates the tree invariants.
var ErrInvalidRecord = errors.New("invalid filesystem record")

// Operation names used in PathError. They match the shell verbs that trigger them.
const (
	OpList  = "ls"
	OpCd    = "cd"
	OpMkdir = "mkdir"
	OpTouch = "touch"
	OpCat   = "cat"
	OpWrite = "write"
	OpRm    = "rm"
	OpRmdir = "rmdir"
	OpWalk  = "tree"
)

// PathError records a failed operation together with the path it was given.
type PathError struct {
	Op   string // Operation that failed (e.g. "mkdir")
	Path string // Path argument as typed
	Err  error  // Sentinel kind from pkg/vshell
}

// Error renders "op: path: reason", the single response line shown to the user.
func (e *PathError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *PathError) Unwrap() error {
	return e.Err
}

func newPathError(op, path string, err error) *PathError {
	return &PathError{Op: op, Path: path, Err: err}
}
