// Package vfs implements the in-memory hierarchical filesystem behind the shell.
//
// The tree is strictly owned: every Directory holds a map of its children and
// no node stores a pointer to its parent. The current directory is kept as a
// plain list of segments and re-walked from the root on every operation, so
// removing an entry from its parent's map is the only way a node is destroyed.
//
// Key types:
//   - FileSystem: owns the root and the current path, exposes the shell verbs
//   - Node: a Directory or a File
//   - Resolution: result of resolving a textual path (node, parent, leaf name)
//   - Record: serializable form of the tree used by snapshots
//
// Errors are *PathError values wrapping the sentinel kinds in pkg/vshell,
// so callers classify them with errors.Is.
//
// A FileSystem is not safe for concurrent use; it belongs to a single session.
package vfs
