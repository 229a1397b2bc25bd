package vfs

import (
	"strings"

	"github.com/vvka-141/vshell/pkg/vshell"
)

// Resolution is the outcome of resolving a textual path.
//
// Node is nil when every segment but the last exists and the last one does
// not; Parent and Name then describe where an entry would be created, so
// create operations share the resolver with read operations.
type Resolution struct {
	Node   *Node    // Final node, nil if the last segment is absent
	Parent *Node    // Directory holding (or that would hold) Name; nil for the root
	Name   string   // Final segment; "/" for the root
	Path   []string // Absolute segments of the final target
}

// Exists reports whether the final segment names an existing node.
func (r Resolution) Exists() bool {
	return r.Node != nil
}

// IsRoot reports whether the resolution landed on the root directory.
func (r Resolution) IsRoot() bool {
	return r.Node != nil && r.Parent == nil
}

// Resolve converts a path into a Resolution.
//
// Absolute paths start at the root, relative ones at the current directory.
// ".." moves to the parent of the directory reached so far and is a no-op at
// the root; "." and empty segments are skipped. Resolving through a File
// yields ErrNotADirectory, except when the File is the final segment.
func (fs *FileSystem) Resolve(p string) (Resolution, error) {
	segments, absolute := SplitPath(p)

	var stack []*Node
	var path []string
	if absolute {
		stack = []*Node{fs.root}
	} else {
		stack, path = fs.cwdStack()
	}

	for i, seg := range segments {
		cur := stack[len(stack)-1]
		if !cur.IsDir() {
			return Resolution{}, vshell.ErrNotADirectory
		}

		if seg == ".." {
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
				path = path[:len(path)-1]
			}
			continue
		}

		child, ok := cur.entries[seg]
		if !ok {
			if i == len(segments)-1 {
				return Resolution{Parent: cur, Name: seg, Path: append(path, seg)}, nil
			}
			return Resolution{}, vshell.ErrNotFound
		}
		stack = append(stack, child)
		path = append(path, seg)
	}

	res := Resolution{Node: stack[len(stack)-1], Name: vshell.PathSeparator, Path: path}
	if len(stack) > 1 {
		res.Parent = stack[len(stack)-2]
		res.Name = path[len(path)-1]
	}
	return res, nil
}

// SplitPath breaks a path into segments and reports whether it is absolute.
// Empty and "." segments are dropped.
func SplitPath(p string) (segments []string, absolute bool) {
	absolute = strings.HasPrefix(p, vshell.PathSeparator)
	for _, seg := range strings.Split(p, vshell.PathSeparator) {
		if seg == "" || seg == "." {
			continue
		}
		segments = append(segments, seg)
	}
	return segments, absolute
}

// FormatPath renders absolute segments as "/seg1/seg2"; the root renders as "/".
func FormatPath(segments []string) string {
	return vshell.PathSeparator + strings.Join(segments, vshell.PathSeparator)
}

// cwdStack walks the current path from the root and returns the directories
// visited plus a private copy of the path. A current path that no longer
// resolves is truncated to its longest valid prefix.
func (fs *FileSystem) cwdStack() ([]*Node, []string) {
	stack := make([]*Node, 1, len(fs.cwd)+1)
	stack[0] = fs.root
	path := make([]string, 0, len(fs.cwd)+1)

	for _, seg := range fs.cwd {
		child, ok := stack[len(stack)-1].entries[seg]
		if !ok || !child.IsDir() {
			fs.cwd = append([]string(nil), path...)
			break
		}
		stack = append(stack, child)
		path = append(path, seg)
	}
	return stack, path
}
