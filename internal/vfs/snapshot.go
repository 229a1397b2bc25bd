package vfs

import (
	"fmt"
	"strings"

	"github.com/vvka-141/vshell/pkg/vshell"
)

// Record is the serializable form of a node: {name, type, children | content}.
// Children are keyed by name.
type Record struct {
	Name     string             `json:"name" yaml:"name"`
	Type     string             `json:"type" yaml:"type"`
	Children map[string]*Record `json:"children,omitempty" yaml:"children,omitempty"`
	Content  string             `json:"content,omitempty" yaml:"content,omitempty"`
}

// Export serializes the whole tree.
func (fs *FileSystem) Export() *Record {
	return exportNode(fs.root)
}

func exportNode(n *Node) *Record {
	rec := &Record{Name: n.name, Type: n.kind.String()}
	if !n.IsDir() {
		rec.Content = n.content
		return rec
	}
	if len(n.entries) > 0 {
		rec.Children = make(map[string]*Record, len(n.entries))
		for name, child := range n.entries {
			rec.Children[name] = exportNode(child)
		}
	}
	return rec
}

// Restore rebuilds a FileSystem from a Record and a current path.
// The record must describe a valid tree; a current path that does not name
// a directory in it falls back to the root rather than failing.
func Restore(rec *Record, cwd []string) (*FileSystem, error) {
	if rec == nil {
		return nil, fmt.Errorf("%w: missing root", ErrInvalidRecord)
	}
	if rec.Type != KindDirectory.String() {
		return nil, fmt.Errorf("%w: root has type %q", ErrInvalidRecord, rec.Type)
	}

	root := newDirectory(vshell.PathSeparator)
	if err := restoreEntries(root, rec.Children, vshell.PathSeparator); err != nil {
		return nil, err
	}

	fs := &FileSystem{root: root}
	if validSegments(cwd) {
		// a stale path leaves fs at the root
		_ = fs.ChangeDirectory(FormatPath(cwd))
	}
	return fs, nil
}

func restoreEntries(dir *Node, children map[string]*Record, at string) error {
	for key, child := range children {
		where := strings.TrimSuffix(at, vshell.PathSeparator) + vshell.PathSeparator + key
		if child == nil {
			return fmt.Errorf("%w: %s: empty entry", ErrInvalidRecord, where)
		}
		if !ValidName(key) {
			return fmt.Errorf("%w: %s: invalid name", ErrInvalidRecord, where)
		}
		if child.Name != "" && child.Name != key {
			return fmt.Errorf("%w: %s: entry named %q", ErrInvalidRecord, where, child.Name)
		}

		switch child.Type {
		case KindDirectory.String():
			sub := newDirectory(key)
			if err := restoreEntries(sub, child.Children, where); err != nil {
				return err
			}
			dir.entries[key] = sub
		case KindFile.String():
			if len(child.Children) > 0 {
				return fmt.Errorf("%w: %s: file with children", ErrInvalidRecord, where)
			}
			dir.entries[key] = newFile(key, child.Content)
		default:
			return fmt.Errorf("%w: %s: unknown type %q", ErrInvalidRecord, where, child.Type)
		}
	}
	return nil
}

// ValidName reports whether name can be a single path segment.
func ValidName(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.Contains(name, vshell.PathSeparator)
}

func validSegments(segments []string) bool {
	for _, seg := range segments {
		if !ValidName(seg) {
			return false
		}
	}
	return true
}
