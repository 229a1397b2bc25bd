package vfs

import "sort"

// Kind distinguishes the two node variants.
type Kind int

const (
	KindDirectory Kind = iota
	KindFile
)

// String returns the kind as it appears in snapshots.
func (k Kind) String() string {
	if k == KindFile {
		return "file"
	}
	return "dir"
}

// Node is a filesystem entry: a Directory with named children or a File with text content.
type Node struct {
	name    string
	kind    Kind
	entries map[string]*Node
	content string
}

func newDirectory(name string) *Node {
	return &Node{name: name, kind: KindDirectory, entries: make(map[string]*Node)}
}

func newFile(name, content string) *Node {
	return &Node{name: name, kind: KindFile, content: content}
}

// Name returns the entry name. The root is named "/".
func (n *Node) Name() string { return n.name }

// Kind returns the node variant.
func (n *Node) Kind() Kind { return n.kind }

// IsDir reports whether the node is a Directory.
func (n *Node) IsDir() bool { return n.kind == KindDirectory }

// Content returns the text of a File; empty for directories.
func (n *Node) Content() string { return n.content }

// Len returns the number of entries in a Directory.
func (n *Node) Len() int { return len(n.entries) }

// Names returns the child names of a Directory in lexical order.
func (n *Node) Names() []string {
	names := make([]string, 0, len(n.entries))
	for name := range n.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Child returns the named entry of a Directory.
func (n *Node) Child(name string) (*Node, bool) {
	child, ok := n.entries[name]
	return child, ok
}
