package vfs

import "github.com/vvka-141/vshell/pkg/vshell"

// FileSystem owns the directory tree and the current working path.
type FileSystem struct {
	root *Node
	cwd  []string
}

// New creates a filesystem holding only an empty root directory.
func New() *FileSystem {
	return &FileSystem{root: newDirectory(vshell.PathSeparator)}
}

// Root returns the root directory.
func (fs *FileSystem) Root() *Node {
	return fs.root
}

// Cwd returns a copy of the current path segments.
func (fs *FileSystem) Cwd() []string {
	return append([]string(nil), fs.cwd...)
}

// WorkingPath renders the current path ("/" at the root).
func (fs *FileSystem) WorkingPath() string {
	return FormatPath(fs.cwd)
}

// List returns the entry names of the directory at p, or of the current
// directory when p is empty. Listing a File returns its own name.
func (fs *FileSystem) List(p string) ([]string, error) {
	res, err := fs.Resolve(p)
	if err != nil {
		return nil, newPathError(OpList, p, err)
	}
	if !res.Exists() {
		return nil, newPathError(OpList, p, vshell.ErrNotFound)
	}
	if !res.Node.IsDir() {
		return []string{res.Name}, nil
	}
	return res.Node.Names(), nil
}

// ChangeDirectory replaces the current path with the resolved absolute path of p.
func (fs *FileSystem) ChangeDirectory(p string) error {
	res, err := fs.Resolve(p)
	if err != nil {
		return newPathError(OpCd, p, err)
	}
	if !res.Exists() {
		return newPathError(OpCd, p, vshell.ErrNotFound)
	}
	if !res.Node.IsDir() {
		return newPathError(OpCd, p, vshell.ErrNotADirectory)
	}
	fs.cwd = res.Path
	return nil
}

// MakeDirectory creates an empty directory. Any existing entry of that name,
// regardless of type, yields ErrAlreadyExists.
func (fs *FileSystem) MakeDirectory(name string) error {
	return fs.create(OpMkdir, name, func(leaf string) *Node {
		return newDirectory(leaf)
	})
}

// MakeFile creates an empty file under the same uniqueness rule as MakeDirectory.
func (fs *FileSystem) MakeFile(name string) error {
	return fs.create(OpTouch, name, func(leaf string) *Node {
		return newFile(leaf, "")
	})
}

func (fs *FileSystem) create(op, p string, build func(leaf string) *Node) error {
	res, err := fs.Resolve(p)
	if err != nil {
		return newPathError(op, p, err)
	}
	if res.Exists() {
		return newPathError(op, p, vshell.ErrAlreadyExists)
	}
	res.Parent.entries[res.Name] = build(res.Name)
	return nil
}

// ReadFile returns the content of the file at p.
func (fs *FileSystem) ReadFile(p string) (string, error) {
	res, err := fs.Resolve(p)
	if err != nil {
		return "", newPathError(OpCat, p, err)
	}
	if !res.Exists() {
		return "", newPathError(OpCat, p, vshell.ErrNotFound)
	}
	if res.Node.IsDir() {
		return "", newPathError(OpCat, p, vshell.ErrIsADirectory)
	}
	return res.Node.content, nil
}

// WriteFile replaces the content of the file at p, creating it when the
// parent directory exists and the leaf does not.
func (fs *FileSystem) WriteFile(p, content string) error {
	res, err := fs.Resolve(p)
	if err != nil {
		return newPathError(OpWrite, p, err)
	}
	if !res.Exists() {
		res.Parent.entries[res.Name] = newFile(res.Name, content)
		return nil
	}
	if res.Node.IsDir() {
		return newPathError(OpWrite, p, vshell.ErrIsADirectory)
	}
	res.Node.content = content
	return nil
}

// RemoveFile detaches the file at p from its parent. Directories are refused
// with ErrIsADirectory; they go through RemoveDirectory.
func (fs *FileSystem) RemoveFile(p string) error {
	res, err := fs.Resolve(p)
	if err != nil {
		return newPathError(OpRm, p, err)
	}
	if !res.Exists() {
		return newPathError(OpRm, p, vshell.ErrNotFound)
	}
	if res.Node.IsDir() {
		return newPathError(OpRm, p, vshell.ErrIsADirectory)
	}
	delete(res.Parent.entries, res.Name)
	return nil
}

// RemoveDirectory detaches the empty directory at p. The root is never removed.
// If the current path runs through the removed directory it moves to the
// removed directory's parent.
func (fs *FileSystem) RemoveDirectory(p string) error {
	res, err := fs.Resolve(p)
	if err != nil {
		return newPathError(OpRmdir, p, err)
	}
	switch {
	case !res.Exists():
		return newPathError(OpRmdir, p, vshell.ErrNotFound)
	case !res.Node.IsDir():
		return newPathError(OpRmdir, p, vshell.ErrNotADirectory)
	case res.IsRoot():
		return newPathError(OpRmdir, p, vshell.ErrPermissionDenied)
	case res.Node.Len() > 0:
		return newPathError(OpRmdir, p, vshell.ErrNotEmpty)
	}

	delete(res.Parent.entries, res.Name)
	if hasPrefix(fs.cwd, res.Path) {
		fs.cwd = append([]string(nil), res.Path[:len(res.Path)-1]...)
	}
	return nil
}

// WalkFunc is called for every node below the walk start, depth-first in
// lexical order. depth is 1 for direct children.
type WalkFunc func(depth int, n *Node) error

// Walk visits the tree under the directory at p. Returning an error from fn stops the walk.
func (fs *FileSystem) Walk(p string, fn WalkFunc) error {
	res, err := fs.Resolve(p)
	if err != nil {
		return newPathError(OpWalk, p, err)
	}
	if !res.Exists() {
		return newPathError(OpWalk, p, vshell.ErrNotFound)
	}
	if !res.Node.IsDir() {
		return newPathError(OpWalk, p, vshell.ErrNotADirectory)
	}
	return walk(res.Node, 1, fn)
}

func walk(dir *Node, depth int, fn WalkFunc) error {
	for _, name := range dir.Names() {
		child := dir.entries[name]
		if err := fn(depth, child); err != nil {
			return err
		}
		if child.IsDir() {
			if err := walk(child, depth+1, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// CountNodes returns the number of nodes in the tree, root included.
func (fs *FileSystem) CountNodes() int {
	count := 1
	_ = walk(fs.root, 1, func(int, *Node) error {
		count++
		return nil
	})
	return count
}

func hasPrefix(path, prefix []string) bool {
	if len(prefix) > len(path) {
		return false
	}
	for i := range prefix {
		if path[i] != prefix[i] {
			return false
		}
	}
	return true
}
