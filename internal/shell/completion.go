package shell

import (
	"strings"

	"github.com/vvka-141/vshell/internal/vfs"
)

// completionCandidates returns the names, in sorted order, in dir that start with prefix.
func completionCandidates(dir *vfs.Node, prefix string) []string {
	if dir == nil || !dir.IsDir() {
		return nil
	}
	var matches []string
	for _, name := range dir.Names() {
		if strings.HasPrefix(name, prefix) {
			matches = append(matches, name)
		}
	}
	return matches
}

// splitCompletable reports whether line has the shape "<command> <partial>"
// and returns both parts.
func splitCompletable(line string) (name, partial string, ok bool) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return "", "", false
	}
	return fields[0], fields[1], true
}
