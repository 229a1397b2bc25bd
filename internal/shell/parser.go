package shell

import "strings"

// Command is one parsed input line.
type Command struct {
	Name string
	Args []string
	Raw  string
}

// Parse splits a line on runs of whitespace. The first token is the command
// name and the rest are positional arguments; there is no quoting or
// escaping. ok is false for blank input.
func Parse(line string) (cmd Command, ok bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, false
	}
	return Command{
		Name: fields[0],
		Args: fields[1:],
		Raw:  strings.TrimSpace(line),
	}, true
}
