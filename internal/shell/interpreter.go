package shell

import (
	"fmt"
	"strings"

	"github.com/vvka-141/vshell/internal/vfs"
	"github.com/vvka-141/vshell/pkg/vshell"
)

// Env is the session state a command may read or mutate.
type Env struct {
	FS      *vfs.FileSystem
	History []string
}

// Result is the outcome of executing one line.
type Result struct {
	// Output is the response text; on failure it holds the error message.
	Output string

	// Err is the failure, if any. It wraps a pkg/vshell sentinel.
	Err error

	// Clear asks the session to empty its transcript.
	Clear bool

	// Exit asks the front end to end the session.
	Exit bool

	// Mutated reports that the tree or the current path changed.
	Mutated bool
}

type handlerFunc func(env Env, args []string) (string, error)

type command struct {
	name    string
	usage   string
	summary string
	minArgs int
	mutates bool
	run     handlerFunc
}

// Interpreter dispatches parsed lines to the registered commands.
type Interpreter struct {
	commands map[string]*command
	order    []string
	help     string
}

// NewInterpreter creates an interpreter with the built-in command set.
func NewInterpreter() *Interpreter {
	in := &Interpreter{commands: make(map[string]*command)}
	for _, c := range builtins() {
		in.register(c)
	}
	in.help = in.renderHelp()
	return in
}

func (in *Interpreter) register(c *command) {
	in.commands[c.name] = c
	in.order = append(in.order, c.name)
}

// Commands returns the registered command names in help order.
func (in *Interpreter) Commands() []string {
	return append([]string(nil), in.order...)
}

// Help returns the static help text.
func (in *Interpreter) Help() string {
	return in.help
}

// Execute runs one line against env. Blank input returns a zero Result.
// Errors never escape: they are rendered into Result.Output.
func (in *Interpreter) Execute(env Env, line string) Result {
	cmd, ok := Parse(line)
	if !ok {
		return Result{}
	}

	switch cmd.Name {
	case "clear":
		return Result{Clear: true}
	case "exit":
		return Result{Exit: true}
	case "help":
		return Result{Output: in.help}
	}

	c, found := in.commands[cmd.Name]
	if !found {
		err := fmt.Errorf("%w: %s", vshell.ErrUnknownCommand, cmd.Name)
		return Result{Output: err.Error(), Err: err}
	}
	if len(cmd.Args) < c.minArgs {
		err := fmt.Errorf("%w: %s", vshell.ErrUsage, c.usage)
		return Result{Output: err.Error(), Err: err}
	}

	out, err := c.run(env, cmd.Args)
	if err != nil {
		return Result{Output: err.Error(), Err: err}
	}
	return Result{Output: out, Mutated: c.mutates}
}

func (in *Interpreter) renderHelp() string {
	width := 0
	for _, name := range in.order {
		if n := len(in.commands[name].usage); n > width {
			width = n
		}
	}

	var b strings.Builder
	b.WriteString("Available commands:")
	for _, name := range in.order {
		c := in.commands[name]
		fmt.Fprintf(&b, "\n  %-*s  %s", width, c.usage, c.summary)
	}
	return b.String()
}
