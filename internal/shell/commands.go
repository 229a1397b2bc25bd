package shell

import (
	"fmt"
	"strings"

	"github.com/vvka-141/vshell/internal/vfs"
)

// listSeparator joins names in ls output and completion listings.
const listSeparator = "  "

func builtins() []*command {
	return []*command{
		{name: "ls", usage: "ls [path]", summary: "list directory entries", run: runList},
		{name: "cd", usage: "cd <dir>", summary: "change the current directory", minArgs: 1, mutates: true, run: runChangeDirectory},
		{name: "pwd", usage: "pwd", summary: "print the current directory", run: runWorkingPath},
		{name: "mkdir", usage: "mkdir <name>", summary: "create a directory", minArgs: 1, mutates: true, run: runMakeDirectory},
		{name: "touch", usage: "touch <name>", summary: "create an empty file", minArgs: 1, mutates: true, run: runMakeFile},
		{name: "cat", usage: "cat <path>", summary: "print a file", minArgs: 1, run: runReadFile},
		{name: "write", usage: "write <path> <text...>", summary: "replace a file's content, creating it if needed", minArgs: 1, mutates: true, run: runWriteFile},
		{name: "rm", usage: "rm <path>", summary: "remove a file", minArgs: 1, mutates: true, run: runRemoveFile},
		{name: "rmdir", usage: "rmdir <path>", summary: "remove an empty directory", minArgs: 1, mutates: true, run: runRemoveDirectory},
		{name: "tree", usage: "tree [path]", summary: "show the directory tree", run: runTree},
		{name: "echo", usage: "echo <text...>", summary: "print text", run: runEcho},
		{name: "history", usage: "history", summary: "list submitted commands", run: runHistory},
		{name: "clear", usage: "clear", summary: "clear the screen and its saved transcript"},
		{name: "help", usage: "help", summary: "show this help"},
		{name: "exit", usage: "exit", summary: "leave the shell"},
	}
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func runList(env Env, args []string) (string, error) {
	names, err := env.FS.List(firstArg(args))
	if err != nil {
		return "", err
	}
	return strings.Join(names, listSeparator), nil
}

func runChangeDirectory(env Env, args []string) (string, error) {
	return "", env.FS.ChangeDirectory(args[0])
}

func runWorkingPath(env Env, _ []string) (string, error) {
	return env.FS.WorkingPath(), nil
}

func runMakeDirectory(env Env, args []string) (string, error) {
	return "", env.FS.MakeDirectory(args[0])
}

func runMakeFile(env Env, args []string) (string, error) {
	return "", env.FS.MakeFile(args[0])
}

func runReadFile(env Env, args []string) (string, error) {
	return env.FS.ReadFile(args[0])
}

func runWriteFile(env Env, args []string) (string, error) {
	return "", env.FS.WriteFile(args[0], unquote(strings.Join(args[1:], " ")))
}

// unquote strips one matching pair of surrounding quotes from write content.
func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

func runRemoveFile(env Env, args []string) (string, error) {
	return "", env.FS.RemoveFile(args[0])
}

func runRemoveDirectory(env Env, args []string) (string, error) {
	return "", env.FS.RemoveDirectory(args[0])
}

func runTree(env Env, args []string) (string, error) {
	var lines []string
	err := env.FS.Walk(firstArg(args), func(depth int, n *vfs.Node) error {
		name := n.Name()
		if n.IsDir() {
			name += "/"
		}
		lines = append(lines, strings.Repeat("  ", depth-1)+name)
		return nil
	})
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

func runEcho(_ Env, args []string) (string, error) {
	return strings.Join(args, " "), nil
}

func runHistory(env Env, _ []string) (string, error) {
	lines := make([]string, len(env.History))
	for i, entry := range env.History {
		lines[i] = fmt.Sprintf("%4d  %s", i+1, entry)
	}
	return strings.Join(lines, "\n"), nil
}
