package shell

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/vshell/internal/vfs"
	"github.com/vvka-141/vshell/pkg/vshell"
)

func newEnv() Env {
	return Env{FS: vfs.New()}
}

func run(t *testing.T, in *Interpreter, env Env, lines ...string) Result {
	t.Helper()
	var res Result
	for _, line := range lines {
		res = in.Execute(env, line)
	}
	return res
}

func TestInterpreter_Blank(t *testing.T) {
	in := NewInterpreter()
	assert.Equal(t, Result{}, in.Execute(newEnv(), "   "))
}

func TestInterpreter_UnknownCommand(t *testing.T) {
	res := NewInterpreter().Execute(newEnv(), "frobnicate now")

	require.Error(t, res.Err)
	assert.ErrorIs(t, res.Err, vshell.ErrUnknownCommand)
	assert.Equal(t, "command not found: frobnicate", res.Output)
}

func TestInterpreter_MissingArgument(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"cd", "usage: cd <dir>"},
		{"mkdir", "usage: mkdir <name>"},
		{"touch", "usage: touch <name>"},
		{"cat", "usage: cat <path>"},
		{"write", "usage: write <path> <text...>"},
		{"rm", "usage: rm <path>"},
		{"rmdir", "usage: rmdir <path>"},
	}

	in := NewInterpreter()
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			res := in.Execute(newEnv(), tt.line)
			assert.ErrorIs(t, res.Err, vshell.ErrUsage)
			assert.Equal(t, tt.want, res.Output)
			assert.False(t, res.Mutated)
		})
	}
}

func TestInterpreter_ListSortedAndJoined(t *testing.T) {
	in := NewInterpreter()
	env := newEnv()

	res := run(t, in, env, "mkdir zeta", "touch alpha", "mkdir mid", "ls")

	require.NoError(t, res.Err)
	assert.Equal(t, "alpha  mid  zeta", res.Output)
}

func TestInterpreter_ListEmptyDirectoryHasNoOutput(t *testing.T) {
	res := NewInterpreter().Execute(newEnv(), "ls")
	require.NoError(t, res.Err)
	assert.Empty(t, res.Output)
}

func TestInterpreter_ListWithPath(t *testing.T) {
	in := NewInterpreter()
	env := newEnv()

	res := run(t, in, env, "mkdir docs", "touch docs/a", "touch docs/b", "ls docs")
	assert.Equal(t, "a  b", res.Output)
}

func TestInterpreter_Pwd(t *testing.T) {
	in := NewInterpreter()
	env := newEnv()

	assert.Equal(t, "/", in.Execute(env, "pwd").Output)
	run(t, in, env, "mkdir a", "cd a", "mkdir b", "cd b")
	assert.Equal(t, "/a/b", in.Execute(env, "pwd").Output)
}

func TestInterpreter_ErrorsRenderAsOneLine(t *testing.T) {
	tests := []struct {
		name  string
		setup []string
		line  string
		want  string
		kind  error
	}{
		{"cd missing", nil, "cd nowhere", "cd: nowhere: no such file or directory", vshell.ErrNotFound},
		{"cd into file", []string{"touch f"}, "cd f", "cd: f: not a directory", vshell.ErrNotADirectory},
		{"mkdir duplicate", []string{"mkdir d"}, "mkdir d", "mkdir: d: file exists", vshell.ErrAlreadyExists},
		{"touch over dir", []string{"mkdir d"}, "touch d", "touch: d: file exists", vshell.ErrAlreadyExists},
		{"cat missing", nil, "cat x", "cat: x: no such file or directory", vshell.ErrNotFound},
		{"cat dir", []string{"mkdir d"}, "cat d", "cat: d: is a directory", vshell.ErrIsADirectory},
		{"write dir", []string{"mkdir d"}, "write d hi", "write: d: is a directory", vshell.ErrIsADirectory},
		{"rm dir", []string{"mkdir d"}, "rm d", "rm: d: is a directory", vshell.ErrIsADirectory},
		{"rmdir file", []string{"touch f"}, "rmdir f", "rmdir: f: not a directory", vshell.ErrNotADirectory},
		{"rmdir root", nil, "rmdir /", "rmdir: /: permission denied", vshell.ErrPermissionDenied},
		{"rmdir not empty", []string{"mkdir d", "touch d/f"}, "rmdir d", "rmdir: d: directory not empty", vshell.ErrNotEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := NewInterpreter()
			env := newEnv()
			run(t, in, env, tt.setup...)

			res := in.Execute(env, tt.line)

			assert.ErrorIs(t, res.Err, tt.kind)
			assert.Equal(t, tt.want, res.Output)
			assert.NotContains(t, res.Output, "\n")
			assert.False(t, res.Mutated)
		})
	}
}

func TestInterpreter_WriteJoinsTextAndStripsQuotes(t *testing.T) {
	in := NewInterpreter()
	env := newEnv()

	run(t, in, env, "write note hello   big world")
	assert.Equal(t, "hello big world", in.Execute(env, "cat note").Output)

	run(t, in, env, `write note "quoted text"`)
	assert.Equal(t, "quoted text", in.Execute(env, "cat note").Output)

	run(t, in, env, "write note")
	assert.Equal(t, "", in.Execute(env, "cat note").Output)
}

func TestInterpreter_MutationFlag(t *testing.T) {
	in := NewInterpreter()
	env := newEnv()

	assert.True(t, in.Execute(env, "mkdir d").Mutated)
	assert.True(t, in.Execute(env, "cd d").Mutated)
	assert.True(t, in.Execute(env, "touch f").Mutated)
	assert.True(t, in.Execute(env, "write f x").Mutated)
	assert.False(t, in.Execute(env, "cat f").Mutated)
	assert.False(t, in.Execute(env, "ls").Mutated)
	assert.False(t, in.Execute(env, "pwd").Mutated)
	assert.True(t, in.Execute(env, "rm f").Mutated)
	assert.True(t, in.Execute(env, "cd ..").Mutated)
	assert.True(t, in.Execute(env, "rmdir d").Mutated)
}

func TestInterpreter_MetaCommands(t *testing.T) {
	in := NewInterpreter()
	env := newEnv()

	assert.True(t, in.Execute(env, "clear").Clear)
	assert.True(t, in.Execute(env, "exit").Exit)
	assert.Equal(t, "a b", in.Execute(env, "echo a   b").Output)
}

func TestInterpreter_HelpIsConstant(t *testing.T) {
	in := NewInterpreter()
	env := newEnv()

	first := in.Execute(env, "help").Output
	run(t, in, env, "mkdir d", "cd d")
	second := in.Execute(env, "help").Output

	assert.Equal(t, first, second)
	assert.Equal(t, in.Help(), first)
	for _, name := range in.Commands() {
		assert.Contains(t, first, "\n  "+name, "help should list %s", name)
	}
}

func TestInterpreter_History(t *testing.T) {
	in := NewInterpreter()
	env := Env{FS: vfs.New(), History: []string{"ls", "pwd", "history"}}

	res := in.Execute(env, "history")

	assert.Equal(t, "   1  ls\n   2  pwd\n   3  history", res.Output)
}

func TestInterpreter_Tree(t *testing.T) {
	in := NewInterpreter()
	env := newEnv()
	run(t, in, env, "mkdir docs", "touch docs/readme", "mkdir docs/old", "touch top")

	res := in.Execute(env, "tree")

	require.NoError(t, res.Err)
	want := strings.Join([]string{
		"docs/",
		"  old/",
		"  readme",
		"top",
	}, "\n")
	assert.Equal(t, want, res.Output)
}
