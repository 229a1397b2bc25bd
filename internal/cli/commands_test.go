package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/vshell/internal/persist"
	"github.com/vvka-141/vshell/internal/tui"
	"github.com/vvka-141/vshell/pkg/vshell"
)

// runCLI executes the root command with fresh flag values and returns stdout.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv(tui.EnvNonInteractive, "1")

	rootFlags = globalFlags{}
	execFlags.echo = false
	exportFlags.format = "json"
	resetFlags.force = false

	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	err := rootCmd.Execute()
	return out.String(), err
}

func fileStoreArgs(dir string, args ...string) []string {
	return append(args, "--store", "file", "--state-dir", dir)
}

func exportSnapshot(t *testing.T, dir string) persist.Snapshot {
	t.Helper()
	out, err := runCLI(t, "", fileStoreArgs(dir, "export")...)
	require.NoError(t, err)

	var snap persist.Snapshot
	require.NoError(t, json.Unmarshal([]byte(out), &snap))
	return snap
}

func TestShell_ScriptMode(t *testing.T) {
	dir := t.TempDir()

	out, err := runCLI(t, "pwd\n\nmkdir docs\nls\n", fileStoreArgs(dir)...)

	require.NoError(t, err)
	assert.Equal(t, "/\ndocs\n", out)
}

func TestShell_ScriptModeStopsAtExit(t *testing.T) {
	dir := t.TempDir()

	out, err := runCLI(t, "echo one\nexit\necho two\n", fileStoreArgs(dir)...)

	require.NoError(t, err)
	assert.Equal(t, "one\n", out)
}

func TestShell_ScriptModeFailureExitCode(t *testing.T) {
	dir := t.TempDir()

	out, err := runCLI(t, "cat missing\npwd\n", fileStoreArgs(dir)...)

	require.Error(t, err)
	assert.Equal(t, vshell.ExitGeneralError, vshell.ExitCodeForError(err))
	assert.Equal(t, "cat: missing: no such file or directory\n/\n", out)
}

func TestExec_StatePersistsAcrossRuns(t *testing.T) {
	dir := t.TempDir()

	_, err := runCLI(t, "", fileStoreArgs(dir, "exec", "mkdir docs", "cd docs", `write readme "hello"`)...)
	require.NoError(t, err)

	out, err := runCLI(t, "", fileStoreArgs(dir, "exec", "pwd", "cat readme")...)
	require.NoError(t, err)
	assert.Equal(t, "/docs\nhello\n", out)
}

func TestExec_Echo(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "vshell.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("prompt:\n  user: alice\n  host: box\n"), 0o600))

	out, err := runCLI(t, "", fileStoreArgs(dir, "exec", "--echo", "--config", cfgPath, "pwd")...)

	require.NoError(t, err)
	assert.Equal(t, "alice@box:/$ pwd\n/\n", out)
}

func TestExec_RejectsMultilineArgument(t *testing.T) {
	dir := t.TempDir()

	_, err := runCLI(t, "", fileStoreArgs(dir, "exec", "pwd\nls")...)

	require.Error(t, err)
	assert.Equal(t, vshell.ExitUsageError, vshell.ExitCodeForError(err))
}

func TestExec_RequiresArgument(t *testing.T) {
	_, err := runCLI(t, "", "exec", "--store", "memory")

	require.Error(t, err)
	assert.Equal(t, vshell.ExitUsageError, vshell.ExitCodeForError(err))
}

func TestExport_JSON(t *testing.T) {
	dir := t.TempDir()
	_, err := runCLI(t, "", fileStoreArgs(dir, "exec", "mkdir docs", "cd docs", "write readme hello")...)
	require.NoError(t, err)

	snap := exportSnapshot(t, dir)

	require.NotNil(t, snap.Root)
	assert.Equal(t, "dir", snap.Root.Type)
	assert.Equal(t, []string{"docs"}, snap.Path)
	require.Contains(t, snap.Root.Children, "docs")
	require.Contains(t, snap.Root.Children["docs"].Children, "readme")
	assert.Equal(t, "hello", snap.Root.Children["docs"].Children["readme"].Content)
	assert.Equal(t, []string{"mkdir docs", "cd docs", "write readme hello"}, snap.History)
	assert.NotEmpty(t, snap.Transcript)
}

func TestExport_YAML(t *testing.T) {
	dir := t.TempDir()
	_, err := runCLI(t, "", fileStoreArgs(dir, "exec", "touch notes")...)
	require.NoError(t, err)

	out, err := runCLI(t, "", fileStoreArgs(dir, "export", "--format", "yaml")...)

	require.NoError(t, err)
	assert.Contains(t, out, "root:")
	assert.Contains(t, out, "notes:")
	assert.Contains(t, out, "- touch notes")
}

func TestExport_InvalidFormat(t *testing.T) {
	_, err := runCLI(t, "", "export", "--store", "memory", "--format", "xml")

	require.Error(t, err)
	assert.Equal(t, vshell.ExitUsageError, vshell.ExitCodeForError(err))
}

func TestExport_FreshStore(t *testing.T) {
	snap := exportSnapshot(t, t.TempDir())

	require.NotNil(t, snap.Root)
	assert.Empty(t, snap.Root.Children)
	assert.Empty(t, snap.Path)
	assert.Empty(t, snap.Transcript)
	assert.Empty(t, snap.History)
}

func TestReset_RequiresForceWhenNonInteractive(t *testing.T) {
	dir := t.TempDir()

	_, err := runCLI(t, "", fileStoreArgs(dir, "reset")...)

	require.Error(t, err)
	assert.Equal(t, vshell.ExitUsageError, vshell.ExitCodeForError(err))
}

func TestReset_Force(t *testing.T) {
	dir := t.TempDir()
	_, err := runCLI(t, "", fileStoreArgs(dir, "exec", "mkdir docs", "cd docs")...)
	require.NoError(t, err)

	_, err = runCLI(t, "", fileStoreArgs(dir, "reset", "--force")...)
	require.NoError(t, err)

	snap := exportSnapshot(t, dir)
	assert.Empty(t, snap.Root.Children)
	assert.Empty(t, snap.Path)
	assert.Empty(t, snap.History)
}

func TestConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown backend", []string{"export", "--store", "bogus"}},
		{"missing config file", []string{"export", "--store", "memory", "--config", filepath.Join(t.TempDir(), "nope.yaml")}},
		{"postgres without dsn", []string{"export", "--store", "postgres"}},
		{"namespace escaping state dir", []string{"export", "--store", "file", "--state-dir", t.TempDir(), "--namespace", "../../x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("VSHELL_DSN", "")
			t.Setenv("DATABASE_URL", "")

			_, err := runCLI(t, "", tt.args...)

			require.Error(t, err)
			assert.Equal(t, vshell.ExitConfigError, vshell.ExitCodeForError(err))
		})
	}
}

func TestUnknownFlagIsUsageError(t *testing.T) {
	_, err := runCLI(t, "", "export", "--no-such-flag")

	require.Error(t, err)
	assert.Equal(t, vshell.ExitUsageError, vshell.ExitCodeForError(err))
}

func TestVersionCommand(t *testing.T) {
	out, err := runCLI(t, "", "version")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "vshell "), "got %q", out)
}
