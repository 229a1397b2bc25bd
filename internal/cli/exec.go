package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/vshell/internal/tui"
)

var execFlags struct {
	echo bool
}

var execCmd = &cobra.Command{
	Use:   "exec <command>...",
	Short: "Run shell commands against the saved session",
	Long: `Run each argument as one shell command, in order, against the saved
session, and print the responses. Changes are saved as they happen.

Quote each command so it reaches vshell as a single argument:

  vshell exec "mkdir docs" "cd docs" "write readme hello" "ls"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExec,
}

func init() {
	rootCmd.AddCommand(execCmd)
	execCmd.Flags().BoolVarP(&execFlags.echo, "echo", "e", false, "Print the prompt and command before each response")
}

func runExec(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		if strings.Contains(arg, "\n") {
			return fmt.Errorf("invalid argument %q: a command must be a single line", arg)
		}
	}

	ctx := cmd.Context()
	env, err := openEnvironment(ctx, rootFlags)
	if err != nil {
		return err
	}
	defer env.Close()

	session, err := env.newSession(ctx)
	if err != nil {
		return err
	}

	script := strings.NewReader(strings.Join(args, "\n"))
	res, err := tui.RunScript(session, script, cmd.OutOrStdout(), tui.ScriptOptions{Echo: execFlags.echo})
	if err != nil {
		return err
	}
	if res.Failed > 0 {
		return fmt.Errorf("%d of %d command(s) failed", res.Failed, res.Executed)
	}
	return nil
}
