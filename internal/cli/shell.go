package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/vshell/internal/tui"
)

func runShell(cmd *cobra.Command, _ []string) error {
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

	if tui.IsInteractive() {
		return tui.RunInteractive(session)
	}

	res, err := tui.RunScript(session, cmd.InOrStdin(), cmd.OutOrStdout(), tui.ScriptOptions{})
	if err != nil {
		return err
	}
	env.logger.Verbose("executed %d command(s), %d failed", res.Executed, res.Failed)
	if res.Failed > 0 {
		return fmt.Errorf("%d of %d command(s) failed", res.Failed, res.Executed)
	}
	return nil
}
