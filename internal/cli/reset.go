package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/vshell/internal/tui"
	"github.com/vvka-141/vshell/internal/ui"
	"github.com/vvka-141/vshell/pkg/vshell"
)

var resetFlags struct {
	force bool
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the saved session",
	Long: `Delete the saved tree, transcript and history. The next shell starts
with an empty root directory. File store backups are kept.

Asks you to type the session name (the namespace, "default" unless set)
to confirm. --force skips the question; in non-interactive mode --force
is required.`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolVar(&resetFlags.force, "force", false, "Do not ask for confirmation")
}

func runReset(cmd *cobra.Command, _ []string) error {
	interactive := tui.IsInteractive()
	if !resetFlags.force && !interactive {
		return fmt.Errorf("required flag \"force\" not set: refusing to reset without --force in non-interactive mode")
	}

	ctx := cmd.Context()
	env, err := openEnvironment(ctx, rootFlags)
	if err != nil {
		return err
	}
	defer env.Close()

	namespace := env.cfg.Store.Namespace
	if namespace == "" {
		namespace = vshell.DefaultNamespace
	}

	approved, err := newResetApprover(cmd, interactive).RequestApproval(ctx, namespace)
	if err != nil {
		return err
	}
	if !approved {
		env.logger.Info("Reset cancelled.")
		return nil
	}

	if err := env.adapter.Reset(ctx); err != nil {
		return err
	}
	env.logger.Info("Saved session %q deleted.", namespace)
	return nil
}

func newResetApprover(cmd *cobra.Command, interactive bool) vshell.Approver {
	if resetFlags.force {
		if interactive {
			return ui.NewForcedApprover(vshell.DefaultForceResetCountdown)
		}
		return ui.NewForcedApprover(0)
	}
	return ui.NewInteractiveApprover(cmd.InOrStdin(), cmd.ErrOrStderr())
}
