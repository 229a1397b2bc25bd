package cli

import (
	"github.com/spf13/cobra"
)

// globalFlags holds the persistent flag values shared by every command.
type globalFlags struct {
	verbose    bool
	configPath string
	store      string
	stateDir   string
	dsn        string
	namespace  string
}

var rootFlags globalFlags

var rootCmd = &cobra.Command{
	Use:   "vshell",
	Short: "A small in-memory Unix-like shell with persistent state",
	Long: `vshell is a terminal-style shell over a virtual filesystem that lives in
memory and is saved after every change.

Run without arguments for the interactive shell. When stdin is not a
terminal, vshell reads one command per line and prints the responses.

Commands inside the shell:
  ls [path]  cd <dir>  pwd  mkdir <name>  touch <name>  cat <path>
  write <path> <text...>  rm <path>  rmdir <path>  tree [path]
  echo <text...>  history  clear  help  exit

State is kept in a store: a directory of JSON files (default), PostgreSQL,
or memory only. See vshell.yaml, VSHELL_* environment variables and the
flags below.

Exit Codes:
  0  - Success
  1  - General error (a scripted command failed)
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - State store unavailable`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runShell,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&rootFlags.verbose, "verbose", "v", false, "Enable verbose output for all commands")
	flags.StringVarP(&rootFlags.configPath, "config", "c", "", "Path to vshell.yaml (default: ./vshell.yaml if present)")
	flags.StringVar(&rootFlags.store, "store", "", "State store backend: file, memory or postgres")
	flags.StringVar(&rootFlags.stateDir, "state-dir", "", "Directory for the file store")
	flags.StringVar(&rootFlags.dsn, "dsn", "", "PostgreSQL connection string for the postgres store")
	flags.StringVar(&rootFlags.namespace, "namespace", "", "Separate saved sessions under this name")

	_ = rootCmd.RegisterFlagCompletionFunc("store", completeStoreBackends)
	_ = rootCmd.MarkPersistentFlagDirname("state-dir")
	_ = rootCmd.MarkPersistentFlagFilename("config", "yaml", "yml")
}
