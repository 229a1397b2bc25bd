package vshell

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess      = 0  // Command completed successfully
	ExitGeneralError = 1  // Unknown or unclassified error
	ExitUsageError   = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic        = 3  // Internal panic (unexpected crash)
	ExitConfigError  = 10 // Invalid configuration
	ExitStoreError   = 11 // Persistence backend could not be opened
)

// Store keys. The layout mirrors the browser storage keys the shell has
// always used so exported snapshots stay recognizable.
const (
	KeyFileSystem = "filesystem_state"
	KeyTranscript = "terminal_transcript"
	KeyHistory    = "terminal_history"
)

const (
	// DefaultUser is the user name rendered in the prompt.
	DefaultUser = "user"

	// DefaultHost is the host name rendered in the prompt.
	DefaultHost = "host"

	// DefaultNamespace partitions rows in shared backends such as Postgres.
	DefaultNamespace = "default"

	// DefaultBackupCount is how many timestamped backups the file store keeps per key.
	DefaultBackupCount = 5

	// DefaultStoreTimeout bounds a single persistence write.
	DefaultStoreTimeout = 5 * time.Second

	// DefaultRetryInitialDelay is the initial delay before the first connection retry.
	DefaultRetryInitialDelay = 100 * time.Millisecond

	// DefaultRetryMaxDelay is the maximum delay between connection retries.
	DefaultRetryMaxDelay = 10 * time.Second

	// DefaultRetryMaxAttempts is the maximum number of connection retries.
	DefaultRetryMaxAttempts = 3

	// PathSeparator separates path segments; the root directory is named by it.
	PathSeparator = "/"
)

// DefaultForceResetCountdown is how long `reset --force` waits on a terminal
// before deleting, giving the user a chance to press Ctrl+C.
const DefaultForceResetCountdown = 3 * time.Second
