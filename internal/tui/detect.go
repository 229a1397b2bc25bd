package tui

import (
	"os"

	"golang.org/x/term"
)

// Mode represents the interaction mode for vshell.
type Mode int

const (
	// ModeNonInteractive reads commands line by line from stdin.
	ModeNonInteractive Mode = iota
	// ModeInteractive runs the full-screen shell.
	ModeInteractive
)

// EnvNonInteractive forces script mode when set to "1".
const EnvNonInteractive = "VSHELL_NON_INTERACTIVE"

// DetectMode determines whether vshell should run the full-screen shell.
//
// Returns ModeNonInteractive if:
//   - VSHELL_NON_INTERACTIVE=1 is set
//   - CI is set (common CI/CD convention)
//   - stdin or stdout is not a terminal (piped input, redirected output)
//
// Returns ModeInteractive otherwise.
func DetectMode() Mode {
	if os.Getenv(EnvNonInteractive) == "1" {
		return ModeNonInteractive
	}
	if os.Getenv("CI") != "" {
		return ModeNonInteractive
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return ModeNonInteractive
	}
	return ModeInteractive
}

// IsInteractive is a convenience function that returns true if running in interactive mode.
func IsInteractive() bool {
	return DetectMode() == ModeInteractive
}
