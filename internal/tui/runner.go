package tui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/vshell/internal/shell"
)

// RunInteractive runs the full-screen shell until the user quits.
func RunInteractive(s *shell.Session) error {
	p := tea.NewProgram(NewModel(s), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// ScriptOptions controls RunScript output.
type ScriptOptions struct {
	// Echo prints "prompt command" before each response.
	Echo bool
}

// ScriptResult summarizes a RunScript call.
type ScriptResult struct {
	Executed int
	Failed   int
	Exited   bool
}

// RunScript executes one command per line of r, writing responses to w.
// Lines may be of any length. It stops at EOF or at an exit command.
func RunScript(s *shell.Session, r io.Reader, w io.Writer, opts ScriptOptions) (ScriptResult, error) {
	var result ScriptResult
	reader := bufio.NewReader(r)
	for {
		raw, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return result, fmt.Errorf("failed to read commands: %w", readErr)
		}

		if line := strings.TrimSpace(raw); line != "" {
			if opts.Echo {
				fmt.Fprintf(w, "%s %s\n", s.Prompt(), line)
			}

			res := s.Execute(line)
			result.Executed++
			if res.Output != "" {
				fmt.Fprintln(w, res.Output)
			}
			if res.Err != nil {
				result.Failed++
			}
			if res.Exit {
				result.Exited = true
				return result, nil
			}
		}

		if readErr == io.EOF {
			return result, nil
		}
	}
}
