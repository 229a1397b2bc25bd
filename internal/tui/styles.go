package tui

import "github.com/charmbracelet/lipgloss"

// Color palette - keeping it minimal and accessible.
var (
	ColorPrimary   = lipgloss.Color("39")  // Blue
	ColorSecondary = lipgloss.Color("245") // Gray
	ColorSuccess   = lipgloss.Color("34")  // Green
	ColorError     = lipgloss.Color("196") // Red
	ColorMuted     = lipgloss.Color("240") // Dark gray
)

var (
	// PromptStyle renders "user@host:/path$".
	PromptStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	// CommandStyle renders a recorded command after its prompt.
	CommandStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	OutputStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	CursorStyle = lipgloss.NewStyle().
			Reverse(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
