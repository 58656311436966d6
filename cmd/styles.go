package cmd

import "github.com/charmbracelet/lipgloss"

// Styles used across command output. Kept small: conversions and
// validation reports are line-oriented, not full TUIs.
var (
	styleHeading = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	styleLabel = lipgloss.NewStyle().
			Bold(true)

	styleMuted = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	styleSuccess = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	styleWarning = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))
)
