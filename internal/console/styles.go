package console

import "github.com/charmbracelet/lipgloss"

var (
	rollStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF4444"))

	checkStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5599FF"))

	actionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFD700"))

	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	// WarningStyle renders rejections
	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFAA00"))
)
