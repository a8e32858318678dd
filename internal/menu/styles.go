package menu

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorSuccess = lipgloss.Color("#10B981")
	colorFailure = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")

	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F9FAFB")).
			Background(colorPrimary).
			Padding(0, 1)

	styleSelected = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleLabel       = lipgloss.NewStyle().Bold(true)
	styleLabelFocus  = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	styleHelp        = lipgloss.NewStyle().Foreground(colorMuted)
	styleError       = lipgloss.NewStyle().Foreground(colorFailure)
	styleResultFrame = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorMuted).
				Padding(0, 1)
	styleDone = lipgloss.NewStyle().Foreground(colorSuccess)
)
