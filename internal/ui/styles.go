package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tgrgds/sshs/internal/util"
)

type styles struct {
	prompt   lipgloss.Style
	title    lipgloss.Style
	cursor   lipgloss.Style
	selected lipgloss.Style
	item     lipgloss.Style
	done     lipgloss.Style
	dim      lipgloss.Style
}

func newStyles(accent string) styles {
	c := lipgloss.Color(util.DefaultString(accent, util.DefaultAccentColor))
	return styles{
		prompt:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		title:    lipgloss.NewStyle().Bold(true),
		cursor:   lipgloss.NewStyle().Bold(true).Foreground(c),
		selected: lipgloss.NewStyle().Foreground(c),
		item:     lipgloss.NewStyle(),
		done:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	}
}

// ConnectingLine is the confirmation printed before ssh starts, with the
// chosen label in the accent colour.
func ConnectingLine(label, accent string) string {
	return "Connecting to " + newStyles(accent).selected.Render(label)
}
