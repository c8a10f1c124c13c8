package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	field  lipgloss.Style
	strip  lipgloss.Style
	header lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	graph  lipgloss.Style
	panel  lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		field: lipgloss.NewStyle().Foreground(t.Primary),
		strip: lipgloss.NewStyle().Foreground(t.Secondary),
		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Accent).
			MarginBottom(1),
		label: lipgloss.NewStyle().Foreground(t.Muted).Width(10),
		value: lipgloss.NewStyle().Foreground(t.Secondary),
		graph: lipgloss.NewStyle().Foreground(t.Accent).Padding(1, 0),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 1),
	}
}

// ProgressBar renders a fixed-width bar for percent in [0, 1].
func ProgressBar(percent float64, width int) string {
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
