package components

import (
	"fmt"

	"github.com/casadev/casa/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left,
// the scenario source and horizon on the right.
func RenderStatusBar(width int, scenarioPath string, years int, message string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [e]dit  [w]rite  [r]eal/nominal  [?]help  [q]uit"
	if message != "" {
		left = " " + message
	}

	src := scenarioPath
	if src == "" {
		src = "defaults"
	}
	right := fmt.Sprintf("%s · %dy ", src, years)

	// Pad middle
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
