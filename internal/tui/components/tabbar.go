package components

import (
	"strings"

	"github.com/casadev/casa/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name string
	Key  rune
}

// Tabs defines all available tabs.
var Tabs = []Tab{
	{Name: "Overview", Key: 'o'},
	{Name: "Projections", Key: 'p'},
	{Name: "Schedule", Key: 's'},
	{Name: "Inputs", Key: 'i'},
}

// RenderTabBar renders the tab bar with the given active index.
func RenderTabBar(activeIdx int, width int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	dimKeyStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	var parts []string
	for i, tab := range Tabs {
		if i == activeIdx {
			parts = append(parts, activeStyle.Render(tab.Name))
			continue
		}
		// Highlight the shortcut letter, which leads each tab name
		parts = append(parts,
			dimKeyStyle.Render("[")+keyStyle.Render(string(tab.Name[0]))+dimKeyStyle.Render("]")+
				inactiveStyle.Render(tab.Name[1:]))
	}

	bar := " " + strings.Join(parts, "  ")
	rowStyle := lipgloss.NewStyle().Width(width)
	return rowStyle.Render(bar)
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
