package tui

import (
	"fmt"
	"strings"

	"github.com/casadev/casa/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderScheduleTab(width, height int) string {
	t := theme.Active
	entries := a.schedule
	if len(entries) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextMuted).
			Render("\n  No schedule: the mortgage has no payments.")
	}

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Background).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Background)
	altStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Background)

	colFmt := "%6s %5s  %12s  %12s  %12s  %14s"
	header := headerStyle.Render(fmt.Sprintf(colFmt,
		"Month", "Year", "Payment", "Principal", "Interest", "Balance"))

	visible := height - 3
	if visible < 1 {
		visible = 1
	}
	start := a.schedScroll
	if start > len(entries)-1 {
		start = len(entries) - 1
	}
	end := start + visible
	if end > len(entries) {
		end = len(entries)
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")

	for i := start; i < end; i++ {
		e := entries[i]
		style := rowStyle
		if e.Year%2 == 0 {
			style = altStyle
		}
		line := fmt.Sprintf(colFmt,
			fmt.Sprintf("%d", e.Month),
			fmt.Sprintf("%d", e.Year),
			fmt.Sprintf("%.2f", e.Payment),
			fmt.Sprintf("%.2f", e.Principal),
			fmt.Sprintf("%.2f", e.Interest),
			fmt.Sprintf("%.2f", e.Balance))
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	hint := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Background).
		Render(fmt.Sprintf("months %d-%d of %d  ·  j/k scroll  ·  ^d/^u pages",
			entries[start].Month, entries[end-1].Month, len(entries)))
	b.WriteString(hint)

	block := b.String()
	if lipgloss.Width(block) > width {
		return block
	}
	return lipgloss.NewStyle().Width(width).Render(block)
}
