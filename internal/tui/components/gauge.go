package components

import (
	"fmt"

	"github.com/casadev/casa/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForRatio returns green/yellow/orange/red based on how close a
// ratio sits to its limit.
func ColorForRatio(ratio float64) string {
	t := theme.Active
	switch {
	case ratio >= 0.9:
		return string(t.Red)
	case ratio >= 0.7:
		return string(t.Orange)
	case ratio >= 0.5:
		return string(t.Yellow)
	default:
		return string(t.Green)
	}
}

// RatioGauge renders a labeled utilization bar with a percentage, used for
// debt-to-income and pledge LTV. ratio is 0-1 of the relevant limit.
func RatioGauge(label string, ratio float64, labelW, barWidth int) string {
	t := theme.Active

	shown := ratio
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	bar := progress.New(
		progress.WithSolidFill(ColorForRatio(ratio)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorForRatio(ratio))).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		spaceStyle.Render(" ") +
		bar.ViewAs(ratio) +
		spaceStyle.Render(" ") +
		pctStyle.Render(fmt.Sprintf("%3.0f%%", shown*100))
}
