package tui

import (
	"fmt"
	"strings"

	"github.com/casadev/casa/internal/cli"
	"github.com/casadev/casa/internal/tui/components"
	"github.com/casadev/casa/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderProjectionsTab(width, height int) string {
	t := theme.Active
	points := a.result.Projections
	if len(points) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextMuted).
			Render("\n  No projection: horizon is zero years.")
	}

	mode := "nominal"
	if a.showReal {
		mode = "real (year-0 money)"
	}

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Background).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Background)
	altStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Background)
	negStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Background)
	modeStyle := lipgloss.NewStyle().Foreground(t.Yellow).Background(t.Background)

	colFmt := "%4s  %12s  %12s  %12s  %12s  %12s  %12s"
	header := headerStyle.Render(fmt.Sprintf(colFmt,
		"Year", "Property", "Balance", "Invested", "Interest", "Outlay", "Net Worth"))

	// Leave room for the mode line, header, and scroll hint
	visible := height - 4
	if visible < 1 {
		visible = 1
	}
	start := a.projScroll
	if start > len(points)-1 {
		start = len(points) - 1
	}
	end := start + visible
	if end > len(points) {
		end = len(points)
	}

	trend := make([]float64, len(points))
	for i, p := range points {
		if a.showReal {
			trend[i] = p.RealNetWorth
		} else {
			trend[i] = p.NetWorth
		}
	}

	var b strings.Builder
	b.WriteString(modeStyle.Render("values: " + mode))
	b.WriteString("  ")
	b.WriteString(components.Sparkline(trend, t.Green))
	b.WriteString("\n")
	b.WriteString(header)
	b.WriteString("\n")

	for i := start; i < end; i++ {
		p := points[i]
		property, balance := p.PropertyValue, p.Balance
		invested, interest := p.InvestmentValue, p.TotalInterest
		outlay, netWorth := p.CashOutlay, p.NetWorth
		if a.showReal {
			property, balance = p.RealPropertyValue, p.RealBalance
			invested, interest = p.RealInvestmentValue, p.RealTotalInterest
			outlay, netWorth = p.RealCashOutlay, p.RealNetWorth
		}

		style := rowStyle
		if i%2 == 1 {
			style = altStyle
		}
		line := fmt.Sprintf(colFmt,
			fmt.Sprintf("%d", p.Year),
			cli.FormatMoneyCompact(property),
			cli.FormatMoneyCompact(balance),
			cli.FormatMoneyCompact(invested),
			cli.FormatMoneyCompact(interest),
			cli.FormatMoneyCompact(outlay),
			cli.FormatMoneyCompact(netWorth))
		if netWorth < 0 {
			b.WriteString(negStyle.Render(line))
		} else {
			b.WriteString(style.Render(line))
		}
		b.WriteString("\n")
	}

	hint := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Background).
		Render(fmt.Sprintf("years %d-%d of %d  ·  j/k scroll  ·  r toggle real",
			points[start].Year, points[end-1].Year, len(points)))
	b.WriteString(hint)

	block := b.String()
	if lipgloss.Width(block) > width {
		return block
	}
	return lipgloss.NewStyle().Width(width).Render(block)
}
