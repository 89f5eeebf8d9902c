package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/casadev/casa/internal/cli"
	"github.com/casadev/casa/internal/projection"
	"github.com/casadev/casa/internal/tui/components"
	"github.com/casadev/casa/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverviewTab(width int) string {
	r := a.result

	dti := 0.0
	if a.scn.Profile.NetIncome > 0 {
		dti = r.Payments.TotalMonthlyOutflow / a.scn.Profile.NetIncome * 100
	}

	metrics := []components.Metric{
		{
			Label: "Monthly Payment",
			Value: cli.FormatMoneyCents(r.Payments.Monthly),
			Note:  fmt.Sprintf("stress %s", cli.FormatMoneyCents(r.Payments.Stress)),
		},
		{
			Label: "Total Outflow",
			Value: cli.FormatMoneyCents(r.Payments.TotalMonthlyOutflow),
			Note:  "incl. pledge, debts, upkeep",
		},
		{
			Label: "Debt-to-Income",
			Value: cli.FormatPercent(dti),
			Note:  fmt.Sprintf("of %s net", cli.FormatMoney(a.scn.Profile.NetIncome)),
			Alert: dti > 40,
		},
		{
			Label: "Effective Rate",
			Value: cli.FormatRate(r.Rates.EffectiveRate),
			Note:  fmt.Sprintf("stress %s", cli.FormatRate(r.Rates.StressRate)),
		},
	}

	sections := []string{components.MetricCardRow(metrics, width)}

	sections = append(sections, a.renderCashAtClose(width))

	if a.scn.Profile.NetIncome > 0 {
		sections = append(sections, a.renderAffordabilityCard(width, dti))
	}

	if len(r.Projections) > 0 {
		sections = append(sections, a.renderNetWorthCard(width))
	}

	if a.scn.Pledge.Amount > 0 {
		sections = append(sections, a.renderPledgeCard(width))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a App) renderCashAtClose(width int) string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)

	rows := []struct {
		label string
		value float64
	}{
		{"Down payment", a.scn.DownPayment()},
		{"Closing costs", a.scn.ClosingCostsAmount()},
		{"Invested upfront", a.scn.UpfrontInvestment()},
	}

	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s %s",
			labelStyle.Render(fmt.Sprintf("%-18s", row.label)),
			valueStyle.Render(cli.FormatMoney(row.value)))
	}

	return components.ContentCard("Cash at Close", b.String(), width)
}

// renderAffordabilityCard gauges the outflow against the common 40% DTI
// ceiling lenders apply.
func (a App) renderAffordabilityCard(width int, dti float64) string {
	t := theme.Active

	barW := components.CardInnerWidth(width) - 20
	if barW < 10 {
		barW = 10
	}
	gauge := components.RatioGauge("DTI vs 40%", dti/40, 12, barW)

	left := a.scn.Profile.NetIncome - a.result.Payments.TotalMonthlyOutflow
	note := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).
		Render(fmt.Sprintf("%s left each month after housing", cli.FormatMoney(left)))

	body := lipgloss.JoinVertical(lipgloss.Left, gauge, note)
	return components.ContentCard("Affordability", body, width)
}

func (a App) renderNetWorthCard(width int) string {
	t := theme.Active
	points := a.result.Projections

	values := make([]float64, len(points))
	for i, p := range points {
		if a.showReal {
			values[i] = p.RealNetWorth
		} else {
			values[i] = p.NetWorth
		}
	}

	mode := "nominal"
	if a.showReal {
		mode = "real"
	}

	inner := components.CardInnerWidth(width)
	chartH := 8
	chart := components.BarChart(values, yearLabels(points), t.Green, inner, chartH)

	last := values[len(values)-1]
	caption := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).
		Render(fmt.Sprintf("year %d: %s (%s)", points[len(points)-1].Year, cli.FormatMoney(last), mode))

	body := lipgloss.JoinVertical(lipgloss.Left, chart, "", caption)
	return components.ContentCard("Net Worth", body, width)
}

func (a App) renderPledgeCard(width int) string {
	t := theme.Active
	risk := a.result.Risk

	statusStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface).Bold(true)
	status := "within limit"
	if risk.IsPledgeRisk {
		statusStyle = statusStyle.Foreground(t.Red)
		status = "OVER LIMIT, margin call territory"
	}

	barW := components.CardInnerWidth(width) - 20
	if barW < 10 {
		barW = 10
	}
	ratio := 0.0
	if a.scn.Pledge.LTV > 0 {
		ratio = risk.CurrentLTV / a.scn.Pledge.LTV
	}
	gauge := components.RatioGauge("LTV vs limit", ratio, 12, barW)

	body := lipgloss.JoinVertical(lipgloss.Left,
		statusStyle.Render(fmt.Sprintf("%.1f%% of the %.0f%% limit: %s", risk.CurrentLTV, a.scn.Pledge.LTV, status)),
		gauge,
	)
	return components.ContentCard("Pledge Risk", body, width)
}

func yearLabels(points []projection.Point) []string {
	labels := make([]string, len(points))
	for i, p := range points {
		labels[i] = strconv.Itoa(p.Year)
	}
	return labels
}
