package tui

import (
	"fmt"
	"strings"

	"github.com/casadev/casa/internal/cli"
	"github.com/casadev/casa/internal/tui/components"
	"github.com/casadev/casa/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

type inputLine struct {
	label string
	value string
}

func (a App) renderInputsTab(width int) string {
	s := a.scn

	mortType := "fixed"
	if s.Mortgage.Type != "" {
		mortType = string(s.Mortgage.Type)
	}
	upfront := "no"
	if s.Investing.InvestUpfront {
		upfront = "yes"
	}

	halves := components.LayoutRow(width, 2)

	left := lipgloss.JoinVertical(lipgloss.Left,
		inputCard("Property", halves[0], []inputLine{
			{"Price", cli.FormatMoney(s.Property.Price)},
			{"Closing costs", cli.FormatRate(s.Property.ClosingCosts)},
			{"Annual growth", cli.FormatRate(s.Property.Growth)},
			{"Maintenance / yr", cli.FormatMoney(s.Property.Maintenance)},
			{"Taxes / yr", cli.FormatMoney(s.Property.Taxes)},
		}),
		inputCard("Investing", halves[0], []inputLine{
			{"Market return", cli.FormatRate(s.Investing.Return)},
			{"Inflation", cli.FormatRate(s.Investing.Inflation)},
			{"Invest upfront", upfront},
		}),
	)

	right := lipgloss.JoinVertical(lipgloss.Left,
		inputCard("Mortgage", halves[1], []inputLine{
			{"Amount", cli.FormatMoney(s.Mortgage.Amount)},
			{"Term", cli.FormatYears(s.Mortgage.Term)},
			{"Type", mortType},
			{"Fixed rate", cli.FormatRate(s.Mortgage.FixedRate)},
			{"Variable current", cli.FormatRate(s.Mortgage.VarCurrent)},
			{"Variable expected", cli.FormatRate(s.Mortgage.VarExpected)},
		}),
		inputCard("Profile & Pledge", halves[1], []inputLine{
			{"Net income / mo", cli.FormatMoney(s.Profile.NetIncome)},
			{"Age", fmt.Sprintf("%d", s.Profile.Age)},
			{"Other debts / mo", cli.FormatMoney(s.Profile.OtherDebts)},
			{"Pledged amount", cli.FormatMoney(s.Pledge.Amount)},
			{"LTV limit", cli.FormatRate(s.Pledge.LTV)},
		}),
	)

	t := theme.Active
	hint := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Background).
		Render("  e to edit · w to write changes back to the scenario file")

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, left, right),
		hint,
	)
}

func inputCard(title string, width int, lines []inputLine) string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)

	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s %s",
			labelStyle.Render(fmt.Sprintf("%-18s", l.label)),
			valueStyle.Render(l.value))
	}
	return components.ContentCard(title, b.String(), width)
}
