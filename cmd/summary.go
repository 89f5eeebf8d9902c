package cmd

import (
	"fmt"

	"github.com/casadev/casa/internal/cli"
	"github.com/casadev/casa/internal/projection"
	"github.com/casadev/casa/internal/scenario"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Scenario summary: payments, affordability, milestones",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	s, _ := loadScenario()
	years := horizonYears()

	result, err := projection.Evaluate(s, years)
	if err != nil {
		return fmt.Errorf("evaluate scenario: %w", err)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("CASA  Financing Summary"))
	fmt.Println()

	printPayments(s, result)
	printAffordability(s, result)
	printCashAtClose(s)
	printMilestones(result, years)
	printPledgeAlert(s, result)

	return nil
}

func printPayments(s scenario.Scenario, r projection.Result) {
	mortType := string(s.Mortgage.Type)
	if mortType == "" {
		mortType = string(scenario.MortgageFixed)
	}

	rows := [][]string{
		{"Mortgage", fmt.Sprintf("%s over %s, %s", cli.FormatMoney(s.Mortgage.Amount), cli.FormatYears(s.Mortgage.Term), mortType)},
		{"Effective rate", cli.FormatRate(r.Rates.EffectiveRate)},
		{"Stress rate", cli.FormatRate(r.Rates.StressRate)},
		{"---"},
		{"Monthly payment", cli.FormatMoneyCents(r.Payments.Monthly)},
		{"Stress payment", cli.FormatMoneyCents(r.Payments.Stress)},
		{"Property upkeep", cli.FormatMoneyCents(r.Payments.TotalMonthlyProperty)},
		{"Total monthly outflow", cli.FormatMoneyCents(r.Payments.TotalMonthlyOutflow)},
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title: "Payments",
		Rows:  rows,
	}))
	fmt.Println()
}

func printAffordability(s scenario.Scenario, r projection.Result) {
	if s.Profile.NetIncome <= 0 {
		return
	}

	dti := r.Payments.TotalMonthlyOutflow / s.Profile.NetIncome * 100
	stressDTI := (r.Payments.TotalMonthlyOutflow - r.Payments.Monthly + r.Payments.Stress) /
		s.Profile.NetIncome * 100
	left := s.Profile.NetIncome - r.Payments.TotalMonthlyOutflow

	rows := [][]string{
		{"Net monthly income", cli.FormatMoney(s.Profile.NetIncome)},
		{"Debt-to-income", cli.FormatPercent(dti)},
		{"Debt-to-income (stress)", cli.FormatPercent(stressDTI)},
		{"Left after housing", cli.FormatMoney(left)},
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title: "Affordability",
		Rows:  rows,
	}))
	fmt.Printf("  DTI vs 40%% ceiling  %s\n", cli.RenderGauge(dti/40, 30))
	fmt.Println()
}

func printCashAtClose(s scenario.Scenario) {
	rows := [][]string{
		{"Property price", cli.FormatMoney(s.Property.Price)},
		{"Down payment", cli.FormatMoney(s.DownPayment())},
		{"Closing costs", cli.FormatMoney(s.ClosingCostsAmount())},
	}
	if s.Investing.InvestUpfront {
		rows = append(rows, []string{"Invested upfront", cli.FormatMoney(s.UpfrontInvestment())})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title: "Cash at Close",
		Rows:  rows,
	}))
	fmt.Println()
}

// printMilestones shows year snapshots at 5-year marks plus the horizon.
func printMilestones(r projection.Result, years int) {
	if len(r.Projections) == 0 {
		return
	}

	marks := []int{5, 10, 15, 20}
	seen := map[int]bool{}
	rows := [][]string{}
	for _, m := range append(marks, years) {
		if m <= 0 || m > len(r.Projections) || seen[m] {
			continue
		}
		seen[m] = true
		p := r.Projections[m-1]
		rows = append(rows, []string{
			fmt.Sprintf("%d", p.Year),
			cli.FormatMoneyCompact(p.Balance),
			cli.FormatMoneyCompact(p.TotalInterest),
			cli.FormatMoneyCompact(p.CashOutlay),
			cli.FormatMoneyCompact(p.NetWorth),
			cli.FormatMoneyCompact(p.RealNetWorth),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Milestones",
		Headers: []string{"Year", "Balance", "Interest", "Outlay", "Net Worth", "Real NW"},
		Rows:    rows,
	}))
	fmt.Println()
}

func printPledgeAlert(s scenario.Scenario, r projection.Result) {
	if s.Pledge.Amount <= 0 {
		return
	}

	line := fmt.Sprintf("  Pledge LTV %.1f%% of %.0f%% limit: ", r.Risk.CurrentLTV, s.Pledge.LTV)
	if r.Risk.IsPledgeRisk {
		fmt.Println(line + cli.Risky("OVER LIMIT, a market dip can trigger a margin call"))
	} else {
		fmt.Println(line + cli.Good("within limit"))
	}
	fmt.Println()
}
