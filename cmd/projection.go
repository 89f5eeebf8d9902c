package cmd

import (
	"fmt"

	"github.com/casadev/casa/internal/cli"
	"github.com/casadev/casa/internal/projection"

	"github.com/spf13/cobra"
)

var projectionCmd = &cobra.Command{
	Use:   "projection",
	Short: "Year-by-year wealth projection",
	Long:  "Project property value, mortgage balance, investments, and net worth over the horizon. Use --real for year-0 purchasing power.",
	RunE:  runProjection,
}

func init() {
	rootCmd.AddCommand(projectionCmd)
}

func runProjection(_ *cobra.Command, _ []string) error {
	s, _ := loadScenario()
	years := horizonYears()

	result, err := projection.Evaluate(s, years)
	if err != nil {
		return fmt.Errorf("evaluate scenario: %w", err)
	}
	points := result.Projections
	if len(points) == 0 {
		fmt.Println("\n  No projection: horizon is zero years.")
		return nil
	}

	mode := "nominal"
	if flagReal {
		mode = "real, year-0 money"
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("CASA  Projection  %dy (%s)", years, mode)))
	fmt.Println()

	rows := make([][]string, 0, len(points))
	netWorth := make([]float64, 0, len(points))
	for _, p := range points {
		property, balance := p.PropertyValue, p.Balance
		invested, interest := p.InvestmentValue, p.TotalInterest
		outlay, nw := p.CashOutlay, p.NetWorth
		if flagReal {
			property, balance = p.RealPropertyValue, p.RealBalance
			invested, interest = p.RealInvestmentValue, p.RealTotalInterest
			outlay, nw = p.RealCashOutlay, p.RealNetWorth
		}
		netWorth = append(netWorth, nw)
		rows = append(rows, []string{
			fmt.Sprintf("%d", p.Year),
			cli.FormatMoneyCompact(property),
			cli.FormatMoneyCompact(balance),
			cli.FormatMoneyCompact(invested),
			cli.FormatMoneyCompact(interest),
			cli.FormatMoneyCompact(outlay),
			cli.FormatMoneyCompact(nw),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Year", "Property", "Balance", "Invested", "Interest", "Outlay", "Net Worth"},
		Rows:    rows,
	}))

	fmt.Println()
	fmt.Printf("  Net worth  %s\n", cli.RenderSparkline(netWorth))
	fmt.Printf("  %s → %s over %d years\n\n",
		cli.FormatMoney(netWorth[0]), cli.FormatMoney(netWorth[len(netWorth)-1]), years)

	return nil
}
