package cmd

import (
	"fmt"

	"github.com/casadev/casa/internal/cli"
	"github.com/casadev/casa/internal/fincalc"
	"github.com/casadev/casa/internal/projection"

	"github.com/spf13/cobra"
)

var (
	flagScheduleYear int
	flagScheduleAll  bool
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Amortization schedule, aggregated by year",
	Long:  "Month-by-month mortgage payoff. Shows yearly totals by default; use --year for one year's months or --all for every month.",
	RunE:  runSchedule,
}

func init() {
	scheduleCmd.Flags().IntVar(&flagScheduleYear, "year", 0, "Show monthly rows for this loan year")
	scheduleCmd.Flags().BoolVar(&flagScheduleAll, "all", false, "Show every month")
	rootCmd.AddCommand(scheduleCmd)
}

func runSchedule(_ *cobra.Command, _ []string) error {
	s, _ := loadScenario()

	result, err := projection.Evaluate(s, horizonYears())
	if err != nil {
		return fmt.Errorf("evaluate scenario: %w", err)
	}

	entries := fincalc.AmortizationSchedule(s, result.Payments.Monthly, result.Rates.MonthlyRate)
	if len(entries) == 0 {
		fmt.Println("\n  No schedule: the mortgage has no payments.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("CASA  Amortization Schedule"))
	fmt.Println()

	switch {
	case flagScheduleAll:
		printMonthlySchedule(entries)
	case flagScheduleYear > 0:
		printScheduleYear(entries, flagScheduleYear)
	default:
		printYearlySchedule(entries)
	}

	last := entries[len(entries)-1]
	totalInterest := 0.0
	for _, e := range entries {
		totalInterest += e.Interest
	}
	fmt.Printf("  Paid off in month %d (year %d), total interest %s\n\n",
		last.Month, last.Year, cli.FormatMoney(totalInterest))

	return nil
}

func printYearlySchedule(entries []fincalc.AmortizationEntry) {
	type yearAgg struct {
		payment, principal, interest, endBalance float64
	}

	years := []int{}
	agg := map[int]*yearAgg{}
	for _, e := range entries {
		a, ok := agg[e.Year]
		if !ok {
			a = &yearAgg{}
			agg[e.Year] = a
			years = append(years, e.Year)
		}
		a.payment += e.Payment
		a.principal += e.Principal
		a.interest += e.Interest
		a.endBalance = e.Balance
	}

	rows := make([][]string, 0, len(years))
	for _, y := range years {
		a := agg[y]
		rows = append(rows, []string{
			fmt.Sprintf("%d", y),
			cli.FormatMoney(a.payment),
			cli.FormatMoney(a.principal),
			cli.FormatMoney(a.interest),
			cli.FormatMoney(a.endBalance),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Year", "Paid", "Principal", "Interest", "End Balance"},
		Rows:    rows,
	}))
	fmt.Println()
}

func printScheduleYear(entries []fincalc.AmortizationEntry, year int) {
	rows := [][]string{}
	for _, e := range entries {
		if e.Year == year {
			rows = append(rows, monthRow(e))
		}
	}
	if len(rows) == 0 {
		fmt.Printf("  No payments in loan year %d.\n\n", year)
		return
	}
	printMonthTable(rows)
}

func printMonthlySchedule(entries []fincalc.AmortizationEntry) {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, monthRow(e))
	}
	printMonthTable(rows)
}

func monthRow(e fincalc.AmortizationEntry) []string {
	return []string{
		fmt.Sprintf("%d", e.Month),
		fmt.Sprintf("%d", e.Year),
		cli.FormatMoneyCents(e.Payment),
		cli.FormatMoneyCents(e.Principal),
		cli.FormatMoneyCents(e.Interest),
		cli.FormatMoneyCents(e.Balance),
	}
}

func printMonthTable(rows [][]string) {
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Month", "Year", "Payment", "Principal", "Interest", "Balance"},
		Rows:    rows,
	}))
	fmt.Println()
}
