package cmd

import (
	"fmt"

	"github.com/casadev/casa/internal/cli"
	"github.com/casadev/casa/internal/projection"

	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Borrow-and-invest vs pay-down-debt comparison",
	Long:  "Compare the mortgage cost of money against the expected market return and show where the spread lands over the horizon.",
	RunE:  runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func runCompare(_ *cobra.Command, _ []string) error {
	s, _ := loadScenario()
	years := horizonYears()

	result, err := projection.Evaluate(s, years)
	if err != nil {
		return fmt.Errorf("evaluate scenario: %w", err)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("CASA  Cost of Money"))
	fmt.Println()

	mortgageRate := result.Rates.EffectiveRate
	marketReturn := s.Investing.Return
	inflation := s.Investing.Inflation
	maxRate := mortgageRate
	if marketReturn > maxRate {
		maxRate = marketReturn
	}
	if inflation > maxRate {
		maxRate = inflation
	}

	bars := []struct {
		label string
		value float64
	}{
		{"Mortgage rate", mortgageRate},
		{"Expected return", marketReturn},
		{"Inflation", inflation},
	}
	if s.Pledge.Amount > 0 {
		bars = append(bars, struct {
			label string
			value float64
		}{"Pledge APR", projection.PledgeAPR * 100})
		if projection.PledgeAPR*100 > maxRate {
			maxRate = projection.PledgeAPR * 100
		}
	}

	for _, bar := range bars {
		fmt.Printf("  %-17s %6s  %s\n",
			bar.label, cli.FormatRate(bar.value), cli.RenderHorizontalBar(bar.value, maxRate, 30))
	}
	fmt.Println()

	spread := marketReturn - mortgageRate
	switch {
	case spread > 1:
		fmt.Printf("  %s\n", cli.Good(fmt.Sprintf(
			"Expected return beats the mortgage rate by %.1fpp: borrowing and investing the surplus compounds in your favor.", spread)))
	case spread > 0:
		fmt.Printf("  %s\n", cli.Warn(fmt.Sprintf(
			"Expected return edges out the mortgage rate by only %.1fpp: the spread is thin for the risk taken.", spread)))
	default:
		fmt.Printf("  %s\n", cli.Risky(fmt.Sprintf(
			"The mortgage costs %.1fpp more than the expected return: paying down debt is the better use of surplus cash.", -spread)))
	}

	if s.Pledge.Amount > 0 {
		fmt.Println()
		fmt.Println(cli.Muted(fmt.Sprintf(
			"  Pledging at %.1f%% avoids selling; selling instead would realize capital gains (typically taxed 19-23%%).",
			projection.PledgeAPR*100)))
	}

	if n := len(result.Projections); n > 0 {
		last := result.Projections[n-1]
		fmt.Println()
		fmt.Printf("  Over %d years this scenario ends at %s net worth (%s real).\n",
			years, cli.FormatMoney(last.NetWorth), cli.FormatMoney(last.RealNetWorth))
	}
	fmt.Println()

	return nil
}
