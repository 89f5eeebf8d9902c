package cmd

import (
	"fmt"

	"github.com/casadev/casa/internal/cli"
	"github.com/casadev/casa/internal/scenario"
	"github.com/casadev/casa/internal/sharelink"

	"github.com/spf13/cobra"
)

var flagShareOut string

var shareCmd = &cobra.Command{
	Use:   "share [token]",
	Short: "Encode the scenario as a share token, or decode one",
	Long: "Without arguments, prints a compact URL-safe token for the current scenario. " +
		"With a token argument, decodes it and prints the scenario; unknown or damaged fields fall back to defaults.",
	Args: cobra.MaximumNArgs(1),
	RunE: runShare,
}

func init() {
	shareCmd.Flags().StringVarP(&flagShareOut, "out", "o", "", "Write the decoded scenario to a TOML file")
	rootCmd.AddCommand(shareCmd)
}

func runShare(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		s, _ := loadScenario()
		token := sharelink.Encode(s)
		fmt.Println()
		fmt.Printf("  Token:  %s\n", token)
		fmt.Printf("  Query:  %s\n\n", sharelink.Query(s))
		return nil
	}

	s := sharelink.Decode(args[0], scenario.Default())

	if flagShareOut != "" {
		if err := scenario.SaveFile(flagShareOut, s); err != nil {
			return fmt.Errorf("write scenario: %w", err)
		}
		fmt.Printf("  Wrote %s\n", flagShareOut)
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("CASA  Decoded Scenario"))
	fmt.Println()

	mortType := string(s.Mortgage.Type)
	upfront := "no"
	if s.Investing.InvestUpfront {
		upfront = "yes"
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Rows: [][]string{
			{"Property price", cli.FormatMoney(s.Property.Price)},
			{"Closing costs", cli.FormatRate(s.Property.ClosingCosts)},
			{"Growth", cli.FormatRate(s.Property.Growth)},
			{"Maintenance / yr", cli.FormatMoney(s.Property.Maintenance)},
			{"Taxes / yr", cli.FormatMoney(s.Property.Taxes)},
			{"---"},
			{"Mortgage", fmt.Sprintf("%s over %s, %s", cli.FormatMoney(s.Mortgage.Amount), cli.FormatYears(s.Mortgage.Term), mortType)},
			{"Fixed rate", cli.FormatRate(s.Mortgage.FixedRate)},
			{"Variable current", cli.FormatRate(s.Mortgage.VarCurrent)},
			{"Variable expected", cli.FormatRate(s.Mortgage.VarExpected)},
			{"---"},
			{"Market return", cli.FormatRate(s.Investing.Return)},
			{"Inflation", cli.FormatRate(s.Investing.Inflation)},
			{"Invest upfront", upfront},
			{"---"},
			{"Net income / mo", cli.FormatMoney(s.Profile.NetIncome)},
			{"Age", fmt.Sprintf("%d", s.Profile.Age)},
			{"Other debts / mo", cli.FormatMoney(s.Profile.OtherDebts)},
			{"Pledged amount", cli.FormatMoney(s.Pledge.Amount)},
			{"LTV limit", cli.FormatRate(s.Pledge.LTV)},
		},
	}))
	fmt.Println()
	fmt.Println(cli.Muted("  Use -o scenario.toml to save it."))
	fmt.Println()

	return nil
}
