package cmd

import (
	"fmt"
	"os"

	"github.com/casadev/casa/internal/config"
	"github.com/casadev/casa/internal/projection"
	"github.com/casadev/casa/internal/scenario"

	"github.com/spf13/cobra"
)

var (
	flagScenario string
	flagYears    int
	flagReal     bool
	flagQuiet    bool
)

var rootCmd = &cobra.Command{
	Use:   "casa",
	Short: "Buy-vs-invest home financing projections",
	Long:  "Model a property purchase: mortgage payments, amortization, and long-run net worth under inflation.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagScenario, "scenario", "s", "", "Scenario TOML file")
	rootCmd.PersistentFlags().IntVarP(&flagYears, "years", "y", 0, "Projection horizon in years (0 = configured default)")
	rootCmd.PersistentFlags().BoolVar(&flagReal, "real", false, "Show inflation-adjusted (year-0) money")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress notes on stderr")
}

// loadScenario is the shared input path used by all commands. Resolution
// order: --scenario flag, then the configured scenario_path, then the
// built-in defaults. A broken file degrades to defaults with a note
// rather than failing the run.
func loadScenario() (scenario.Scenario, string) {
	path := flagScenario
	if path == "" {
		if cfg, err := config.Load(); err == nil {
			path = cfg.General.ScenarioPath
		}
	}
	if path == "" {
		if !flagQuiet {
			fmt.Fprintln(os.Stderr, "  Using built-in defaults (no scenario file; see casa init)")
		}
		return scenario.Default(), ""
	}

	s, err := scenario.LoadFile(path)
	if err != nil && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Note: %s\n", err)
	}
	return s, path
}

// horizonYears resolves the projection horizon: flag first, then the
// configured default, then the built-in default.
func horizonYears() int {
	if flagYears > 0 {
		return flagYears
	}
	if cfg, err := config.Load(); err == nil && cfg.General.DefaultYears > 0 {
		return cfg.General.DefaultYears
	}
	return projection.DefaultYears
}
