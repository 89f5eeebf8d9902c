package cmd

import (
	"fmt"
	"os"

	"github.com/casadev/casa/internal/cli"
	"github.com/casadev/casa/internal/config"
	"github.com/casadev/casa/internal/scenario"

	"github.com/spf13/cobra"
)

var flagInitForce bool

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a starter scenario file with default values",
	Long:  "Creates a scenario TOML file (default casa.toml) seeded with the built-in defaults and remembers it as the default scenario.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&flagInitForce, "force", "f", false, "Overwrite an existing file")
	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, args []string) error {
	path := "casa.toml"
	if len(args) == 1 {
		path = args[0]
	}

	if _, err := os.Stat(path); err == nil && !flagInitForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := scenario.SaveFile(path, scenario.Default()); err != nil {
		return fmt.Errorf("write scenario: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}
	cfg.General.ScenarioPath = path
	if err := config.Save(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "  Note: could not save config: %s\n", err)
	}

	fmt.Printf("  Wrote %s and set it as the default scenario.\n", path)
	fmt.Println(cli.Muted("  Edit the file, then run casa summary or casa tui."))
	return nil
}
