package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/mstephjuan/expense-tracker/internal/config"
	"github.com/mstephjuan/expense-tracker/internal/store"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	// Start from the existing config so re-running keeps prior answers.
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Data directory").
				Description("Where expense data lives (blank for ~/.expense_tracker)").
				Value(&cfg.General.DataDir),
			huh.NewSelect[string]().
				Title("Storage backend").
				Options(
					huh.NewOption("JSON file (human-readable)", store.BackendJSON),
					huh.NewOption("SQLite database", store.BackendSQLite),
				).
				Value(&cfg.General.Backend),
			huh.NewInput().
				Title("Currency symbol").
				Value(&cfg.General.Currency),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("setup aborted: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `expense-tracker setup` anytime to reconfigure.")
	return nil
}
