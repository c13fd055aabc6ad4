// Package cmd implements the expense-tracker CLI commands.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mstephjuan/expense-tracker/internal/config"
	"github.com/mstephjuan/expense-tracker/internal/ledger"
	"github.com/mstephjuan/expense-tracker/internal/model"
	"github.com/mstephjuan/expense-tracker/internal/store"
)

var (
	flagDataDir string
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:           "expense-tracker",
	Short:         "Personal expense tracker",
	Long:          "Track expenses from the command line: add, list, summarize, set monthly budgets, and export to CSV.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Data directory (default ~/.expense_tracker)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress confirmation output")
}

// loadConfig resolves the effective configuration for this invocation:
// config file, environment, then the --data-dir flag.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if flagDataDir != "" {
		cfg.General.DataDir = flagDataDir
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// withDocument is the shared load→operate→save path used by all commands.
// The document is saved only when mutate is set and fn succeeded, so a
// failed operation never reaches disk.
func withDocument(mutate bool, fn func(cfg config.Config, doc *model.Document) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	st, err := store.Open(cfg.General.Backend, cfg.DataDir())
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	doc, err := st.Load()
	if err != nil {
		return err
	}

	if err := fn(cfg, doc); err != nil {
		return err
	}

	if mutate {
		return st.Save(doc)
	}
	return nil
}

func confirmf(format string, args ...any) {
	if !flagQuiet {
		fmt.Printf(format+"\n", args...)
	}
}

// parseMonthFlag validates an optional 1-12 month flag; 0 means unset.
func parseMonthFlag(m int) (time.Month, error) {
	if m == 0 {
		return 0, nil
	}
	if m < 1 || m > 12 {
		return 0, fmt.Errorf("%w (got %d)", ledger.ErrInvalidMonth, m)
	}
	return time.Month(m), nil
}

// parseDateFlag parses an optional YYYY-MM-DD flag; empty means unset.
func parseDateFlag(s string) (model.Date, error) {
	if s == "" {
		return model.Date{}, nil
	}
	d, err := model.ParseDate(s)
	if err != nil {
		return model.Date{}, fmt.Errorf("%w (got %q)", ledger.ErrInvalidDate, s)
	}
	return d, nil
}
