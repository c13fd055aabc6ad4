package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mstephjuan/expense-tracker/internal/config"
	"github.com/mstephjuan/expense-tracker/internal/model"
	"github.com/mstephjuan/expense-tracker/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse expenses interactively",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	return withDocument(false, func(cfg config.Config, doc *model.Document) error {
		return tui.Run(doc, cfg.General.Currency)
	})
}
