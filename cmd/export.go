package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mstephjuan/expense-tracker/internal/config"
	"github.com/mstephjuan/expense-tracker/internal/export"
	"github.com/mstephjuan/expense-tracker/internal/ledger"
	"github.com/mstephjuan/expense-tracker/internal/model"
)

var (
	exportPath     string
	exportCategory string
	exportMonth    int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export expenses to a CSV file",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportPath, "csv", "", "Output CSV path")
	exportCmd.Flags().StringVar(&exportCategory, "category", "", "Filter by category (case-insensitive)")
	exportCmd.Flags().IntVar(&exportMonth, "month", 0, "Filter by month (1-12, any year)")
	_ = exportCmd.MarkFlagRequired("csv")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	month, err := parseMonthFlag(exportMonth)
	if err != nil {
		return err
	}

	return withDocument(false, func(_ config.Config, doc *model.Document) error {
		expenses := ledger.List(doc, ledger.Filter{Category: exportCategory, Month: month})
		if len(expenses) == 0 {
			fmt.Println("No expenses to export.")
			return nil
		}
		if err := export.WriteFile(exportPath, expenses); err != nil {
			return err
		}
		confirmf("Exported %d expenses to %s", len(expenses), exportPath)
		return nil
	})
}
