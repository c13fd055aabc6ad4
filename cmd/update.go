package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mstephjuan/expense-tracker/internal/config"
	"github.com/mstephjuan/expense-tracker/internal/ledger"
	"github.com/mstephjuan/expense-tracker/internal/model"
	"github.com/mstephjuan/expense-tracker/internal/money"
)

var (
	updID          int64
	updDescription string
	updAmount      string
	updCategory    string
	updDate        string
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update an expense",
	Long:  "Update any subset of an expense's fields. Only supplied flags change; pass --category \"\" to clear the category.",
	RunE:  runUpdate,
}

func init() {
	updateCmd.Flags().Int64Var(&updID, "id", 0, "Expense ID")
	updateCmd.Flags().StringVar(&updDescription, "description", "", "New description")
	updateCmd.Flags().StringVar(&updAmount, "amount", "", "New amount, e.g. 12.50")
	updateCmd.Flags().StringVar(&updCategory, "category", "", "New category (empty clears)")
	updateCmd.Flags().StringVar(&updDate, "date", "", "New date as YYYY-MM-DD")
	_ = updateCmd.MarkFlagRequired("id")
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, _ []string) error {
	var p ledger.UpdateParams

	if cmd.Flags().Changed("description") {
		p.Description = &updDescription
	}
	if cmd.Flags().Changed("amount") {
		a, err := money.Parse(updAmount)
		if err != nil {
			return err
		}
		p.Amount = &a
	}
	if cmd.Flags().Changed("date") {
		d, err := parseDateFlag(updDate)
		if err != nil {
			return err
		}
		if d.IsZero() {
			return ledger.ErrInvalidDate
		}
		p.Date = &d
	}
	if cmd.Flags().Changed("category") {
		p.Category = &updCategory
	}

	return withDocument(true, func(_ config.Config, doc *model.Document) error {
		if _, err := ledger.Update(doc, updID, p); err != nil {
			return err
		}
		confirmf("Expense updated successfully")
		return nil
	})
}
