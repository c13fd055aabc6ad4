package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mstephjuan/expense-tracker/internal/config"
	"github.com/mstephjuan/expense-tracker/internal/ledger"
	"github.com/mstephjuan/expense-tracker/internal/model"
	"github.com/mstephjuan/expense-tracker/internal/money"
)

var (
	addDescription string
	addAmount      string
	addCategory    string
	addDate        string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an expense",
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addDescription, "description", "", "Expense description")
	addCmd.Flags().StringVar(&addAmount, "amount", "", "Expense amount, e.g. 12.50")
	addCmd.Flags().StringVar(&addCategory, "category", "", "Optional category tag")
	addCmd.Flags().StringVar(&addDate, "date", "", "Date as YYYY-MM-DD (default: today)")
	_ = addCmd.MarkFlagRequired("description")
	_ = addCmd.MarkFlagRequired("amount")
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, _ []string) error {
	amount, err := money.Parse(addAmount)
	if err != nil {
		return err
	}
	date, err := parseDateFlag(addDate)
	if err != nil {
		return err
	}
	var category *string
	if addCategory != "" {
		category = &addCategory
	}

	return withDocument(true, func(_ config.Config, doc *model.Document) error {
		e, err := ledger.Add(doc, ledger.AddParams{
			Description: addDescription,
			Amount:      amount,
			Category:    category,
			Date:        date,
		})
		if err != nil {
			return err
		}
		confirmf("Expense added successfully (ID: %d)", e.ID)
		return nil
	})
}
