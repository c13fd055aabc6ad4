package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mstephjuan/expense-tracker/internal/config"
	"github.com/mstephjuan/expense-tracker/internal/ledger"
	"github.com/mstephjuan/expense-tracker/internal/model"
)

var delID int64

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete an expense",
	RunE:  runDelete,
}

func init() {
	deleteCmd.Flags().Int64Var(&delID, "id", 0, "Expense ID")
	_ = deleteCmd.MarkFlagRequired("id")
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(_ *cobra.Command, _ []string) error {
	return withDocument(true, func(_ config.Config, doc *model.Document) error {
		if err := ledger.Delete(doc, delID); err != nil {
			return err
		}
		confirmf("Expense deleted successfully")
		return nil
	})
}
