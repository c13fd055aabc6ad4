package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mstephjuan/expense-tracker/internal/cli"
	"github.com/mstephjuan/expense-tracker/internal/config"
	"github.com/mstephjuan/expense-tracker/internal/ledger"
	"github.com/mstephjuan/expense-tracker/internal/model"
	"github.com/mstephjuan/expense-tracker/internal/money"
)

var (
	budgetSetMonth  int
	budgetSetAmount string
	budgetShowMonth int
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Manage monthly budgets",
}

var budgetSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set the budget for a month",
	RunE:  runBudgetSet,
}

var budgetShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show budgets with actual spend and overage",
	RunE:  runBudgetShow,
}

func init() {
	budgetSetCmd.Flags().IntVar(&budgetSetMonth, "month", 0, "Month (1-12)")
	budgetSetCmd.Flags().StringVar(&budgetSetAmount, "amount", "", "Budget amount, e.g. 400")
	_ = budgetSetCmd.MarkFlagRequired("month")
	_ = budgetSetCmd.MarkFlagRequired("amount")

	budgetShowCmd.Flags().IntVar(&budgetShowMonth, "month", 0, "Specific month (1-12)")

	budgetCmd.AddCommand(budgetSetCmd)
	budgetCmd.AddCommand(budgetShowCmd)
	rootCmd.AddCommand(budgetCmd)
}

func runBudgetSet(_ *cobra.Command, _ []string) error {
	amount, err := money.Parse(budgetSetAmount)
	if err != nil {
		return err
	}

	return withDocument(true, func(cfg config.Config, doc *model.Document) error {
		if err := ledger.SetBudget(doc, time.Month(budgetSetMonth), amount); err != nil {
			return err
		}
		confirmf("Budget set for %s: %s",
			cli.FormatMonth(time.Month(budgetSetMonth)),
			cli.FormatMoney(cfg.General.Currency, amount))
		return nil
	})
}

func runBudgetShow(_ *cobra.Command, _ []string) error {
	month, err := parseMonthFlag(budgetShowMonth)
	if err != nil {
		return err
	}

	return withDocument(false, func(cfg config.Config, doc *model.Document) error {
		lines, err := ledger.BudgetReport(doc, month)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			if month != 0 {
				fmt.Printf("No budget set for %s.\n", cli.FormatMonth(month))
			} else {
				fmt.Println("No budgets set.")
			}
			return nil
		}

		rows := make([][]string, 0, len(lines))
		for _, l := range lines {
			rows = append(rows, []string{
				cli.FormatMonth(l.Month),
				cli.FormatMoney(cfg.General.Currency, l.Budget),
				cli.FormatMoney(cfg.General.Currency, l.Spent),
				cli.FormatOverage(cfg.General.Currency, l.Overage),
			})
		}

		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"Month", "Budget", "Spent", "Overage"},
			Rows:    rows,
		}))
		return nil
	})
}
