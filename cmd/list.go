package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mstephjuan/expense-tracker/internal/cli"
	"github.com/mstephjuan/expense-tracker/internal/config"
	"github.com/mstephjuan/expense-tracker/internal/ledger"
	"github.com/mstephjuan/expense-tracker/internal/model"
)

var (
	listCategory string
	listMonth    int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List expenses",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listCategory, "category", "", "Filter by category (case-insensitive)")
	listCmd.Flags().IntVar(&listMonth, "month", 0, "Filter by month (1-12, any year)")
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	month, err := parseMonthFlag(listMonth)
	if err != nil {
		return err
	}

	return withDocument(false, func(cfg config.Config, doc *model.Document) error {
		expenses := ledger.List(doc, ledger.Filter{Category: listCategory, Month: month})
		if len(expenses) == 0 {
			fmt.Println("No expenses found.")
			return nil
		}

		rows := make([][]string, 0, len(expenses))
		for _, e := range expenses {
			category := "-"
			if e.Category != nil {
				category = *e.Category
			}
			rows = append(rows, []string{
				strconv.FormatInt(e.ID, 10),
				e.Date.String(),
				e.Description,
				cli.FormatMoney(cfg.General.Currency, e.Amount),
				category,
			})
		}

		fmt.Print(cli.RenderTable(cli.Table{
			Headers:    []string{"ID", "Date", "Description", "Amount", "Category"},
			Rows:       rows,
			RightAlign: []bool{true, false, false, true, false},
		}))
		return nil
	})
}
