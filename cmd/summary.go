package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mstephjuan/expense-tracker/internal/cli"
	"github.com/mstephjuan/expense-tracker/internal/config"
	"github.com/mstephjuan/expense-tracker/internal/ledger"
	"github.com/mstephjuan/expense-tracker/internal/model"
)

var summaryMonth int

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show total expenses with a per-category breakdown",
	RunE:  runSummary,
}

func init() {
	summaryCmd.Flags().IntVar(&summaryMonth, "month", 0, "Restrict to a month (1-12, any year)")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	month, err := parseMonthFlag(summaryMonth)
	if err != nil {
		return err
	}

	return withDocument(false, func(cfg config.Config, doc *model.Document) error {
		s := ledger.Summarize(doc, month)

		title := "Total expenses"
		if month != 0 {
			title = fmt.Sprintf("Total expenses for %s", cli.FormatMonth(month))
		}
		fmt.Printf("%s: %s (%d records)\n", title, cli.FormatMoney(cfg.General.Currency, s.Total), s.Count)

		if len(s.ByCategory) > 0 {
			rows := make([][]string, 0, len(s.ByCategory)+2)
			for _, ct := range s.ByCategory {
				rows = append(rows, []string{ct.Category, cli.FormatMoney(cfg.General.Currency, ct.Total)})
			}
			rows = append(rows, []string{"---"})
			rows = append(rows, []string{"Total", cli.FormatMoney(cfg.General.Currency, s.Total)})

			fmt.Print(cli.RenderTable(cli.Table{
				Headers: []string{"Category", "Amount"},
				Rows:    rows,
			}))
		}

		// Over-budget warning for a month-scoped summary.
		if month != 0 {
			if budget, ok := doc.Budgets[int(month)]; ok && s.Total > budget {
				fmt.Println(cli.RenderWarning(fmt.Sprintf(
					"Warning: over budget for %s! Budget %s, spent %s",
					cli.FormatMonth(month),
					cli.FormatMoney(cfg.General.Currency, budget),
					cli.FormatMoney(cfg.General.Currency, s.Total),
				)))
			}
		}
		return nil
	})
}
