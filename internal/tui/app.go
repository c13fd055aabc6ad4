// Package tui provides the interactive expense browser.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mstephjuan/expense-tracker/internal/cli"
	"github.com/mstephjuan/expense-tracker/internal/ledger"
	"github.com/mstephjuan/expense-tracker/internal/model"
)

var (
	baseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(cli.ColorBorder)

	statusStyle = lipgloss.NewStyle().
			Foreground(cli.ColorTextMuted)

	titleBarStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(cli.ColorAccent)
)

// App is the root Bubble Tea model for the expense browser.
type App struct {
	doc      *model.Document
	currency string
	table    table.Model
	month    time.Month // 0 = all months
	height   int
}

// New builds the browser over a loaded document.
func New(doc *model.Document, currency string) App {
	columns := []table.Column{
		{Title: "ID", Width: 5},
		{Title: "Date", Width: 11},
		{Title: "Description", Width: 32},
		{Title: "Amount", Width: 11},
		{Title: "Category", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Bold(true).
		Foreground(cli.ColorAccent).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(cli.ColorBorder).
		BorderBottom(true)
	styles.Selected = styles.Selected.
		Foreground(cli.ColorText).
		Background(cli.ColorBorder)
	t.SetStyles(styles)

	a := App{doc: doc, currency: currency, table: t}
	a.refreshRows()
	return a
}

func (a *App) refreshRows() {
	expenses := ledger.List(a.doc, ledger.Filter{Month: a.month})
	rows := make([]table.Row, 0, len(expenses))
	for _, e := range expenses {
		category := "-"
		if e.Category != nil {
			category = *e.Category
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", e.ID),
			e.Date.String(),
			e.Description,
			cli.FormatMoney(a.currency, e.Amount),
			category,
		})
	}
	a.table.SetRows(rows)
	a.table.GotoTop()
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd { return nil }

// Update implements tea.Model. Keys: j/k navigate, m cycles the month
// filter, a clears it, q quits.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.height = msg.Height
		h := msg.Height - 7
		if h < 3 {
			h = 3
		}
		a.table.SetHeight(h)
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return a, tea.Quit
		case "m":
			a.month = a.month%12 + 1
			a.refreshRows()
			return a, nil
		case "a":
			a.month = 0
			a.refreshRows()
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.table, cmd = a.table.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a App) View() string {
	scope := "all months"
	if a.month != 0 {
		scope = cli.FormatMonth(a.month)
	}
	s := ledger.Summarize(a.doc, a.month)

	title := titleBarStyle.Render(fmt.Sprintf("  Expenses — %s", scope))
	status := statusStyle.Render(fmt.Sprintf(
		"  %s records · total %s · m: next month · a: all · q: quit",
		cli.FormatNumber(int64(s.Count)),
		cli.FormatMoney(a.currency, s.Total),
	))

	return title + "\n" + baseStyle.Render(a.table.View()) + "\n" + status + "\n"
}

// Run launches the browser over the given document.
func Run(doc *model.Document, currency string) error {
	p := tea.NewProgram(New(doc, currency), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
