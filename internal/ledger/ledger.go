// Package ledger implements the operations over an expense document: add,
// update, delete, filtered listing, summary aggregation, and monthly budgets.
// All operations are pure with respect to storage; a failed operation leaves
// the document untouched.
package ledger

import (
	"sort"
	"strings"
	"time"

	"github.com/mstephjuan/expense-tracker/internal/model"
	"github.com/mstephjuan/expense-tracker/internal/money"
)

// AddParams carries the fields for a new expense. A zero Date means today.
type AddParams struct {
	Description string
	Amount      money.Amount
	Category    *string
	Date        model.Date
}

// Add validates the parameters, allocates the next id, and appends the new
// expense. Ids are never reused, even after deletes.
func Add(doc *model.Document, p AddParams) (model.Expense, error) {
	desc := strings.TrimSpace(p.Description)
	if desc == "" {
		return model.Expense{}, ErrInvalidDescription
	}
	if p.Amount <= 0 {
		return model.Expense{}, money.ErrInvalidAmount
	}
	date := p.Date
	if date.IsZero() {
		date = model.Today()
	}

	e := model.Expense{
		ID:          doc.NextID,
		Date:        date,
		Description: desc,
		Amount:      p.Amount,
		Category:    normalizeCategory(p.Category),
	}
	doc.Expenses = append(doc.Expenses, e)
	doc.NextID++
	return e, nil
}

// UpdateParams carries the optional field changes for an update. Nil fields
// keep their prior values; a non-nil empty Category clears the category.
type UpdateParams struct {
	Description *string
	Amount      *money.Amount
	Category    *string
	Date        *model.Date
}

// Update applies the supplied fields to the expense with the given id,
// re-validating each against the same rules as Add. The id and insertion
// position never change.
func Update(doc *model.Document, id int64, p UpdateParams) (model.Expense, error) {
	idx := indexOf(doc, id)
	if idx < 0 {
		return model.Expense{}, ErrNotFound
	}

	// Validate everything before touching the record.
	if p.Description != nil && strings.TrimSpace(*p.Description) == "" {
		return model.Expense{}, ErrInvalidDescription
	}
	if p.Amount != nil && *p.Amount <= 0 {
		return model.Expense{}, money.ErrInvalidAmount
	}
	if p.Date != nil && p.Date.IsZero() {
		return model.Expense{}, ErrInvalidDate
	}

	e := &doc.Expenses[idx]
	if p.Description != nil {
		e.Description = strings.TrimSpace(*p.Description)
	}
	if p.Amount != nil {
		e.Amount = *p.Amount
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Category != nil {
		e.Category = normalizeCategory(p.Category)
	}
	return *e, nil
}

// Delete removes the expense with the given id. Remaining records keep their
// ids and order; the id is never reallocated.
func Delete(doc *model.Document, id int64) error {
	idx := indexOf(doc, id)
	if idx < 0 {
		return ErrNotFound
	}
	doc.Expenses = append(doc.Expenses[:idx], doc.Expenses[idx+1:]...)
	return nil
}

// Filter restricts a listing. Zero values mean no restriction. Category
// matching is case-insensitive; Month matches the calendar month in any year.
type Filter struct {
	Category string
	Month    time.Month
}

// List returns the expenses matching the filter, in stored insertion order.
func List(doc *model.Document, f Filter) []model.Expense {
	out := make([]model.Expense, 0, len(doc.Expenses))
	for _, e := range doc.Expenses {
		if f.Category != "" {
			cat := ""
			if e.Category != nil {
				cat = *e.Category
			}
			if !strings.EqualFold(cat, f.Category) {
				continue
			}
		}
		if f.Month != 0 && e.Date.Month() != f.Month {
			continue
		}
		out = append(out, e)
	}
	return out
}

// CategoryTotal is one per-category line of a summary.
type CategoryTotal struct {
	Category string
	Total    money.Amount
}

// Summary aggregates an expense set. Total always equals the sum of the
// per-category subtotals.
type Summary struct {
	Total      money.Amount
	ByCategory []CategoryTotal
	Count      int
}

// Summarize sums the expenses for the given month (zero = all records,
// regardless of year), grouped by category. Uncategorized records fall into
// a single "uncategorized" bucket. Grouping folds case, displaying the
// first-seen spelling; lines come out largest total first.
func Summarize(doc *model.Document, month time.Month) Summary {
	var s Summary
	totals := map[string]money.Amount{}
	display := map[string]string{}

	for _, e := range List(doc, Filter{Month: month}) {
		name := e.CategoryName()
		key := strings.ToLower(name)
		if _, ok := display[key]; !ok {
			display[key] = name
		}
		totals[key] += e.Amount
		s.Total += e.Amount
		s.Count++
	}

	for key, total := range totals {
		s.ByCategory = append(s.ByCategory, CategoryTotal{Category: display[key], Total: total})
	}
	sort.Slice(s.ByCategory, func(i, j int) bool {
		if s.ByCategory[i].Total != s.ByCategory[j].Total {
			return s.ByCategory[i].Total > s.ByCategory[j].Total
		}
		return s.ByCategory[i].Category < s.ByCategory[j].Category
	})
	return s
}

// SetBudget inserts or overwrites the budget for a month.
func SetBudget(doc *model.Document, month time.Month, amount money.Amount) error {
	if month < time.January || month > time.December {
		return ErrInvalidMonth
	}
	if amount <= 0 {
		return money.ErrInvalidAmount
	}
	if doc.Budgets == nil {
		doc.Budgets = map[int]money.Amount{}
	}
	doc.Budgets[int(month)] = amount
	return nil
}

// BudgetLine pairs a monthly budget with the actual spend for that month.
// Overage is Spent minus Budget; negative means under budget.
type BudgetLine struct {
	Month   time.Month
	Budget  money.Amount
	Spent   money.Amount
	Overage money.Amount
}

// BudgetReport returns the budget line for one month, or every set month in
// calendar order when month is zero. A month without a budget yields an
// empty report, not an error.
func BudgetReport(doc *model.Document, month time.Month) ([]BudgetLine, error) {
	if month != 0 {
		if month < time.January || month > time.December {
			return nil, ErrInvalidMonth
		}
		budget, ok := doc.Budgets[int(month)]
		if !ok {
			return nil, nil
		}
		return []BudgetLine{budgetLine(doc, month, budget)}, nil
	}

	months := make([]int, 0, len(doc.Budgets))
	for m := range doc.Budgets {
		months = append(months, m)
	}
	sort.Ints(months)

	lines := make([]BudgetLine, 0, len(months))
	for _, m := range months {
		lines = append(lines, budgetLine(doc, time.Month(m), doc.Budgets[m]))
	}
	return lines, nil
}

func budgetLine(doc *model.Document, month time.Month, budget money.Amount) BudgetLine {
	spent := Summarize(doc, month).Total
	return BudgetLine{
		Month:   month,
		Budget:  budget,
		Spent:   spent,
		Overage: spent - budget,
	}
}

func indexOf(doc *model.Document, id int64) int {
	for i, e := range doc.Expenses {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// normalizeCategory trims the category and collapses blank values to nil so
// "absent" and "explicitly empty" mean the same thing everywhere.
func normalizeCategory(c *string) *string {
	if c == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*c)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
