// Package model defines the persisted document and its record types.
package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/mstephjuan/expense-tracker/internal/money"
)

// Uncategorized is the summary bucket for expenses without a category.
const Uncategorized = "uncategorized"

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// Date is a calendar date without a time component.
type Date struct {
	t time.Time
}

// NewDate builds a date from its components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current local calendar date.
func Today() Date {
	now := time.Now()
	return NewDate(now.Year(), now.Month(), now.Day())
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parsing date %q: expected YYYY-MM-DD", s)
	}
	return NewDate(t.Year(), t.Month(), t.Day()), nil
}

// Year returns the calendar year.
func (d Date) Year() int { return d.t.Year() }

// Month returns the calendar month.
func (d Date) Month() time.Month { return d.t.Month() }

// Day returns the day of the month.
func (d Date) Day() int { return d.t.Day() }

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool { return d.t.IsZero() }

// Equal reports whether two dates name the same day.
func (d Date) Equal(o Date) bool { return d.t.Equal(o.t) }

func (d Date) String() string { return d.t.Format(DateLayout) }

// MarshalJSON serializes as a quoted YYYY-MM-DD string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON accepts only quoted YYYY-MM-DD strings.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == string(data) {
		return fmt.Errorf("date %s: expected a YYYY-MM-DD string", data)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Expense is a single recorded expense. The ID and insertion position are
// immutable; the remaining fields change only through an explicit update.
type Expense struct {
	ID          int64        `json:"id"`
	Date        Date         `json:"date"`
	Description string       `json:"description"`
	Amount      money.Amount `json:"amount"`
	Category    *string      `json:"category,omitempty"`
}

// CategoryName returns the category, or the uncategorized bucket name when
// none is set.
func (e Expense) CategoryName() string {
	if e.Category == nil {
		return Uncategorized
	}
	return *e.Category
}

// Document is the full persisted state: all expenses in insertion order, the
// per-month budgets, and the id allocator. It is the single source of truth;
// summaries are always recomputed from it.
type Document struct {
	NextID   int64                `json:"next_id"`
	Expenses []Expense            `json:"expenses"`
	Budgets  map[int]money.Amount `json:"budgets"`
}

// NewDocument returns an empty document ready for use.
func NewDocument() *Document {
	return &Document{
		NextID:   1,
		Expenses: []Expense{},
		Budgets:  map[int]money.Amount{},
	}
}

// Validate checks the document invariants: a positive id allocator past every
// stored id, unique positive ids, non-empty descriptions, positive amounts,
// real dates, and budget months within 1-12.
func (d *Document) Validate() error {
	if d.NextID < 1 {
		return fmt.Errorf("next_id %d: must be at least 1", d.NextID)
	}
	seen := make(map[int64]bool, len(d.Expenses))
	for i, e := range d.Expenses {
		if e.ID < 1 {
			return fmt.Errorf("expense #%d: id %d is not positive", i, e.ID)
		}
		if seen[e.ID] {
			return fmt.Errorf("expense id %d appears more than once", e.ID)
		}
		seen[e.ID] = true
		if e.ID >= d.NextID {
			return fmt.Errorf("expense id %d is not below next_id %d", e.ID, d.NextID)
		}
		if strings.TrimSpace(e.Description) == "" {
			return fmt.Errorf("expense id %d: description is empty", e.ID)
		}
		if e.Amount <= 0 {
			return fmt.Errorf("expense id %d: amount %s is not positive", e.ID, e.Amount)
		}
		if e.Date.IsZero() {
			return fmt.Errorf("expense id %d: date is missing", e.ID)
		}
	}
	for m, a := range d.Budgets {
		if m < 1 || m > 12 {
			return fmt.Errorf("budget month %d: must be between 1 and 12", m)
		}
		if a <= 0 {
			return fmt.Errorf("budget for month %d: amount %s is not positive", m, a)
		}
	}
	return nil
}
