package model

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-08-05")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if d.Year() != 2025 || d.Month() != time.August || d.Day() != 5 {
		t.Fatalf("parsed %s", d)
	}

	for _, bad := range []string{"", "2025-13-01", "2025-02-30", "08/05/2025", "yesterday"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q): expected error", bad)
		}
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2025, time.September, 2)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"2025-09-02"` {
		t.Fatalf("marshal = %s", data)
	}

	var got Date
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !got.Equal(d) {
		t.Fatalf("round trip: %s != %s", got, d)
	}

	if err := json.Unmarshal([]byte(`20250902`), &got); err == nil {
		t.Fatal("expected error for non-string date")
	}
}

func TestCategoryName(t *testing.T) {
	food := "Food"
	if got := (Expense{Category: &food}).CategoryName(); got != "Food" {
		t.Fatalf("CategoryName = %q", got)
	}
	if got := (Expense{}).CategoryName(); got != Uncategorized {
		t.Fatalf("CategoryName = %q, want %q", got, Uncategorized)
	}
}

func TestDocumentValidate(t *testing.T) {
	valid := func() *Document {
		doc := NewDocument()
		doc.Expenses = append(doc.Expenses, Expense{
			ID: 1, Date: NewDate(2025, time.August, 5), Description: "Lunch", Amount: 2000,
		})
		doc.NextID = 2
		doc.Budgets[8] = 4000
		return doc
	}

	if err := valid().Validate(); err != nil {
		t.Fatalf("valid document rejected: %v", err)
	}
	if err := NewDocument().Validate(); err != nil {
		t.Fatalf("empty document rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Document)
		want   string
	}{
		{"zero next_id", func(d *Document) { d.NextID = 0; d.Expenses = nil }, "next_id"},
		{"id not below next_id", func(d *Document) { d.NextID = 1 }, "next_id"},
		{"duplicate id", func(d *Document) {
			d.Expenses = append(d.Expenses, d.Expenses[0])
			d.NextID = 5
		}, "more than once"},
		{"non-positive id", func(d *Document) { d.Expenses[0].ID = 0 }, "not positive"},
		{"empty description", func(d *Document) { d.Expenses[0].Description = "  " }, "description"},
		{"non-positive amount", func(d *Document) { d.Expenses[0].Amount = 0 }, "amount"},
		{"missing date", func(d *Document) { d.Expenses[0].Date = Date{} }, "date"},
		{"budget month range", func(d *Document) { d.Budgets[0] = 100 }, "month"},
		{"budget amount", func(d *Document) { d.Budgets[8] = -1 }, "not positive"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := valid()
			tc.mutate(doc)
			err := doc.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}
