package store

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/mstephjuan/expense-tracker/internal/model"
	"github.com/mstephjuan/expense-tracker/internal/money"
)

func sampleDocument() *model.Document {
	food := "Food"
	doc := model.NewDocument()
	doc.Expenses = append(doc.Expenses,
		model.Expense{ID: 1, Date: model.NewDate(2025, time.August, 5), Description: "Lunch", Amount: 2000, Category: &food},
		model.Expense{ID: 2, Date: model.NewDate(2025, time.September, 2), Description: "Bus", Amount: 1050},
	)
	doc.NextID = 3
	doc.Budgets[8] = 4000
	return doc
}

func TestLoadAbsentFileReturnsFreshDocument(t *testing.T) {
	s := NewJSONFile(filepath.Join(t.TempDir(), "data.json"))
	doc, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc.NextID != 1 || len(doc.Expenses) != 0 || len(doc.Budgets) != 0 {
		t.Fatalf("fresh document: %+v", doc)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "data.json")
	s := NewJSONFile(path)

	want := sampleDocument()
	if err := s.Save(want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestSaveEmptyDocumentRoundTrip(t *testing.T) {
	s := NewJSONFile(filepath.Join(t.TempDir(), "data.json"))
	if err := s.Save(model.NewDocument()); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, model.NewDocument()) {
		t.Fatalf("empty round trip: %+v", got)
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s := NewJSONFile(filepath.Join(dir, "data.json"))
	if err := s.Save(sampleDocument()); err != nil {
		t.Fatalf("save: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "data.json" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("data dir contains %v, want only data.json", names)
	}
}

func TestLoadCorruptFiles(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"malformed json", `{"next_id": 1, "expenses": [`},
		{"wrong amount type", `{"next_id": 2, "expenses": [{"id": 1, "date": "2025-08-05", "description": "x", "amount": 20}], "budgets": {}}`},
		{"negative amount", `{"next_id": 2, "expenses": [{"id": 1, "date": "2025-08-05", "description": "x", "amount": "-5.00"}], "budgets": {}}`},
		{"bad date", `{"next_id": 2, "expenses": [{"id": 1, "date": "yesterday", "description": "x", "amount": "5.00"}], "budgets": {}}`},
		{"duplicate ids", `{"next_id": 3, "expenses": [{"id": 1, "date": "2025-08-05", "description": "x", "amount": "5.00"}, {"id": 1, "date": "2025-08-06", "description": "y", "amount": "6.00"}], "budgets": {}}`},
		{"next_id behind ids", `{"next_id": 1, "expenses": [{"id": 1, "date": "2025-08-05", "description": "x", "amount": "5.00"}], "budgets": {}}`},
		{"missing next_id", `{"expenses": [], "budgets": {}}`},
		{"budget month out of range", `{"next_id": 1, "expenses": [], "budgets": {"13": "10.00"}}`},
		{"not an object", `[1, 2, 3]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "data.json")
			if err := os.WriteFile(path, []byte(tc.body), 0o644); err != nil {
				t.Fatalf("write fixture: %v", err)
			}
			_, err := NewJSONFile(path).Load()
			var corrupt *CorruptError
			if !errors.As(err, &corrupt) {
				t.Fatalf("got %v, want *CorruptError", err)
			}
			// The corrupt file must survive untouched.
			after, readErr := os.ReadFile(path)
			if readErr != nil || string(after) != tc.body {
				t.Fatalf("corrupt file was modified (err=%v)", readErr)
			}
		})
	}
}

func TestSaveOverwritesPreviousDocument(t *testing.T) {
	s := NewJSONFile(filepath.Join(t.TempDir(), "data.json"))

	first := sampleDocument()
	if err := s.Save(first); err != nil {
		t.Fatalf("save: %v", err)
	}

	second := sampleDocument()
	second.Expenses = second.Expenses[:1]
	second.Budgets[9] = money.Amount(9900)
	if err := s.Save(second); err != nil {
		t.Fatalf("resave: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.Expenses) != 1 || got.Budgets[9] != 9900 {
		t.Fatalf("overwrite not applied: %+v", got)
	}
}
