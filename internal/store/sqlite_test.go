package store

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/mstephjuan/expense-tracker/internal/model"
)

func openSQLiteStore(t *testing.T) *SQLite {
	t.Helper()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "expenses.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteFreshDatabase(t *testing.T) {
	s := openSQLiteStore(t)
	doc, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc.NextID != 1 || len(doc.Expenses) != 0 || len(doc.Budgets) != 0 {
		t.Fatalf("fresh document: %+v", doc)
	}
}

func TestSQLiteRoundTrip(t *testing.T) {
	s := openSQLiteStore(t)

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

func TestSQLiteSaveReplacesDocument(t *testing.T) {
	s := openSQLiteStore(t)

	if err := s.Save(sampleDocument()); err != nil {
		t.Fatalf("save: %v", err)
	}

	second := model.NewDocument()
	second.NextID = 10
	if err := s.Save(second); err != nil {
		t.Fatalf("resave: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.Expenses) != 0 || len(got.Budgets) != 0 || got.NextID != 10 {
		t.Fatalf("replace not applied: %+v", got)
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	if _, err := Open("bolt", t.TempDir()); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestOpenSelectsBackends(t *testing.T) {
	dir := t.TempDir()

	js, err := Open(BackendJSON, dir)
	if err != nil {
		t.Fatalf("json backend: %v", err)
	}
	if _, ok := js.(*JSONFile); !ok {
		t.Fatalf("json backend has type %T", js)
	}

	sq, err := Open(BackendSQLite, dir)
	if err != nil {
		t.Fatalf("sqlite backend: %v", err)
	}
	defer func() { _ = sq.Close() }()
	if _, ok := sq.(*SQLite); !ok {
		t.Fatalf("sqlite backend has type %T", sq)
	}
}
