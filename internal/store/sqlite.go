package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mstephjuan/expense-tracker/internal/model"
	"github.com/mstephjuan/expense-tracker/internal/money"

	_ "modernc.org/sqlite" // register sqlite driver
)

// SQLite stores the document in a local SQLite database. It implements the
// same whole-document contract as the JSON backend: Load materializes the
// full document, Save replaces it in one transaction.
type SQLite struct {
	db   *sql.DB
	path string
}

// OpenSQLite opens or creates the database at dbPath and ensures the schema.
func OpenSQLite(dbPath string) (*SQLite, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &SQLite{db: db, path: dbPath}, nil
}

// Load reads the full document. Rows that fail to parse or violate document
// invariants yield a *CorruptError.
func (s *SQLite) Load() (*model.Document, error) {
	doc := model.NewDocument()

	rows, err := s.db.Query("SELECT id, date, description, amount_cents, category FROM expenses ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("querying expenses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var e model.Expense
		var dateStr string
		var cents int64
		var category sql.NullString
		if err := rows.Scan(&e.ID, &dateStr, &e.Description, &cents, &category); err != nil {
			return nil, fmt.Errorf("scanning expense: %w", err)
		}
		date, err := model.ParseDate(dateStr)
		if err != nil {
			return nil, &CorruptError{Path: s.path, Err: fmt.Errorf("expense id %d: %w", e.ID, err)}
		}
		e.Date = date
		e.Amount = money.Amount(cents)
		if category.Valid {
			cat := category.String
			e.Category = &cat
		}
		doc.Expenses = append(doc.Expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading expenses: %w", err)
	}

	budgetRows, err := s.db.Query("SELECT month, amount_cents FROM budgets")
	if err != nil {
		return nil, fmt.Errorf("querying budgets: %w", err)
	}
	defer func() { _ = budgetRows.Close() }()
	for budgetRows.Next() {
		var month int
		var cents int64
		if err := budgetRows.Scan(&month, &cents); err != nil {
			return nil, fmt.Errorf("scanning budget: %w", err)
		}
		doc.Budgets[month] = money.Amount(cents)
	}
	if err := budgetRows.Err(); err != nil {
		return nil, fmt.Errorf("reading budgets: %w", err)
	}

	var nextID int64
	err = s.db.QueryRow("SELECT value FROM meta WHERE key = 'next_id'").Scan(&nextID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		// Fresh database: keep the default allocator.
	case err != nil:
		return nil, fmt.Errorf("reading next_id: %w", err)
	default:
		doc.NextID = nextID
	}

	if err := doc.Validate(); err != nil {
		return nil, &CorruptError{Path: s.path, Err: err}
	}
	return doc, nil
}

// Save replaces the stored document in a single transaction.
func (s *SQLite) Save(doc *model.Document) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM expenses"); err != nil {
		return fmt.Errorf("clearing expenses: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM budgets"); err != nil {
		return fmt.Errorf("clearing budgets: %w", err)
	}

	for _, e := range doc.Expenses {
		var category sql.NullString
		if e.Category != nil {
			category = sql.NullString{String: *e.Category, Valid: true}
		}
		_, err := tx.Exec(
			"INSERT INTO expenses (id, date, description, amount_cents, category) VALUES (?, ?, ?, ?, ?)",
			e.ID, e.Date.String(), e.Description, int64(e.Amount), category,
		)
		if err != nil {
			return fmt.Errorf("writing expense %d: %w", e.ID, err)
		}
	}

	for month, amount := range doc.Budgets {
		if _, err := tx.Exec("INSERT INTO budgets (month, amount_cents) VALUES (?, ?)", month, int64(amount)); err != nil {
			return fmt.Errorf("writing budget for month %d: %w", month, err)
		}
	}

	if _, err := tx.Exec("INSERT OR REPLACE INTO meta (key, value) VALUES ('next_id', ?)", doc.NextID); err != nil {
		return fmt.Errorf("writing next_id: %w", err)
	}

	return tx.Commit()
}

// Close closes the database.
func (s *SQLite) Close() error {
	return s.db.Close()
}
