package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mstephjuan/expense-tracker/internal/model"
	"github.com/mstephjuan/expense-tracker/internal/money"
)

// JSONFile stores the document as a single indented JSON file.
type JSONFile struct {
	path string
}

// NewJSONFile returns a store backed by the JSON document at path.
func NewJSONFile(path string) *JSONFile {
	return &JSONFile{path: path}
}

// Path returns the backing file location.
func (s *JSONFile) Path() string { return s.path }

// Load reads the document. An absent file yields a fresh empty document; a
// file that exists but fails to decode or violates the document invariants
// yields a *CorruptError.
func (s *JSONFile) Load() (*model.Document, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return model.NewDocument(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}

	var doc model.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &CorruptError{Path: s.path, Err: err}
	}
	if err := doc.Validate(); err != nil {
		return nil, &CorruptError{Path: s.path, Err: err}
	}
	if doc.Expenses == nil {
		doc.Expenses = []model.Expense{}
	}
	if doc.Budgets == nil {
		doc.Budgets = map[int]money.Amount{}
	}
	return &doc, nil
}

// Save writes the whole document, creating the data directory if needed. The
// document goes to a temporary file first and is renamed into place, so a
// failure mid-write never truncates the previous good file.
func (s *JSONFile) Save(doc *model.Document) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".data-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", tmpName, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("setting permissions on %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("closing %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", s.path, err)
	}
	return nil
}

// Close is a no-op for the file backend.
func (s *JSONFile) Close() error { return nil }
