// Package store persists the expense document. Two backends implement the
// same contract: a human-readable JSON file (the default) and a SQLite
// database, selected through configuration.
package store

import (
	"fmt"
	"path/filepath"

	"github.com/mstephjuan/expense-tracker/internal/model"
)

// Backend names accepted by Open.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Store is the durable backend for the expense document. Load returns a
// fresh empty document when nothing has been saved yet; Save overwrites the
// whole document.
type Store interface {
	Load() (*model.Document, error)
	Save(doc *model.Document) error
	Close() error
}

// Open creates the store for the named backend inside dataDir.
func Open(backend, dataDir string) (Store, error) {
	switch backend {
	case BackendJSON:
		return NewJSONFile(filepath.Join(dataDir, "data.json")), nil
	case BackendSQLite:
		return OpenSQLite(filepath.Join(dataDir, "expenses.db"))
	default:
		return nil, fmt.Errorf("unknown storage backend %q (use %q or %q)", backend, BackendJSON, BackendSQLite)
	}
}

// CorruptError reports a backing store that exists but does not hold a valid
// document. It is fatal: the store is never repaired or overwritten
// automatically.
type CorruptError struct {
	Path string
	Err  error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("store %s is corrupt: %v (inspect, repair, or remove the file)", e.Path, e.Err)
}

func (e *CorruptError) Unwrap() error { return e.Err }
