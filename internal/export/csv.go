// Package export writes expense listings to CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/mstephjuan/expense-tracker/internal/model"
)

var header = []string{"id", "date", "description", "category", "amount"}

// Write writes the expenses as CSV to w: a header row, then one row per
// expense in the given order. The category column is empty for
// uncategorized records; amounts are plain decimals.
func Write(w io.Writer, expenses []model.Expense) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, e := range expenses {
		category := ""
		if e.Category != nil {
			category = *e.Category
		}
		row := []string{
			strconv.FormatInt(e.ID, 10),
			e.Date.String(),
			e.Description,
			category,
			e.Amount.String(),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing expense %d: %w", e.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes the expenses to a CSV file at path, creating parent
// directories as needed.
func WriteFile(path string, expenses []model.Expense) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := Write(f, expenses); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
