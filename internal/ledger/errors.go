package ledger

import "errors"

var (
	// ErrNotFound is returned when a referenced expense id does not exist.
	ErrNotFound = errors.New("expense not found")

	// ErrInvalidDescription rejects empty or blank descriptions.
	ErrInvalidDescription = errors.New("description must not be empty")

	// ErrInvalidDate rejects dates that are not valid YYYY-MM-DD values.
	ErrInvalidDate = errors.New("invalid date: use YYYY-MM-DD")

	// ErrInvalidMonth rejects month numbers outside 1-12.
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
)
