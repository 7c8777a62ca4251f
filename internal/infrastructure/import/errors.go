package csvimport

import (
	"errors"
	"fmt"
)

// Common import errors
var (
	// ErrInvalidEncoding is returned when the upload is not valid UTF-8
	ErrInvalidEncoding = errors.New("invalid file encoding")
)

// RowError represents a recoverable error in a specific row. The row is
// skipped; rows before and after it are still processed.
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Message)
}

// NewRowError creates a new RowError
func NewRowError(row int, message string) RowError {
	return RowError{Row: row, Message: message}
}

// ErrorStrings renders row errors as display-ready strings, in row order
func ErrorStrings(rowErrors []RowError) []string {
	out := make([]string, len(rowErrors))
	for i, e := range rowErrors {
		out[i] = e.Error()
	}
	return out
}
