package tabular

//go:generate go run go.uber.org/mock/mockgen -source=./tabular.go -destination=./mocks/store_mock.go -package=mocks

import (
	"context"
	"errors"
)

// ErrSheetNotFound is returned by every adapter when the named sheet does not
// exist in the backing store.
var ErrSheetNotFound = errors.New("sheet not found")

// Store is the minimal contract against the shared tabular store. Rows are
// 0-indexed with row 0 holding the header cells, so the first data row of a
// sheet is row 1; callers carry that index around for later write-back.
//
// The store is a shared mutable resource with no cross-operator locking;
// adapters only guarantee that a single call is applied atomically.
type Store interface {
	// ListSheetNames returns the names of every sheet in the store.
	ListSheetNames(ctx context.Context) ([]string, error)

	// GetSheet returns all rows of a sheet, row 0 = headers. Rows may be
	// ragged; missing trailing cells are absent rather than empty strings.
	GetSheet(ctx context.Context, name string) ([][]string, error)

	// SetRow overwrites one row in place. The row must already exist.
	SetRow(ctx context.Context, name string, row int, values []string) error

	// SetCell overwrites a single cell, extending the row if it is shorter
	// than col.
	SetCell(ctx context.Context, name string, row, col int, value string) error

	// AppendColumn adds a header cell after the last populated header column.
	AppendColumn(ctx context.Context, name, header string) error

	// AppendRow adds a row after the last row of the sheet.
	AppendRow(ctx context.Context, name string, values []string) error
}

// Cell returns the cell at col from a possibly ragged row, or "" when the row
// is shorter than col.
func Cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}

	return row[col]
}
