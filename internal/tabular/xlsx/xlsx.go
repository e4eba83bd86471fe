package xlsx

import (
	"context"
	"fmt"
	"sync"

	"frontdesk/config"
	"frontdesk/internal/tabular"

	"github.com/xuri/excelize/v2"
)

// Store reads and writes a workbook file on disk, one sheet per table. Every
// call opens the workbook and mutations save it back before returning, which
// keeps the file the single source of truth for other programs that open it.
// Low-volume manual check-ins make the open/save cost irrelevant.
type Store struct {
	path string
	mu   sync.Mutex
}

func New(cfg *config.Config) *Store {
	return &Store{
		path: cfg.Store.Xlsx.Path,
	}
}

func (s *Store) ListSheetNames(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", s.path, err)
	}
	defer book.Close()

	return book.GetSheetList(), nil
}

func (s *Store) GetSheet(_ context.Context, name string) ([][]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", s.path, err)
	}
	defer book.Close()

	if err := sheetExists(book, name); err != nil {
		return nil, err
	}

	rows, err := book.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %s: %w", name, err)
	}

	return rows, nil
}

func (s *Store) SetRow(_ context.Context, name string, row int, values []string) error {
	return s.mutate(name, func(book *excelize.File) error {
		cell, err := excelize.CoordinatesToCellName(1, row+1)
		if err != nil {
			return fmt.Errorf("addressing row %d: %w", row, err)
		}

		if err := book.SetSheetRow(name, cell, &values); err != nil {
			return fmt.Errorf("writing row %d of sheet %s: %w", row, name, err)
		}

		return nil
	})
}

func (s *Store) SetCell(_ context.Context, name string, row, col int, value string) error {
	return s.mutate(name, func(book *excelize.File) error {
		cell, err := excelize.CoordinatesToCellName(col+1, row+1)
		if err != nil {
			return fmt.Errorf("addressing cell (%d,%d): %w", row, col, err)
		}

		if err := book.SetCellStr(name, cell, value); err != nil {
			return fmt.Errorf("writing cell %s of sheet %s: %w", cell, name, err)
		}

		return nil
	})
}

func (s *Store) AppendColumn(_ context.Context, name, header string) error {
	return s.mutate(name, func(book *excelize.File) error {
		rows, err := book.GetRows(name)
		if err != nil {
			return fmt.Errorf("reading sheet %s: %w", name, err)
		}

		col := 0
		if len(rows) > 0 {
			col = len(rows[0])
		}

		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("addressing header column %d: %w", col, err)
		}

		if err := book.SetCellStr(name, cell, header); err != nil {
			return fmt.Errorf("writing header %q to sheet %s: %w", header, name, err)
		}

		return nil
	})
}

func (s *Store) AppendRow(_ context.Context, name string, values []string) error {
	return s.mutate(name, func(book *excelize.File) error {
		rows, err := book.GetRows(name)
		if err != nil {
			return fmt.Errorf("reading sheet %s: %w", name, err)
		}

		cell, err := excelize.CoordinatesToCellName(1, len(rows)+1)
		if err != nil {
			return fmt.Errorf("addressing row %d: %w", len(rows), err)
		}

		if err := book.SetSheetRow(name, cell, &values); err != nil {
			return fmt.Errorf("appending row to sheet %s: %w", name, err)
		}

		return nil
	})
}

func (s *Store) mutate(name string, fn func(book *excelize.File) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, err := excelize.OpenFile(s.path)
	if err != nil {
		return fmt.Errorf("opening workbook %s: %w", s.path, err)
	}
	defer book.Close()

	if err := sheetExists(book, name); err != nil {
		return err
	}

	if err := fn(book); err != nil {
		return err
	}

	if err := book.Save(); err != nil {
		return fmt.Errorf("saving workbook %s: %w", s.path, err)
	}

	return nil
}

func sheetExists(book *excelize.File, name string) error {
	idx, err := book.GetSheetIndex(name)
	if err != nil || idx < 0 {
		return tabular.ErrSheetNotFound
	}

	return nil
}
