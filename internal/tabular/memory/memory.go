package memory

import (
	"context"
	"sync"

	"frontdesk/internal/tabular"
)

// Store keeps sheets as row slices behind a lock. Used as the test backend
// and as the dev driver when no workbook or database is configured.
type Store struct {
	mu     sync.RWMutex
	sheets map[string][][]string
	order  []string
}

func New() *Store {
	return &Store{
		sheets: make(map[string][][]string),
	}
}

// Load replaces a sheet wholesale. Intended for seeding fixtures.
func (s *Store) Load(name string, rows [][]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sheets[name]; !ok {
		s.order = append(s.order, name)
	}

	s.sheets[name] = copyRows(rows)
}

func (s *Store) ListSheetNames(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, len(s.order))
	copy(names, s.order)

	return names, nil
}

func (s *Store) GetSheet(_ context.Context, name string) ([][]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, ok := s.sheets[name]
	if !ok {
		return nil, tabular.ErrSheetNotFound
	}

	return copyRows(rows), nil
}

func (s *Store) SetRow(_ context.Context, name string, row int, values []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, ok := s.sheets[name]
	if !ok {
		return tabular.ErrSheetNotFound
	}

	if row < 0 || row >= len(rows) {
		return tabular.ErrSheetNotFound
	}

	rows[row] = copyRow(values)

	return nil
}

func (s *Store) SetCell(_ context.Context, name string, row, col int, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, ok := s.sheets[name]
	if !ok {
		return tabular.ErrSheetNotFound
	}

	if row < 0 || row >= len(rows) || col < 0 {
		return tabular.ErrSheetNotFound
	}

	for len(rows[row]) <= col {
		rows[row] = append(rows[row], "")
	}

	rows[row][col] = value

	return nil
}

func (s *Store) AppendColumn(_ context.Context, name, header string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, ok := s.sheets[name]
	if !ok {
		return tabular.ErrSheetNotFound
	}

	if len(rows) == 0 {
		s.sheets[name] = [][]string{{header}}

		return nil
	}

	rows[0] = append(rows[0], header)

	return nil
}

func (s *Store) AppendRow(_ context.Context, name string, values []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, ok := s.sheets[name]
	if !ok {
		return tabular.ErrSheetNotFound
	}

	s.sheets[name] = append(rows, copyRow(values))

	return nil
}

func copyRow(row []string) []string {
	dup := make([]string, len(row))
	copy(dup, row)

	return dup
}

func copyRows(rows [][]string) [][]string {
	dup := make([][]string, len(rows))
	for i, row := range rows {
		dup[i] = copyRow(row)
	}

	return dup
}
