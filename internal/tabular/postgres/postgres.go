package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/tabular"
	"frontdesk/shared/constant"
)

// Store emulates the sheet contract on Postgres for deployments that migrated
// the shared workbook into a database: one row per sheet row, cells as a JSON
// array so ragged rows and appended columns keep working without DDL.
type Store struct {
	conn *postgres.Connection
	otel otel.Otel
}

func New(conn *postgres.Connection, otel otel.Otel) *Store {
	return &Store{
		conn: conn,
		otel: otel,
	}
}

func (s *Store) ListSheetNames(ctx context.Context) (res []string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".ListSheetNames")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.conn.DB.SelectContext(ctx, &res, `SELECT name FROM sheets ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing sheets: %w", err)
	}

	return res, nil
}

func (s *Store) GetSheet(ctx context.Context, name string) (res [][]string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".GetSheet")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.exists(ctx, name); err != nil {
		return nil, err
	}

	var raw [][]byte
	err = s.conn.DB.SelectContext(ctx, &raw,
		`SELECT cells FROM sheet_rows WHERE sheet_name = $1 ORDER BY row_idx`, name)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %s: %w", name, err)
	}

	res = make([][]string, len(raw))
	for i, cells := range raw {
		if err = json.Unmarshal(cells, &res[i]); err != nil {
			return nil, fmt.Errorf("decoding row %d of sheet %s: %w", i, name, err)
		}
	}

	return res, nil
}

func (s *Store) SetRow(ctx context.Context, name string, row int, values []string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".SetRow")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.exists(ctx, name); err != nil {
		return err
	}

	cells, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("encoding row: %w", err)
	}

	result, err := s.conn.DB.ExecContext(ctx,
		`UPDATE sheet_rows SET cells = $3 WHERE sheet_name = $1 AND row_idx = $2`,
		name, row, cells)
	if err != nil {
		return fmt.Errorf("writing row %d of sheet %s: %w", row, name, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking write of sheet %s: %w", name, err)
	}

	if affected == 0 {
		return fmt.Errorf("sheet %s has no row %d", name, row)
	}

	return nil
}

func (s *Store) SetCell(ctx context.Context, name string, row, col int, value string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".SetCell")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.exists(ctx, name); err != nil {
		return err
	}

	var raw []byte
	err = s.conn.DB.GetContext(ctx, &raw,
		`SELECT cells FROM sheet_rows WHERE sheet_name = $1 AND row_idx = $2`, name, row)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("sheet %s has no row %d", name, row)
	}
	if err != nil {
		return fmt.Errorf("reading row %d of sheet %s: %w", row, name, err)
	}

	var cells []string
	if err = json.Unmarshal(raw, &cells); err != nil {
		return fmt.Errorf("decoding row %d of sheet %s: %w", row, name, err)
	}

	for len(cells) <= col {
		cells = append(cells, "")
	}
	cells[col] = value

	encoded, err := json.Marshal(cells)
	if err != nil {
		return fmt.Errorf("encoding row: %w", err)
	}

	_, err = s.conn.DB.ExecContext(ctx,
		`UPDATE sheet_rows SET cells = $3 WHERE sheet_name = $1 AND row_idx = $2`,
		name, row, encoded)
	if err != nil {
		return fmt.Errorf("writing row %d of sheet %s: %w", row, name, err)
	}

	return nil
}

func (s *Store) AppendColumn(ctx context.Context, name, header string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".AppendColumn")
	defer scope.End()
	defer scope.TraceIfError(err)

	rows, err := s.GetSheet(ctx, name)
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		return s.AppendRow(ctx, name, []string{header})
	}

	return s.SetCell(ctx, name, 0, len(rows[0]), header)
}

func (s *Store) AppendRow(ctx context.Context, name string, values []string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".AppendRow")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.exists(ctx, name); err != nil {
		return err
	}

	cells, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("encoding row: %w", err)
	}

	_, err = s.conn.DB.ExecContext(ctx,
		`INSERT INTO sheet_rows (sheet_name, row_idx, cells)
		 SELECT $1, COALESCE(MAX(row_idx) + 1, 0), $2 FROM sheet_rows WHERE sheet_name = $1`,
		name, cells)
	if err != nil {
		return fmt.Errorf("appending row to sheet %s: %w", name, err)
	}

	return nil
}

func (s *Store) exists(ctx context.Context, name string) error {
	var found bool
	err := s.conn.DB.GetContext(ctx, &found,
		`SELECT EXISTS (SELECT 1 FROM sheets WHERE name = $1)`, name)
	if err != nil {
		return fmt.Errorf("checking sheet %s: %w", name, err)
	}

	if !found {
		return tabular.ErrSheetNotFound
	}

	return nil
}
