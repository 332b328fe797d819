// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/algocmp/dataset"
)

// Save stores ds under name, replacing any dataset of the same name, and
// returns the new dataset id.
func (s *Store) Save(ctx context.Context, name string, ds *dataset.Dataset) (string, error) {
	if name == "" {
		return "", ErrEmptyName
	}
	id := uuid.NewString()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("store: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var old string
	err = tx.QueryRowContext(ctx, `SELECT id FROM datasets WHERE name = ?`, name).Scan(&old)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return "", fmt.Errorf("store: lookup %q: %w", name, err)
	default:
		if err = deleteID(ctx, tx, old); err != nil {
			return "", err
		}
	}

	created := time.Now().UTC().Format(time.RFC3339Nano)
	if _, err = tx.ExecContext(ctx,
		`INSERT INTO datasets (id, name, row_count, created) VALUES (?, ?, ?, ?)`,
		id, name, ds.Len(), created); err != nil {
		return "", fmt.Errorf("store: insert dataset: %w", err)
	}
	if err = insertColumns(ctx, tx, id, ds); err != nil {
		return "", err
	}
	if err = insertCells(ctx, tx, id, ds); err != nil {
		return "", err
	}
	if err = tx.Commit(); err != nil {
		return "", fmt.Errorf("store: commit: %w", err)
	}

	s.logger.Info("dataset saved",
		zap.String("name", name),
		zap.String("id", id),
		zap.Int("rows", ds.Len()),
		zap.Bool("replaced", old != ""),
	)

	return id, nil
}

func insertColumns(ctx context.Context, tx *sql.Tx, id string, ds *dataset.Dataset) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO columns (dataset_id, position, name, kind) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("store: prepare columns: %w", err)
	}
	defer stmt.Close()

	for pos, c := range ds.Schema().Columns() {
		if _, err = stmt.ExecContext(ctx, id, pos, c.Name, c.Kind.String()); err != nil {
			return fmt.Errorf("store: insert column %q: %w", c.Name, err)
		}
	}

	return nil
}

func insertCells(ctx context.Context, tx *sql.Tx, id string, ds *dataset.Dataset) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO cells (dataset_id, row_index, position, text_value, num_value) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("store: prepare cells: %w", err)
	}
	defer stmt.Close()

	for r := 0; r < ds.Len(); r++ {
		for pos, v := range ds.Row(r) {
			var text, num any
			switch v := v.(type) {
			case string:
				text = v
			case float64:
				num = v
			}
			if _, err = stmt.ExecContext(ctx, id, r, pos, text, num); err != nil {
				return fmt.Errorf("store: insert row %d: %w", r, err)
			}
		}
	}

	return nil
}

// Load reads the dataset stored under name.
func (s *Store) Load(ctx context.Context, name string) (*dataset.Dataset, error) {
	var (
		id   string
		rows int
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, row_count FROM datasets WHERE name = ?`, name).Scan(&id, &rows)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrDatasetNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("store: load %q: %w", name, err)
	}

	cols, err := s.loadColumns(ctx, id)
	if err != nil {
		return nil, err
	}
	// Unfilled cells stay "" or NaN so Build reports them as ErrMissingValue.
	text := make([][]string, len(cols))
	nums := make([][]float64, len(cols))
	for i, c := range cols {
		if c.Kind == dataset.Categorical {
			text[i] = make([]string, rows)
			continue
		}
		nums[i] = make([]float64, rows)
		for r := range nums[i] {
			nums[i][r] = math.NaN()
		}
	}

	q, err := s.db.QueryContext(ctx,
		`SELECT row_index, position, text_value, num_value FROM cells WHERE dataset_id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("store: load cells: %w", err)
	}
	defer q.Close()
	for q.Next() {
		var (
			r, pos int
			tv     sql.NullString
			nv     sql.NullFloat64
		)
		if err = q.Scan(&r, &pos, &tv, &nv); err != nil {
			return nil, fmt.Errorf("store: scan cell: %w", err)
		}
		if r < 0 || r >= rows || pos < 0 || pos >= len(cols) {
			return nil, fmt.Errorf("store: cell (%d, %d) out of range", r, pos)
		}
		switch {
		case text[pos] != nil && tv.Valid:
			text[pos][r] = tv.String
		case nums[pos] != nil && nv.Valid:
			nums[pos][r] = nv.Float64
		}
	}
	if err = q.Err(); err != nil {
		return nil, fmt.Errorf("store: load cells: %w", err)
	}

	b := dataset.NewBuilder()
	for i, c := range cols {
		if c.Kind == dataset.Categorical {
			b.Categorical(c.Name, text[i])
		} else {
			b.Numeric(c.Name, nums[i])
		}
	}
	ds, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("store: dataset %q: %w", name, err)
	}
	s.logger.Debug("dataset loaded", zap.String("name", name), zap.Int("rows", rows))

	return ds, nil
}

func (s *Store) loadColumns(ctx context.Context, id string) ([]dataset.Column, error) {
	q, err := s.db.QueryContext(ctx,
		`SELECT name, kind FROM columns WHERE dataset_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("store: load columns: %w", err)
	}
	defer q.Close()

	var cols []dataset.Column
	for q.Next() {
		var name, kind string
		if err = q.Scan(&name, &kind); err != nil {
			return nil, fmt.Errorf("store: scan column: %w", err)
		}
		k, perr := dataset.ParseKind(kind)
		if perr != nil {
			return nil, fmt.Errorf("store: column %q: %w", name, perr)
		}
		cols = append(cols, dataset.Column{Name: name, Kind: k})
	}

	return cols, q.Err()
}

// List returns every stored dataset ordered by name.
func (s *Store) List(ctx context.Context) ([]Info, error) {
	q, err := s.db.QueryContext(ctx, `
	SELECT d.id, d.name, d.row_count, d.created,
		(SELECT COUNT(*) FROM columns c WHERE c.dataset_id = d.id)
	FROM datasets d
	ORDER BY d.name`)
	if err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	defer q.Close()

	var out []Info
	for q.Next() {
		var (
			info    Info
			created string
		)
		if err = q.Scan(&info.ID, &info.Name, &info.Rows, &created, &info.Columns); err != nil {
			return nil, fmt.Errorf("store: scan dataset: %w", err)
		}
		if info.Created, err = time.Parse(time.RFC3339Nano, created); err != nil {
			return nil, fmt.Errorf("store: dataset %q: %w", info.Name, err)
		}
		out = append(out, info)
	}

	return out, q.Err()
}

// Delete removes the dataset stored under name.
func (s *Store) Delete(ctx context.Context, name string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var id string
	err = tx.QueryRowContext(ctx, `SELECT id FROM datasets WHERE name = ?`, name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %q", ErrDatasetNotFound, name)
	}
	if err != nil {
		return fmt.Errorf("store: lookup %q: %w", name, err)
	}
	if err = deleteID(ctx, tx, id); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("store: commit: %w", err)
	}
	s.logger.Info("dataset deleted", zap.String("name", name), zap.String("id", id))

	return nil
}

func deleteID(ctx context.Context, tx *sql.Tx, id string) error {
	for _, q := range []string{
		`DELETE FROM cells WHERE dataset_id = ?`,
		`DELETE FROM columns WHERE dataset_id = ?`,
		`DELETE FROM datasets WHERE id = ?`,
	} {
		if _, err := tx.ExecContext(ctx, q, id); err != nil {
			return fmt.Errorf("store: delete %s: %w", id, err)
		}
	}

	return nil
}
