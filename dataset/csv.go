// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadCSV parses a header-first CSV stream into a Dataset holding exactly the
// declared columns, in declaration order. Extra CSV columns are ignored.
//
// Errors:
//   - *SchemaError(ErrColumnNotFound) if a declared column is absent from the header;
//   - ErrMissingValue for empty cells;
//   - a wrapped strconv error for unparsable numerics;
//   - any Builder.Build error.
func ReadCSV(r io.Reader, cols ...Column) (*Dataset, error) {
	if len(cols) == 0 {
		return nil, ErrNoColumns
	}
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("dataset: read header: %w", err)
	}
	pos := make(map[string]int, len(header))
	for i, h := range header {
		pos[strings.TrimSpace(h)] = i
	}
	src := make([]int, len(cols))
	for i, c := range cols {
		p, ok := pos[c.Name]
		if !ok {
			return nil, schemaErr(c.Name, ErrColumnNotFound)
		}
		src[i] = p
	}

	cat := make([][]string, len(cols))
	num := make([][]float64, len(cols))
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: read line %d: %w", line, err)
		}
		for i, c := range cols {
			cell := strings.TrimSpace(rec[src[i]])
			if cell == "" {
				return nil, fmt.Errorf("line %d: %w", line, schemaErr(c.Name, ErrMissingValue))
			}
			if c.Kind == Categorical {
				cat[i] = append(cat[i], cell)
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("dataset: line %d column %q: %w", line, c.Name, err)
			}
			num[i] = append(num[i], v)
		}
	}

	b := NewBuilder()
	for i, c := range cols {
		if c.Kind == Categorical {
			b.Categorical(c.Name, cat[i])
		} else {
			b.Numeric(c.Name, num[i])
		}
	}

	return b.Build()
}

// WriteCSV writes ds with a header row in schema order.
// Numerics use the shortest representation that round-trips.
func WriteCSV(w io.Writer, ds *Dataset) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ds.schema.Names()); err != nil {
		return err
	}
	rec := make([]string, ds.schema.Len())
	for r := 0; r < ds.n; r++ {
		for i, c := range ds.schema.cols {
			if c.Kind == Categorical {
				rec[i] = ds.cat[i][r]
			} else {
				rec[i] = strconv.FormatFloat(ds.num[i][r], 'g', -1, 64)
			}
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
