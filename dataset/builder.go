// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"math"
)

// Builder accumulates columns and validates them on Build.
type Builder struct {
	cols []Column
	cat  [][]string
	num  [][]float64
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder { return &Builder{} }

// Categorical appends a categorical column. values is copied.
func (b *Builder) Categorical(name string, values []string) *Builder {
	v := make([]string, len(values))
	copy(v, values)
	b.cols = append(b.cols, Column{Name: name, Kind: Categorical})
	b.cat = append(b.cat, v)
	b.num = append(b.num, nil)

	return b
}

// Numeric appends a numeric column. values is copied.
func (b *Builder) Numeric(name string, values []float64) *Builder {
	v := make([]float64, len(values))
	copy(v, values)
	b.cols = append(b.cols, Column{Name: name, Kind: Numeric})
	b.cat = append(b.cat, nil)
	b.num = append(b.num, v)

	return b
}

// Build validates the columns and returns the Dataset.
//
// Errors, in priority order:
//   - ErrNoColumns, ErrEmptyName, ErrDuplicateColumn (schema);
//   - ErrEmpty (zero rows);
//   - ErrLengthMismatch (as *SchemaError naming the first offending column);
//   - ErrMissingValue (NaN/±Inf numeric or empty level, wrapped with the row).
func (b *Builder) Build() (*Dataset, error) {
	schema, err := NewSchema(b.cols...)
	if err != nil {
		return nil, err
	}

	n := b.length(0)
	if n == 0 {
		return nil, ErrEmpty
	}

	ds := &Dataset{
		schema: schema,
		n:      n,
		cat:    make(map[int][]string),
		num:    make(map[int][]float64),
	}
	for i, c := range b.cols {
		if b.length(i) != n {
			return nil, &SchemaError{
				Column: c.Name,
				Err:    fmt.Errorf("%w: have %d values, want %d", ErrLengthMismatch, b.length(i), n),
			}
		}
		switch c.Kind {
		case Categorical:
			for r, v := range b.cat[i] {
				if v == "" {
					return nil, fmt.Errorf("row %d: %w", r, schemaErr(c.Name, ErrMissingValue))
				}
			}
			ds.cat[i] = b.cat[i]
		case Numeric:
			for r, v := range b.num[i] {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					return nil, fmt.Errorf("row %d: %w", r, schemaErr(c.Name, ErrMissingValue))
				}
			}
			ds.num[i] = b.num[i]
		}
	}

	return ds, nil
}

func (b *Builder) length(i int) int {
	if b.cols[i].Kind == Categorical {
		return len(b.cat[i])
	}

	return len(b.num[i])
}
