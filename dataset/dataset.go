// SPDX-License-Identifier: MIT

package dataset

import "sort"

// Dataset is an immutable, column-aligned table.
//
// Invariants (enforced by Builder.Build):
//   - at least one row;
//   - every column holds exactly Len() values;
//   - numeric values are finite, categorical levels are non-empty.
type Dataset struct {
	schema *Schema
	n      int
	cat    map[int][]string  // schema position → levels
	num    map[int][]float64 // schema position → values
}

// Schema returns the dataset schema.
func (d *Dataset) Schema() *Schema { return d.schema }

// Len returns the number of rows.
func (d *Dataset) Len() int { return d.n }

// Numeric returns a copy of the named numeric column.
func (d *Dataset) Numeric(name string) ([]float64, error) {
	i, err := d.schema.Require(name, Numeric)
	if err != nil {
		return nil, err
	}
	out := make([]float64, d.n)
	copy(out, d.num[i])

	return out, nil
}

// Categorical returns a copy of the named categorical column.
func (d *Dataset) Categorical(name string) ([]string, error) {
	i, err := d.schema.Require(name, Categorical)
	if err != nil {
		return nil, err
	}
	out := make([]string, d.n)
	copy(out, d.cat[i])

	return out, nil
}

// Levels returns the distinct levels of a categorical column in ascending order.
func (d *Dataset) Levels(name string) ([]string, error) {
	i, err := d.schema.Require(name, Categorical)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	levels := make([]string, 0, 4)
	for _, v := range d.cat[i] {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		levels = append(levels, v)
	}
	sort.Strings(levels)

	return levels, nil
}

// Row returns row r as strings for categorical columns and float64 for
// numeric ones, in schema order. It panics if r is out of range.
func (d *Dataset) Row(r int) []any {
	if r < 0 || r >= d.n {
		panic("dataset: row index out of range")
	}
	out := make([]any, d.schema.Len())
	for i, c := range d.schema.cols {
		if c.Kind == Categorical {
			out[i] = d.cat[i][r]
		} else {
			out[i] = d.num[i][r]
		}
	}

	return out
}

// Select returns a new Dataset holding only the rows for which keep returns true.
// Returns ErrEmpty when nothing is kept.
func (d *Dataset) Select(keep func(r int) bool) (*Dataset, error) {
	rows := make([]int, 0, d.n)
	for r := 0; r < d.n; r++ {
		if keep(r) {
			rows = append(rows, r)
		}
	}
	if len(rows) == 0 {
		return nil, ErrEmpty
	}
	out := &Dataset{
		schema: d.schema,
		n:      len(rows),
		cat:    make(map[int][]string, len(d.cat)),
		num:    make(map[int][]float64, len(d.num)),
	}
	for i, col := range d.cat {
		v := make([]string, len(rows))
		for k, r := range rows {
			v[k] = col[r]
		}
		out.cat[i] = v
	}
	for i, col := range d.num {
		v := make([]float64, len(rows))
		for k, r := range rows {
			v[k] = col[r]
		}
		out.num[i] = v
	}

	return out, nil
}
