// SPDX-License-Identifier: MIT

package summary

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/algocmp/dataset"
)

// Stat holds the descriptive statistics of one response within one group.
type Stat struct {
	Mean float64
	Std  float64 // NaN when the group has a single row
}

// Group is one (level, value) cell of the summary.
type Group struct {
	Level string  // factor level
	Value float64 // covariate value
	Count int     // rows in the group
	Stats []Stat  // aligned with Table.Responses
	rows  []int   // source row indices, ascending
}

// Table is the ordered collection of groups produced by Compute.
type Table struct {
	Keys      Keys
	Responses []string
	Groups    []Group
}

// Compute groups ds by keys and summarizes each response column.
// With no responses, every numeric column other than the covariate is
// summarized in schema order.
//
// Complexity: O(n·r + g·log g) for n rows, r responses and g groups.
func Compute(ds *dataset.Dataset, keys Keys, responses ...string) (*Table, error) {
	buckets, err := partition(ds, keys)
	if err != nil {
		return nil, err
	}
	if len(responses) == 0 {
		responses = defaultResponses(ds, keys)
	}

	cols := make([][]float64, len(responses))
	for i, name := range responses {
		if cols[i], err = ds.Numeric(name); err != nil {
			return nil, err
		}
	}

	t := &Table{
		Keys:      keys,
		Responses: append([]string(nil), responses...),
		Groups:    make([]Group, len(buckets)),
	}
	for gi, b := range buckets {
		g := Group{
			Level: b.key.level,
			Value: b.key.value,
			Count: len(b.rows),
			Stats: make([]Stat, len(cols)),
			rows:  b.rows,
		}
		for ci, col := range cols {
			g.Stats[ci] = describe(gather(col, b.rows))
		}
		t.Groups[gi] = g
	}

	return t, nil
}

// describe returns mean and sample std; std is NaN for a single value.
func describe(x []float64) Stat {
	if len(x) == 1 {
		return Stat{Mean: x[0], Std: math.NaN()}
	}
	mean, std := stat.MeanStdDev(x, nil)

	return Stat{Mean: mean, Std: std}
}

func defaultResponses(ds *dataset.Dataset, keys Keys) []string {
	var out []string
	for _, c := range ds.Schema().Columns() {
		if c.Kind == dataset.Numeric && c.Name != keys.Covariate {
			out = append(out, c.Name)
		}
	}

	return out
}
