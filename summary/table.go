// SPDX-License-Identifier: MIT

package summary

import (
	"strconv"

	"github.com/katalvlaran/algocmp/dataset"
)

// Lookup returns the group for (level, value).
func (t *Table) Lookup(level string, value float64) (Group, bool) {
	for _, g := range t.Groups {
		if g.Level == level && g.Value == value {
			return g, true
		}
	}

	return Group{}, false
}

// Rows returns the source row indices of g in ascending order.
func (g Group) Rows() []int { return append([]int(nil), g.rows...) }

// Stat returns the statistics of response for group g.
func (t *Table) Stat(g Group, response string) (Stat, error) {
	i, err := t.responseIndex(response)
	if err != nil {
		return Stat{}, err
	}

	return g.Stats[i], nil
}

// Levels returns the distinct factor levels in table order.
func (t *Table) Levels() []string {
	var out []string
	for i, g := range t.Groups {
		if i == 0 || t.Groups[i-1].Level != g.Level {
			out = append(out, g.Level)
		}
	}

	return out
}

// Series returns, for one factor level, the covariate values with the mean
// and std of response, in ascending covariate order.
func (t *Table) Series(level, response string) (xs, means, stds []float64, err error) {
	i, err := t.responseIndex(response)
	if err != nil {
		return nil, nil, nil, err
	}
	for _, g := range t.Groups {
		if g.Level != level {
			continue
		}
		xs = append(xs, g.Value)
		means = append(means, g.Stats[i].Mean)
		stds = append(stds, g.Stats[i].Std)
	}

	return xs, means, stds, nil
}

func (t *Table) responseIndex(name string) (int, error) {
	for i, r := range t.Responses {
		if r == name {
			return i, nil
		}
	}

	return -1, &dataset.SchemaError{Column: name, Err: dataset.ErrColumnNotFound}
}

// Header returns [factor, covariate, count, <resp>_mean, <resp>_std, ...].
func (t *Table) Header() []string {
	h := make([]string, 0, 3+2*len(t.Responses))
	h = append(h, t.Keys.Factor, t.Keys.Covariate, "count")
	for _, r := range t.Responses {
		h = append(h, r+"_mean", r+"_std")
	}

	return h
}

// Records returns one formatted record per group, aligned with Header.
func (t *Table) Records() [][]string {
	out := make([][]string, len(t.Groups))
	for i, g := range t.Groups {
		rec := make([]string, 0, 3+2*len(g.Stats))
		rec = append(rec, g.Level, formatFloat(g.Value), strconv.Itoa(g.Count))
		for _, s := range g.Stats {
			rec = append(rec, formatFloat(s.Mean), formatFloat(s.Std))
		}
		out[i] = rec
	}

	return out
}

// formatFloat renders v with six significant digits; NaN prints as "NaN".
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
