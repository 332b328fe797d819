// SPDX-License-Identifier: MIT

package anova

import "strconv"

// Row is one line of the ANOVA table.
type Row struct {
	Term   string
	SumSq  float64
	DF     int
	F      float64 // NaN for the residual row and zero-df terms
	PValue float64 // NaN for the residual row and zero-df terms
}

// Table lists factor, covariate, interaction and residual rows, in that order.
type Table struct {
	Rows []Row
}

// Row returns the row for term.
func (t *Table) Row(term string) (Row, bool) {
	for _, r := range t.Rows {
		if r.Term == term {
			return r, true
		}
	}

	return Row{}, false
}

// Significant returns the model terms whose p-value is below alpha.
func (t *Table) Significant(alpha float64) []string {
	var out []string
	for _, r := range t.Rows {
		if r.Term != ResidualTerm && r.PValue < alpha {
			out = append(out, r.Term)
		}
	}

	return out
}

// Header returns [term, sum_sq, df, F, PR(>F)].
func (t *Table) Header() []string {
	return []string{"term", "sum_sq", "df", "F", "PR(>F)"}
}

// Records formats each row; NaN prints as "NaN".
func (t *Table) Records() [][]string {
	out := make([][]string, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = []string{
			r.Term,
			strconv.FormatFloat(r.SumSq, 'g', 6, 64),
			strconv.Itoa(r.DF),
			strconv.FormatFloat(r.F, 'g', 6, 64),
			strconv.FormatFloat(r.PValue, 'g', 6, 64),
		}
	}

	return out
}
