// SPDX-License-Identifier: MIT

package anova

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/algocmp/dataset"
)

// Model names the columns of response ~ C(factor) * covariate.
type Model struct {
	Response  string // numeric
	Factor    string // categorical
	Covariate string // numeric
}

// String renders the model in formula notation.
func (m Model) String() string {
	return fmt.Sprintf("%s ~ C(%s) * %s", m.Response, m.Factor, m.Covariate)
}

// Term labels used in the ANOVA table.
func (m Model) factorTerm() string { return "C(" + m.Factor + ")" }
func (m Model) interactionTerm() string { return m.factorTerm() + ":" + m.Covariate }

// ResidualTerm labels the residual row of the ANOVA table.
const ResidualTerm = "Residual"

// InterceptColumn names the constant design column.
const InterceptColumn = "Intercept"

// design is the dummy-coded matrix plus the column groups each term owns.
type design struct {
	x         *mat.Dense
	y         *mat.VecDense
	names     []string
	reference string
	levels    []string // all levels, sorted; reference included
	factor    []int    // dummy columns
	covariate []int    // single covariate column
	inter     []int    // dummy×covariate columns
}

// buildDesign validates the model against ds and assembles X and y.
//
// Implementation:
//   - Stage 1: resolve columns (schema errors surface here).
//   - Stage 2: pick the reference level; require ≥ 2 levels.
//   - Stage 3: fill X row by row: [1, d_1..d_k, x, d_1·x..d_k·x].
//
// Complexity: O(n·p) time and space, p = 2·levels.
func buildDesign(ds *dataset.Dataset, m Model, o options) (*design, error) {
	// Stage 1: columns.
	y, err := ds.Numeric(m.Response)
	if err != nil {
		return nil, err
	}
	g, err := ds.Categorical(m.Factor)
	if err != nil {
		return nil, err
	}
	x, err := ds.Numeric(m.Covariate)
	if err != nil {
		return nil, err
	}
	levels, err := ds.Levels(m.Factor)
	if err != nil {
		return nil, err
	}

	// Stage 2: reference level and dummy levels.
	ref := levels[0]
	if o.reference != "" {
		ref = o.reference
		if !contains(levels, ref) {
			return nil, &dataset.SchemaError{
				Column: m.Factor,
				Err:    fmt.Errorf("%w %q", dataset.ErrUnknownLevel, ref),
			}
		}
	}
	if len(levels) < 2 {
		return nil, &RankDeficiencyError{
			Column: m.factorTerm(),
			Reason: fmt.Sprintf("factor has a single level %q", ref),
		}
	}
	dummies := make([]string, 0, len(levels)-1)
	for _, l := range levels {
		if l != ref {
			dummies = append(dummies, l)
		}
	}

	// Stage 3: layout and fill.
	k := len(dummies)
	p := 2 + 2*k
	d := &design{
		names:     make([]string, 0, p),
		reference: ref,
		levels:    levels,
	}
	d.names = append(d.names, InterceptColumn)
	for i, l := range dummies {
		d.factor = append(d.factor, 1+i)
		d.names = append(d.names, dummyName(m.Factor, l))
	}
	d.covariate = []int{1 + k}
	d.names = append(d.names, m.Covariate)
	for i, l := range dummies {
		d.inter = append(d.inter, 2+k+i)
		d.names = append(d.names, dummyName(m.Factor, l)+":"+m.Covariate)
	}

	n := len(y)
	d.x = mat.NewDense(n, p, nil)
	for r := 0; r < n; r++ {
		d.x.Set(r, 0, 1)
		d.x.Set(r, 1+k, x[r])
		for i, l := range dummies {
			if g[r] == l {
				d.x.Set(r, 1+i, 1)
				d.x.Set(r, 2+k+i, x[r])
			}
		}
	}
	d.y = mat.NewVecDense(n, y)

	return d, nil
}

// dummyName follows the C(factor)[T.level] convention.
func dummyName(factor, level string) string {
	return "C(" + factor + ")[T." + level + "]"
}

func contains(xs []string, s string) bool {
	for _, v := range xs {
		if v == s {
			return true
		}
	}

	return false
}
