// SPDX-License-Identifier: MIT

package anova

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/algocmp/dataset"
)

// Fit is a fitted model together with its type-II ANOVA table.
type Fit struct {
	Model        Model
	Reference    string    // reference level of the factor
	Levels       []string  // all factor levels, sorted
	Columns      []string  // design column names
	Coefficients []float64 // aligned with Columns
	N            int       // observations
	DFResid      int       // N − len(Columns)
	RSS          float64   // residual sum of squares
	TSS          float64   // total sum of squares around the grand mean
	Table        *Table
}

// FitModel fits m on ds and returns the coefficients and type-II ANOVA table.
//
// Implementation:
//   - Stage 1: build the design matrix (schema, level and single-level checks).
//   - Stage 2: require residual df > 0.
//   - Stage 3: QR-factorize X; reject if any |R_jj| ≤ tol·‖X_j‖₂.
//   - Stage 4: solve the full model and the three reduced models.
//   - Stage 5: assemble SS, df, F and p per term.
//
// Errors:
//   - *dataset.SchemaError, *RankDeficiencyError, *InsufficientDataError.
//
// Determinism:
//   - Fixed column order and loop order; no randomness.
//
// Complexity:
//   - Time O(n·p²) per least-squares solve (four solves), Space O(n·p).
func FitModel(ds *dataset.Dataset, m Model, opts ...Option) (*Fit, error) {
	o := gatherOptions(opts...)

	// Stage 1: design.
	d, err := buildDesign(ds, m, o)
	if err != nil {
		return nil, err
	}
	n, p := d.x.Dims()

	// Stage 2: residual degrees of freedom.
	if n-p <= 0 {
		return nil, &InsufficientDataError{N: n, Params: p}
	}

	// Stage 3: rank check on the full design.
	if err = checkRank(d.x, d.names, o.tol); err != nil {
		return nil, err
	}

	// Stage 4: full and reduced least-squares fits.
	all := make([]int, p)
	for j := range all {
		all[j] = j
	}
	beta, rssFull, err := leastSquares(d.x, d.y, all, d.names)
	if err != nil {
		return nil, err
	}
	intercept := []int{0}
	rssFactor, err := reducedRSS(d, intercept, d.factor)
	if err != nil {
		return nil, err
	}
	rssCovariate, err := reducedRSS(d, intercept, d.covariate)
	if err != nil {
		return nil, err
	}
	rssMain, err := reducedRSS(d, intercept, d.factor, d.covariate)
	if err != nil {
		return nil, err
	}

	// Stage 5: table.
	dfResid := n - p
	msResid := rssFull / float64(dfResid)
	rows := []Row{
		termRow(m.factorTerm(), rssCovariate-rssMain, len(d.factor), msResid, dfResid),
		termRow(m.Covariate, rssFactor-rssMain, len(d.covariate), msResid, dfResid),
		termRow(m.interactionTerm(), rssMain-rssFull, len(d.inter), msResid, dfResid),
		{Term: ResidualTerm, SumSq: rssFull, DF: dfResid, F: math.NaN(), PValue: math.NaN()},
	}

	y := d.y.RawVector().Data

	return &Fit{
		Model:        m,
		Reference:    d.reference,
		Levels:       append([]string(nil), d.levels...),
		Columns:      d.names,
		Coefficients: beta,
		N:            n,
		DFResid:      dfResid,
		RSS:          rssFull,
		TSS:          totalSS(y),
		Table:        &Table{Rows: rows},
	}, nil
}

// checkRank factorizes x and flags the first column whose component
// orthogonal to the preceding columns is negligible relative to its norm.
func checkRank(x *mat.Dense, names []string, tol float64) error {
	var qr mat.QR
	qr.Factorize(x)
	var r mat.Dense
	qr.RTo(&r)

	n, p := x.Dims()
	col := make([]float64, n)
	for j := 0; j < p; j++ {
		mat.Col(col, j, x)
		norm := floats.Norm(col, 2)
		if norm == 0 {
			return &RankDeficiencyError{Column: names[j], Reason: "column is identically zero"}
		}
		if math.Abs(r.At(j, j)) <= tol*norm {
			return &RankDeficiencyError{Column: names[j], Reason: "column is a linear combination of earlier columns"}
		}
	}

	return nil
}

// leastSquares solves min‖y − X[:,cols]·β‖₂ by QR and returns β and the RSS.
func leastSquares(x *mat.Dense, y *mat.VecDense, cols []int, names []string) ([]float64, float64, error) {
	n, _ := x.Dims()
	sub := mat.NewDense(n, len(cols), nil)
	buf := make([]float64, n)
	for k, j := range cols {
		sub.SetCol(k, mat.Col(buf, j, x))
	}

	var qr mat.QR
	qr.Factorize(sub)
	var beta mat.VecDense
	if err := qr.SolveVecTo(&beta, false, y); err != nil {
		return nil, 0, &RankDeficiencyError{Column: names[cols[len(cols)-1]], Reason: err.Error()}
	}

	var fitted mat.VecDense
	fitted.MulVec(sub, &beta)
	rss := 0.0
	for i := 0; i < n; i++ {
		e := y.AtVec(i) - fitted.AtVec(i)
		rss += e * e
	}

	out := make([]float64, len(cols))
	for k := range out {
		out[k] = beta.AtVec(k)
	}

	return out, rss, nil
}

func reducedRSS(d *design, groups ...[]int) (float64, error) {
	var cols []int
	for _, g := range groups {
		cols = append(cols, g...)
	}
	_, rss, err := leastSquares(d.x, d.y, cols, d.names)

	return rss, err
}

// termRow derives mean square, F and p for one model term.
func termRow(term string, ss float64, df int, msResid float64, dfResid int) Row {
	if ss < 0 {
		// roundoff when the true reduction is zero
		ss = 0
	}
	row := Row{Term: term, SumSq: ss, DF: df, F: math.NaN(), PValue: math.NaN()}
	if df == 0 {
		return row
	}
	row.F = (ss / float64(df)) / msResid
	switch {
	case math.IsNaN(row.F):
	case math.IsInf(row.F, 1):
		row.PValue = 0
	default:
		row.PValue = FSurvival(row.F, float64(df), float64(dfResid))
	}

	return row
}

// FSurvival returns P(X > f) for X ~ F(d1, d2).
//
// The tail is I_x(d2/2, d1/2) with x = d2/(d2+d1·f), evaluated directly rather
// than as 1 − CDF, so it keeps full relative precision below machine epsilon.
// f ≤ 0 gives 1 and f = +Inf gives 0. d1 and d2 must be positive.
func FSurvival(f, d1, d2 float64) float64 {
	switch {
	case math.IsNaN(f) || math.IsNaN(d1) || math.IsNaN(d2):
		return math.NaN()
	case f <= 0:
		return 1
	case math.IsInf(f, 1):
		return 0
	}

	return mathext.RegIncBeta(d2/2, d1/2, d2/(d2+d1*f))
}

func totalSS(y []float64) float64 {
	mean := stat.Mean(y, nil)
	ss := 0.0
	for _, v := range y {
		ss += (v - mean) * (v - mean)
	}

	return ss
}

// Coefficient returns the estimate for a named design column.
func (f *Fit) Coefficient(name string) (float64, bool) {
	for i, c := range f.Columns {
		if c == name {
			return f.Coefficients[i], true
		}
	}

	return 0, false
}

// Predict evaluates the fitted model at (level, x).
func (f *Fit) Predict(level string, x float64) (float64, error) {
	if !contains(f.Levels, level) {
		return 0, &dataset.SchemaError{
			Column: f.Model.Factor,
			Err:    fmt.Errorf("%w %q", dataset.ErrUnknownLevel, level),
		}
	}
	y := f.Coefficients[0]
	slope, _ := f.Coefficient(f.Model.Covariate)
	y += slope * x
	if level == f.Reference {
		return y, nil
	}
	shift, _ := f.Coefficient(dummyName(f.Model.Factor, level))
	inter, _ := f.Coefficient(dummyName(f.Model.Factor, level) + ":" + f.Model.Covariate)

	return y + shift + inter*x, nil
}

// RSquared is 1 − RSS/TSS.
func (f *Fit) RSquared() float64 { return 1 - f.RSS/f.TSS }
