// SPDX-License-Identifier: MIT

package chart

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/stat/distuv"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/algocmp/dataset"
	"github.com/katalvlaran/algocmp/summary"
)

var (
	// ErrUnknownFormat is returned by Save for an extension other than
	// .png, .svg or .pdf.
	ErrUnknownFormat = errors.New("chart: unknown image format")

	// ErrYRange is returned when a spec sets YMin ≥ YMax.
	ErrYRange = errors.New("chart: y range is empty")

	// ErrConfidence is returned for a confidence level outside (0, 1).
	ErrConfidence = errors.New("chart: confidence level must be in (0, 1)")
)

// DefaultConfidence is the level of the band drawn around each mean line.
const DefaultConfidence = 0.95

// LineSpec describes a line chart of mean response by covariate value.
type LineSpec struct {
	Keys     summary.Keys
	Response string
	Title    string
	YLabel   string   // defaults to Response
	YMin     *float64 // nil keeps the automatic range
	YMax     *float64

	// Confidence draws a shaded t-interval band around each mean line at this
	// level. Zero draws no band.
	Confidence float64
}

// ErrorBarSpec describes a mean ± std chart built from a summary table.
type ErrorBarSpec struct {
	Response string
	Title    string
	YLabel   string
	YMin     *float64
	YMax     *float64
}

// meanStd feeds NewYErrorBars: points plus symmetric errors.
type meanStd struct {
	plotter.XYs
	plotter.YErrors
}

// Line summarizes ds by spec.Keys and plots one line with point markers per
// factor level, levels in sorted order, each over its confidence band when
// spec.Confidence is set.
func Line(ds *dataset.Dataset, spec LineSpec) (*plot.Plot, error) {
	if spec.Confidence != 0 && (spec.Confidence <= 0 || spec.Confidence >= 1) {
		return nil, fmt.Errorf("%w: %g", ErrConfidence, spec.Confidence)
	}
	tbl, err := summary.Compute(ds, spec.Keys, spec.Response)
	if err != nil {
		return nil, err
	}
	p, err := newPlot(spec.Title, tbl.Keys.Covariate, label(spec.YLabel, spec.Response), spec.YMin, spec.YMax)
	if err != nil {
		return nil, err
	}

	for i, level := range tbl.Levels() {
		xs, means, _, err := tbl.Series(level, spec.Response)
		if err != nil {
			return nil, err
		}
		if spec.Confidence != 0 {
			poly, err := band(tbl, level, spec.Response, spec.Confidence, i)
			if err != nil {
				return nil, err
			}
			if poly != nil {
				p.Add(poly)
			}
		}
		line, points, err := plotter.NewLinePoints(xys(xs, means))
		if err != nil {
			return nil, fmt.Errorf("chart: %s: %w", level, err)
		}
		style(line, points, i)
		p.Add(line, points)
		p.Legend.Add(level, line, points)
	}
	pinY(p, spec.YMin, spec.YMax)

	return p, nil
}

// ErrorBars plots, per factor level, the mean line and a ±std bar at every
// covariate value. A NaN std (a single-observation group) draws no bar.
func ErrorBars(tbl *summary.Table, spec ErrorBarSpec) (*plot.Plot, error) {
	p, err := newPlot(spec.Title, tbl.Keys.Covariate, label(spec.YLabel, spec.Response), spec.YMin, spec.YMax)
	if err != nil {
		return nil, err
	}

	for i, level := range tbl.Levels() {
		xs, means, stds, err := tbl.Series(level, spec.Response)
		if err != nil {
			return nil, err
		}
		data := meanStd{XYs: xys(xs, means), YErrors: make(plotter.YErrors, len(stds))}
		for j, s := range stds {
			if math.IsNaN(s) {
				s = 0
			}
			data.YErrors[j].Low, data.YErrors[j].High = s, s
		}

		bars, err := plotter.NewYErrorBars(data)
		if err != nil {
			return nil, fmt.Errorf("chart: %s: %w", level, err)
		}
		bars.Color = plotutil.Color(i)
		line, points, err := plotter.NewLinePoints(data.XYs)
		if err != nil {
			return nil, fmt.Errorf("chart: %s: %w", level, err)
		}
		style(line, points, i)
		p.Add(bars, line, points)
		p.Legend.Add(level, line, points)
	}
	pinY(p, spec.YMin, spec.YMax)

	return p, nil
}

// ConfidenceBand returns, for one factor level in ascending covariate order,
// the bounds mean ± t·s/√n of a two-sided interval at the given confidence,
// with t the Student-t quantile on n−1 degrees of freedom. A group with a
// single row has no interval; its bounds collapse to the mean.
func ConfidenceBand(tbl *summary.Table, level, response string, confidence float64) (xs, lower, upper []float64, err error) {
	if confidence <= 0 || confidence >= 1 {
		return nil, nil, nil, fmt.Errorf("%w: %g", ErrConfidence, confidence)
	}
	xs, means, stds, err := tbl.Series(level, response)
	if err != nil {
		return nil, nil, nil, err
	}
	counts := make([]int, 0, len(xs))
	for _, g := range tbl.Groups {
		if g.Level == level {
			counts = append(counts, g.Count)
		}
	}

	lower = make([]float64, len(xs))
	upper = make([]float64, len(xs))
	q := 1 - (1-confidence)/2
	for j, m := range means {
		half := 0.0
		if n := counts[j]; n > 1 && !math.IsNaN(stds[j]) {
			t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 1)}.Quantile(q)
			half = t * stds[j] / math.Sqrt(float64(n))
		}
		lower[j], upper[j] = m-half, m+half
	}

	return xs, lower, upper, nil
}

// band builds the filled polygon for ConfidenceBand, or nil when every group
// of the level is a single row.
func band(tbl *summary.Table, level, response string, confidence float64, i int) (*plotter.Polygon, error) {
	xs, lower, upper, err := ConfidenceBand(tbl, level, response, confidence)
	if err != nil {
		return nil, err
	}
	if len(xs) == 0 || floatsEqual(lower, upper) {
		return nil, nil
	}

	ring := make(plotter.XYs, 0, 2*len(xs))
	for j := range xs {
		ring = append(ring, plotter.XY{X: xs[j], Y: upper[j]})
	}
	for j := len(xs) - 1; j >= 0; j-- {
		ring = append(ring, plotter.XY{X: xs[j], Y: lower[j]})
	}
	poly, err := plotter.NewPolygon(ring)
	if err != nil {
		return nil, fmt.Errorf("chart: %s band: %w", level, err)
	}
	c := color.NRGBAModel.Convert(plotutil.Color(i)).(color.NRGBA)
	c.A = 0x40
	poly.Color = c
	poly.LineStyle.Width = 0

	return poly, nil
}

func floatsEqual(a, b []float64) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// Save writes p to path; the extension selects the format.
func Save(p *plot.Plot, path string, w, h vg.Length) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".svg", ".pdf":
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}

	return p.Save(w, h, path)
}

func newPlot(title, xLabel, yLabel string, yMin, yMax *float64) (*plot.Plot, error) {
	if yMin != nil && yMax != nil && *yMin >= *yMax {
		return nil, ErrYRange
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	return p, nil
}

// pinY fixes the y range. It runs after all data is added, since Add widens
// the axes to fit.
func pinY(p *plot.Plot, yMin, yMax *float64) {
	if yMin != nil {
		p.Y.Min = *yMin
	}
	if yMax != nil {
		p.Y.Max = *yMax
	}
}

func xys(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X, pts[i].Y = xs[i], ys[i]
	}

	return pts
}

func style(line *plotter.Line, points *plotter.Scatter, i int) {
	line.Color = plotutil.Color(i)
	line.Width = vg.Points(1.5)
	points.Color = plotutil.Color(i)
	points.Shape = plotutil.Shape(i)
}

func label(explicit, fallback string) string {
	if explicit != "" {
		return explicit
	}

	return fallback
}
